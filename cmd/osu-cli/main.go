package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MingxuanGame/OsuApiV1/cache/sqlitecache"
	"github.com/MingxuanGame/OsuApiV1/deserialize"
	"github.com/MingxuanGame/OsuApiV1/model"
	"github.com/MingxuanGame/OsuApiV1/osu"
)

func buildClient(cmd *cli.Command) (*osu.Osu, func(), error) {
	logger := createLogger(cmd.Bool("verbose"))
	deserialize.SetLogger(logger)

	config, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load %s (run `osu-cli config` to generate one): %w", configPath, err)
	}

	builder := osu.NewBuilder(config.ApiKey).Logger(logger)
	if config.TimeoutSeconds > 0 {
		builder.Timeout(time.Duration(config.TimeoutSeconds) * time.Second)
	}
	if config.RequestsPerSecond > 0 {
		builder.RateLimit(config.RequestsPerSecond, time.Second)
	}

	cleanup := func() {}
	if config.Cache.Enabled {
		store, err := sqlitecache.Open(config.Cache.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			_ = store.Close()
		}
		var kinds osu.CachedKinds
		if config.Cache.Users {
			kinds |= osu.CacheUsers
		}
		if config.Cache.Scores {
			kinds |= osu.CacheScores
		}
		if config.Cache.Beatmaps {
			kinds |= osu.CacheBeatmaps
		}
		if config.Cache.Matches {
			kinds |= osu.CacheMatches
		}
		builder.Cache(store, kinds, time.Duration(config.Cache.TTLSeconds)*time.Second)
	}

	client, err := builder.Build()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

// userArg reads the first positional argument as a user id when numeric,
// as a username otherwise.
func userArg(cmd *cli.Command) (osu.UserIdentification, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return osu.UserIdentification{}, fmt.Errorf("no user specified")
	}
	if id, err := strconv.ParseUint(arg, 10, 32); err == nil {
		return osu.UserID(uint32(id)), nil
	}
	return osu.Username(arg), nil
}

func idArg(cmd *cli.Command, what string) (uint32, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("no %s specified", what)
	}
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return uint32(id), nil
}

func modeFlag(cmd *cli.Command) (*model.GameMode, error) {
	if !cmd.IsSet("mode") {
		return nil, nil
	}
	mode, err := model.GameModeFromCode(int(cmd.Uint("mode")))
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

func modsFlag(cmd *cli.Command) (*model.GameMods, error) {
	if !cmd.IsSet("mods") {
		return nil, nil
	}
	mods, err := model.ParseGameMods(cmd.String("mods"))
	if err != nil {
		return nil, err
	}
	return &mods, nil
}

func printJSON(v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(content))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verboseFlag := &cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"}
	modeFlagDef := &cli.UintFlag{Name: "mode", Aliases: []string{"m"}, Usage: "game mode (0=osu, 1=taiko, 2=catch, 3=mania)"}
	modsFlagDef := &cli.StringFlag{Name: "mods", Usage: "mod acronyms, e.g. HDHR"}
	limitFlagDef := &cli.UintFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of results"}

	cmd := &cli.Command{
		Name:                  "osu-cli",
		Usage:                 "Query the osu! v1 api",
		EnableShellCompletion: true,
		Flags:                 []cli.Flag{verboseFlag},
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Generate config file",
				Action: func(context.Context, *cli.Command) error {
					err := generateConfig()
					if err != nil {
						return err
					}
					fmt.Println("Config file generated successfully")
					return nil
				},
			},
			{
				Name:      "user",
				Usage:     "look up a user by name or id",
				ArgsUsage: "<name|id>",
				Flags: []cli.Flag{
					verboseFlag, modeFlagDef,
					&cli.UintFlag{Name: "event-days", Usage: "maximum age of the returned events, 1 to 31 days"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					user, err := userArg(cmd)
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.User(user)
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					if cmd.IsSet("event-days") {
						req.EventDays(uint32(cmd.Uint("event-days")))
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					if result == nil {
						return fmt.Errorf("user not found")
					}
					return printJSON(result)
				},
			},
			{
				Name:      "beatmap",
				Usage:     "look up a single beatmap by id",
				ArgsUsage: "<beatmap id>",
				Flags:     []cli.Flag{verboseFlag, modeFlagDef, modsFlagDef},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mapID, err := idArg(cmd, "beatmap id")
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.Beatmap().MapID(mapID)
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					if mods, err := modsFlag(cmd); err != nil {
						return err
					} else if mods != nil {
						req.Mods(*mods)
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					if result == nil {
						return fmt.Errorf("beatmap not found")
					}
					return printJSON(result)
				},
			},
			{
				Name:  "beatmaps",
				Usage: "search beatmaps",
				Flags: []cli.Flag{
					verboseFlag, modeFlagDef, limitFlagDef,
					&cli.StringFlag{Name: "creator", Aliases: []string{"c"}, Usage: "filter by mapper name or id"},
					&cli.UintFlag{Name: "set", Aliases: []string{"s"}, Usage: "filter by beatmapset id"},
					&cli.TimestampFlag{Name: "since", Config: cli.TimestampConfig{
						Timezone: time.UTC,
						Layouts:  []string{time.DateTime, time.DateOnly},
					}, Usage: "only maps ranked or loved after this time"},
					&cli.BoolFlag{Name: "converted", Usage: "include converted maps"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.Beatmaps()
					if creator := cmd.String("creator"); creator != "" {
						if id, err := strconv.ParseUint(creator, 10, 32); err == nil {
							req.Creator(osu.UserID(uint32(id)))
						} else {
							req.Creator(osu.Username(creator))
						}
					}
					if cmd.IsSet("set") {
						req.MapsetID(uint32(cmd.Uint("set")))
					}
					if cmd.IsSet("limit") {
						req.Limit(uint32(cmd.Uint("limit")))
					}
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					if cmd.IsSet("since") {
						req.Since(cmd.Timestamp("since"))
					}
					if cmd.IsSet("converted") {
						req.WithConverted(cmd.Bool("converted"))
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
			{
				Name:      "scores",
				Usage:     "leaderboard of a beatmap",
				ArgsUsage: "<beatmap id>",
				Flags: []cli.Flag{
					verboseFlag, modeFlagDef, modsFlagDef, limitFlagDef,
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "only scores of this user"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mapID, err := idArg(cmd, "beatmap id")
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.Scores(mapID)
					if user := cmd.String("user"); user != "" {
						if id, err := strconv.ParseUint(user, 10, 32); err == nil {
							req.User(osu.UserID(uint32(id)))
						} else {
							req.User(osu.Username(user))
						}
					}
					if cmd.IsSet("limit") {
						req.Limit(uint32(cmd.Uint("limit")))
					}
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					if mods, err := modsFlag(cmd); err != nil {
						return err
					} else if mods != nil {
						req.Mods(*mods)
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
			{
				Name:      "best",
				Usage:     "top scores of a user",
				ArgsUsage: "<name|id>",
				Flags:     []cli.Flag{verboseFlag, modeFlagDef, limitFlagDef},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					user, err := userArg(cmd)
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.TopScores(user)
					if cmd.IsSet("limit") {
						req.Limit(uint32(cmd.Uint("limit")))
					}
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
			{
				Name:      "recent",
				Usage:     "scores a user set within the last 24 hours",
				ArgsUsage: "<name|id>",
				Flags:     []cli.Flag{verboseFlag, modeFlagDef, limitFlagDef},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					user, err := userArg(cmd)
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					req := client.RecentScores(user)
					if cmd.IsSet("limit") {
						req.Limit(uint32(cmd.Uint("limit")))
					}
					if mode, err := modeFlag(cmd); err != nil {
						return err
					} else if mode != nil {
						req.Mode(*mode)
					}
					result, err := req.Exec(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
			{
				Name:      "match",
				Usage:     "look up a multiplayer match by id",
				ArgsUsage: "<match id>",
				Flags:     []cli.Flag{verboseFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					matchID, err := idArg(cmd, "match id")
					if err != nil {
						return err
					}
					client, cleanup, err := buildClient(cmd)
					if err != nil {
						return err
					}
					defer cleanup()
					result, err := client.Match(matchID).Exec(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
