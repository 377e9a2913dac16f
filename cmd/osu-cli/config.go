package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const configPath = "./config.toml"

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Path       string `toml:"path"`
	TTLSeconds int64  `toml:"ttl_seconds"`
	Users      bool   `toml:"users"`
	Scores     bool   `toml:"scores"`
	Beatmaps   bool   `toml:"beatmaps"`
	Matches    bool   `toml:"matches"`
}

type Config struct {
	ApiKey            string      `toml:"api_key"`
	TimeoutSeconds    int64       `toml:"timeout_seconds"`
	RequestsPerSecond uint32      `toml:"requests_per_second"`
	Cache             CacheConfig `toml:"cache"`
}

func loadConfig() (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	config := Config{}
	err = toml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func generateConfig() error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists")
	}
	config := Config{
		ApiKey:            "your_v1_api_key",
		TimeoutSeconds:    10,
		RequestsPerSecond: 15,
		Cache: CacheConfig{
			Enabled:    false,
			Path:       "./cache.db",
			TTLSeconds: 300,
			Users:      true,
			Scores:     true,
			Beatmaps:   true,
			Matches:    true,
		},
	}
	content, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, content, 0644)
}
