package osu

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	counters *prometheus.CounterVec

	beatmaps     prometheus.Counter
	matches      prometheus.Counter
	recentScores prometheus.Counter
	scores       prometheus.Counter
	topScores    prometheus.Counter
	users        prometheus.Counter
	cached       prometheus.Counter
}

func newMetrics() *metrics {
	counters := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osu_requests",
		Help: "osu!api request count",
	}, []string{"type"})

	return &metrics{
		counters:     counters,
		beatmaps:     counters.WithLabelValues("Beatmaps"),
		matches:      counters.WithLabelValues("Matches"),
		recentScores: counters.WithLabelValues("RecentScores"),
		scores:       counters.WithLabelValues("Scores"),
		topScores:    counters.WithLabelValues("TopScores"),
		users:        counters.WithLabelValues("Users"),
		cached:       counters.WithLabelValues("Cached"),
	}
}
