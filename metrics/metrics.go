package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PostersGeneratedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "festival_posters_generated_total",
		Help: "Number of result posters rendered and published",
	},
)

var PosterFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "festival_poster_failures_total",
	Help: "Number of poster templates skipped, by the stage that failed",
}, []string{"stage"})

var PosterGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "festival_poster_generation_duration_seconds",
	Help: "Duration of a full poster generation for one event",
	Buckets: []float64{
		0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60,
	},
})

var ResultsSubmittedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "festival_results_submitted_total",
	Help: "Number of result submissions by outcome",
}, []string{"outcome"})

var AnnouncementCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "festival_announcements_total",
	Help: "Number of result announcements by channel and outcome",
}, []string{"channel", "outcome"})

var StandingsSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "festival_standings_subscribers",
	Help: "Current number of websocket clients following the standings",
})

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "festival_sql_query_duration_seconds",
	Help: "Duration of aggregate sql queries in seconds",
}, []string{"query"})

var RankingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "festival_ranking_duration_seconds",
	Help: "Duration of the in-memory ranking step of standings",
	Buckets: []float64{
		0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1,
	},
}, []string{"standing"})
