package recommend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type requestKind string

const (
	kindSearch  requestKind = "search"
	kindGeneral requestKind = "general"
	kindUrgent  requestKind = "urgent"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wasteless_recommend_duration_seconds",
			Help:    "Time spent building a result page, by pipeline",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"kind"},
	)

	resultsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wasteless_recommend_results",
			Help:    "Number of recipes surviving matching and filtering, by pipeline",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"kind"},
	)

	urgentShortCircuits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wasteless_recommend_urgent_empty_total",
		Help: "Urgent requests answered without matching because nothing expires soon",
	})
)

func observeDuration(kind requestKind, start time.Time) {
	requestDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
