package engine

import (
	"github.com/zeromicro/go-zero/core/metric"
)

var (
	attackTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "subcrack",
		Subsystem: "attack",
		Name:      "total",
		Help:      "How many attacks ran, partitioned by outcome.",
		Labels:    []string{"outcome"},
	})
	attackDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "subcrack",
		Subsystem: "attack",
		Name:      "duration_ms",
		Help:      "Attack duration in milliseconds.",
		Labels:    []string{"outcome"},
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})
	candidatesTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "subcrack",
		Subsystem: "candidates",
		Name:      "total",
		Help:      "How many candidate keys produced a segmentable decoding, partitioned by strategy.",
		Labels:    []string{"strategy"},
	})
)
