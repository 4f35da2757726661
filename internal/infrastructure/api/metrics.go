package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copyfx_transforms_total",
			Help: "Image transforms handled over HTTP, by effect and outcome",
		},
		[]string{"effect", "outcome"},
	)

	transformDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copyfx_transform_duration_seconds",
			Help:    "Time spent transforming one image, including the model call",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"effect"},
	)
)
