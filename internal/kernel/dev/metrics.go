package dev

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bowyer_stream_ops_completed_total",
		Help: "Total kernels completed by device streams",
	})

	streamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bowyer_stream_ops_failed_total",
		Help: "Total kernels that failed and poisoned a device stream",
	})

	streamDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bowyer_stream_ops_dropped_total",
		Help: "Total kernels drained without execution from a poisoned stream",
	})

	streamDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bowyer_stream_queue_depth",
		Help: "Queued kernels on the device stream at last submit",
	})
)
