package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report execution metrics, labelled by report name and outcome (ok, invalid, failed).
var (
	ReportExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_report_executions_total",
			Help: "Total number of analytics report executions",
		},
		[]string{"report", "outcome"},
	)
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_report_duration_seconds",
			Help:    "Analytics report latency in seconds, snapshot load included",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"report"},
	)
	ReportRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_report_rows",
			Help:    "Number of rows returned per analytics report",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"report"},
	)
)
