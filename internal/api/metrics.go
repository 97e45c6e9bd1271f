package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gigly_decisions_total",
		Help: "Offer decisions returned, by action and operating mode.",
	}, []string{"action", "mode"})

	acceptanceRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gigly_acceptance_rate",
		Help: "Current acceptance ratio after the latest decision.",
	})

	declinesLeft = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gigly_declines_left",
		Help: "Remaining declines before the acceptance-rate target is breached.",
	})
)
