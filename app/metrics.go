package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "pos_minter"

var (
	MintsPrepared = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "preparer",
		Name:      "mints_prepared_total",
		Help:      "Mint preparations by result",
	}, []string{"result"})

	PrepareDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "preparer",
		Name:      "prepare_duration_seconds",
		Help:      "Time spent building and co-signing a mint transaction",
		Buckets:   prometheus.DefBuckets,
	})

	CollateralCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "wallet",
		Name:      "collateral_created_total",
		Help:      "Collateral outputs created by the server wallet",
	})

	SubmitAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "submit",
		Name:      "attempts_total",
		Help:      "Submission attempts by strategy and result",
	}, []string{"strategy", "result"})

	Probes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "tracker",
		Name:      "probes_total",
		Help:      "Confirmation probes by outcome",
	}, []string{"outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	PendingTransactions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "tracker",
		Name:      "pending_transactions",
		Help:      "Submitted transactions not yet confirmed, as of the last monitor run",
	})
)
