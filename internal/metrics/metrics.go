package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionsTotal counts operator actions by action name and outcome
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsign_actions_total",
			Help: "Total number of operator actions",
		},
		[]string{"action", "outcome"},
	)

	// ContractCallsTotal counts remote contract calls by method and status
	ContractCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsign_contract_calls_total",
			Help: "Total number of contract method calls",
		},
		[]string{"method", "status"},
	)

	// ContractCallDuration tracks how long a single contract call takes
	ContractCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docsign_contract_call_duration_seconds",
			Help:    "Contract method call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// ConnectionAttempts counts wallet connection attempts by result
	ConnectionAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsign_connection_attempts_total",
			Help: "Total number of wallet connection attempts",
		},
		[]string{"result"},
	)

	// StaleStatusDropped counts completions that arrived after a newer request was already shown
	StaleStatusDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docsign_stale_status_dropped_total",
			Help: "Total number of stale action results not shown on the status board",
		},
	)
)
