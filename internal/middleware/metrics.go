package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuthFailures counts failed authentication attempts by reason
// (invalid_credentials, invalid_session).
var AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skillswap_auth_failures_total",
	Help: "Failed authentication attempts by reason.",
}, []string{"reason"})

// SwapDecisions counts swap request decisions by outcome status.
var SwapDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skillswap_swap_decisions_total",
	Help: "Swap request decisions by resulting status.",
}, []string{"status"})
