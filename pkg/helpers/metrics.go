package helpers

import "expvar"

// Process-wide counters published on /debug/vars.
var (
	RequestsTotal     = expvar.NewInt("requests_total")
	ResponsesByStatus = expvar.NewMap("responses_by_status")
	AuthRejected      = expvar.NewInt("auth_rejected")
	Forbidden         = expvar.NewInt("forbidden")
	RateLimited       = expvar.NewInt("rate_limited")
)
