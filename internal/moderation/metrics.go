package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultCommitted  = "committed"
	resultRolledBack = "rolled_back"
	resultFailed     = "failed"
	resultLockLost   = "lock_lost"
)

var chainsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "users_resources_moderation_chains_total",
	Help: "Moderation callback chain executions by action and result.",
}, []string{"action", "result"})
