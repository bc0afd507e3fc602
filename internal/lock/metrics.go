package lock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opAcquire = "acquire"
	opRenew   = "renew"
	opRelease = "release"

	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

var lockOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "users_resources_moderation_lock_operations_total",
	Help: "Moderation lock operations by result.",
}, []string{"op", "result"})
