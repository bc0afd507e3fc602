package tasks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSucceeded = "succeeded"
	resultFailed    = "failed"
	resultDropped   = "dropped"
)

var (
	tasksSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_tasks_submitted_total",
		Help: "Background tasks submitted to the runtime.",
	}, []string{"task"})

	tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_tasks_total",
		Help: "Background tasks finished, by result.",
	}, []string{"task", "result"})

	tasksRetried = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_tasks_retried_total",
		Help: "Failed task attempts that were retried.",
	}, []string{"task"})

	taskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "users_resources_task_duration_seconds",
		Help:    "Wall time of a task including retries.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})
)
