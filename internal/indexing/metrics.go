package indexing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opIndex  = "index"
	opDelete = "delete"

	resultSucceeded = "succeeded"
	resultFailed    = "failed"
	resultSkipped   = "skipped"
)

var (
	reindexTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_reindex_total",
		Help: "Bulk reindex operations by entity type, operation and result.",
	}, []string{"entity", "op", "result"})

	reindexConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_reindex_conflicts_total",
		Help: "Documents rejected by the index because a newer revision was stored.",
	}, []string{"entity"})

	rebuildDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_resources_rebuild_documents_total",
		Help: "Documents written by full index rebuilds.",
	}, []string{"entity"})
)
