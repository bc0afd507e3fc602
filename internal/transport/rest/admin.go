package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/users-resources/internal/domain"
)

type indexRebuilder interface {
	RebuildIndex(ctx context.Context) (int, error)
}

// AdminHandler serves maintenance endpoints.
type AdminHandler struct {
	rebuilders map[domain.EntityType]indexRebuilder
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler. Each service rebuilds its own
// index so the service's permission check applies.
func NewAdminHandler(users, groups, domains indexRebuilder, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		rebuilders: map[domain.EntityType]indexRebuilder{
			domain.EntityUsers:   users,
			domain.EntityGroups:  groups,
			domain.EntityDomains: domains,
		},
		log: logger.With("handler", "admin"),
	}
}

// RebuildIndex handles POST /api/admin/reindex/{type}.
func (h *AdminHandler) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	rb, ok := h.rebuilders[domain.EntityType(r.PathValue("type"))]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown index")
		return
	}

	n, err := rb.RebuildIndex(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"documents": n})
}
