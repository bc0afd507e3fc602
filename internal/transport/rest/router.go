package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Users   *UserHandler
	Groups  *GroupHandler
	Domains *DomainHandler
	Admin   *AdminHandler
}

// NewRouter registers all routes. moderation wraps the user moderation
// endpoints, typically with a rate limiter.
func NewRouter(h Handlers, moderation func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/users", h.Users.Search)
	mux.HandleFunc("GET /api/users/all", h.Users.SearchAll)
	mux.HandleFunc("POST /api/users", h.Users.Create)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Read)
	mux.HandleFunc("PATCH /api/users/{id}", h.Users.Update)
	mux.HandleFunc("PUT /api/users/{id}/profile", h.Users.UpdateProfile)
	mux.HandleFunc("DELETE /api/users/{id}", h.Users.Delete)

	mod := func(fn http.HandlerFunc) http.Handler { return moderation(fn) }
	mux.Handle("POST /api/users/{id}/block", mod(h.Users.Block))
	mux.Handle("POST /api/users/{id}/restore", mod(h.Users.Restore))
	mux.Handle("POST /api/users/{id}/approve", mod(h.Users.Approve))
	mux.Handle("POST /api/users/{id}/deactivate", mod(h.Users.Deactivate))
	mux.Handle("POST /api/users/{id}/activate", mod(h.Users.Activate))

	mux.HandleFunc("GET /api/groups", h.Groups.Search)
	mux.HandleFunc("POST /api/groups", h.Groups.Create)
	mux.HandleFunc("GET /api/groups/{id}", h.Groups.Read)
	mux.HandleFunc("PUT /api/groups/{id}", h.Groups.Update)
	mux.HandleFunc("DELETE /api/groups/{id}", h.Groups.Delete)
	mux.HandleFunc("PUT /api/groups/{id}/members/{user_id}", h.Groups.AddMember)
	mux.HandleFunc("DELETE /api/groups/{id}/members/{user_id}", h.Groups.RemoveMember)

	mux.HandleFunc("GET /api/domains", h.Domains.Search)
	mux.HandleFunc("POST /api/domains", h.Domains.Create)
	mux.HandleFunc("GET /api/domains/{name}", h.Domains.Read)
	mux.HandleFunc("PUT /api/domains/{name}", h.Domains.Update)
	mux.HandleFunc("DELETE /api/domains/{name}", h.Domains.Delete)

	mux.HandleFunc("POST /api/admin/reindex/{type}", h.Admin.RebuildIndex)

	return mux
}
