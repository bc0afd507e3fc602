package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/service/group"
)

type groupService interface {
	Create(ctx context.Context, in group.Input) (*domain.GroupAggregate, error)
	Read(ctx context.Context, id uuid.UUID) (*domain.GroupAggregate, error)
	Update(ctx context.Context, id uuid.UUID, in group.Input) (*domain.GroupAggregate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	Search(ctx context.Context, query string, page, size int) (*group.SearchResult, error)
}

// GroupHandler serves the groups REST endpoints.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "groups")}
}

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsManaged   bool   `json:"is_managed"`
}

func (req groupRequest) input() group.Input {
	return group.Input{Name: req.Name, Description: req.Description, IsManaged: req.IsManaged}
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agg, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, agg)
}

// Read handles GET /api/groups/{id}.
func (h *GroupHandler) Read(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agg, err := h.svc.Read(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// Update handles PUT /api/groups/{id}.
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req groupRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agg, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// Delete handles DELETE /api/groups/{id}.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember handles PUT /api/groups/{id}/members/{user_id}.
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	h.membership(h.svc.AddMember)(w, r)
}

// RemoveMember handles DELETE /api/groups/{id}/members/{user_id}.
func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.membership(h.svc.RemoveMember)(w, r)
}

func (h *GroupHandler) membership(fn func(ctx context.Context, groupID, userID uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := pathUUID(r, "id")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		userID, err := pathUUID(r, "user_id")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		if err := fn(r.Context(), groupID, userID); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Search handles GET /api/groups.
func (h *GroupHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, page, size := pageParams(r)
	res, err := h.svc.Search(r.Context(), q, page, size)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	hits := res.Groups
	if hits == nil {
		hits = []domain.GroupAggregate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": res.Total, "hits": hits})
}
