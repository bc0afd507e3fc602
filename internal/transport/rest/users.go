package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/service/user"
)

type userService interface {
	Create(ctx context.Context, in user.CreateInput) (*domain.UserAggregate, error)
	Read(ctx context.Context, id uuid.UUID) (*domain.UserAggregate, error)
	Update(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*domain.UserAggregate, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileInput) (*domain.UserAggregate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, in user.SearchInput) (*user.SearchResult, error)
	SearchAll(ctx context.Context, in user.SearchInput) (*user.SearchResult, error)
	Block(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
}

// UserHandler serves the users REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type createUserRequest struct {
	Email        string                  `json:"email"`
	Username     *string                 `json:"username"`
	FullName     string                  `json:"full_name"`
	Affiliations string                  `json:"affiliations"`
	Preferences  *domain.UserPreferences `json:"preferences"`
}

type updateUserRequest struct {
	Email       *string                 `json:"email"`
	Username    *string                 `json:"username"`
	Preferences *domain.UserPreferences `json:"preferences"`
}

type profileRequest struct {
	FullName     string `json:"full_name"`
	Affiliations string `json:"affiliations"`
}

type userListResponse struct {
	Total uint64                 `json:"total"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
	Hits  []domain.UserAggregate `json:"hits"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	agg, err := h.svc.Create(r.Context(), user.CreateInput{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		Affiliations: req.Affiliations,
		Preferences:  req.Preferences,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, agg)
}

// Read handles GET /api/users/{id}.
func (h *UserHandler) Read(w http.ResponseWriter, r *http.Request) {
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

// Update handles PATCH /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	agg, err := h.svc.Update(r.Context(), id, user.UpdateInput{
		Email:       req.Email,
		Username:    req.Username,
		Preferences: req.Preferences,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// UpdateProfile handles PUT /api/users/{id}/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req profileRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	agg, err := h.svc.UpdateProfile(r.Context(), id, user.ProfileInput{
		FullName:     req.FullName,
		Affiliations: req.Affiliations,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Delete)(w, r)
}

// Search handles GET /api/users.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(h.svc.Search)(w, r)
}

// SearchAll handles GET /api/users/all.
func (h *UserHandler) SearchAll(w http.ResponseWriter, r *http.Request) {
	h.search(h.svc.SearchAll)(w, r)
}

func (h *UserHandler) search(fn func(context.Context, user.SearchInput) (*user.SearchResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, page, size := pageParams(r)
		res, err := fn(r.Context(), user.SearchInput{Query: q, Page: page, Size: size})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		hits := res.Users
		if hits == nil {
			hits = []domain.UserAggregate{}
		}
		writeJSON(w, http.StatusOK, userListResponse{Total: res.Total, Page: res.Page, Size: res.Size, Hits: hits})
	}
}

// Block handles POST /api/users/{id}/block.
func (h *UserHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Block)(w, r)
}

// Restore handles POST /api/users/{id}/restore.
func (h *UserHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Restore)(w, r)
}

// Approve handles POST /api/users/{id}/approve.
func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Approve)(w, r)
}

// Deactivate handles POST /api/users/{id}/deactivate.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Deactivate)(w, r)
}

// Activate handles POST /api/users/{id}/activate.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.moderate(h.svc.Activate)(w, r)
}

// moderate adapts an id-only action. Success is 204 No Content.
func (h *UserHandler) moderate(fn func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		if err := fn(r.Context(), id); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
