package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/service/emaildomain"
)

type domainService interface {
	Create(ctx context.Context, name string, in emaildomain.Input) (*domain.DomainAggregate, error)
	Read(ctx context.Context, name string) (*domain.DomainAggregate, error)
	Update(ctx context.Context, name string, in emaildomain.Input) (*domain.DomainAggregate, error)
	Delete(ctx context.Context, name string) error
	Search(ctx context.Context, query string, page, size int) (*emaildomain.SearchResult, error)
}

// DomainHandler serves the email domains REST endpoints.
type DomainHandler struct {
	svc domainService
	log *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(svc domainService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{svc: svc, log: logger.With("handler", "domains")}
}

type domainRequest struct {
	Domain        string  `json:"domain"`
	Status        int     `json:"status"`
	Category      *string `json:"category"`
	Flagged       bool    `json:"flagged"`
	FlaggedSource string  `json:"flagged_source"`
}

func (req domainRequest) input() emaildomain.Input {
	return emaildomain.Input{
		Status:        domain.DomainStatus(req.Status),
		Category:      req.Category,
		Flagged:       req.Flagged,
		FlaggedSource: req.FlaggedSource,
	}
}

// Create handles POST /api/domains.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domainRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agg, err := h.svc.Create(r.Context(), req.Domain, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, agg)
}

// Read handles GET /api/domains/{name}.
func (h *DomainHandler) Read(w http.ResponseWriter, r *http.Request) {
	agg, err := h.svc.Read(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// Update handles PUT /api/domains/{name}.
func (h *DomainHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domainRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agg, err := h.svc.Update(r.Context(), r.PathValue("name"), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// Delete handles DELETE /api/domains/{name}.
func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("name")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /api/domains.
func (h *DomainHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, page, size := pageParams(r)
	res, err := h.svc.Search(r.Context(), q, page, size)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	hits := res.Domains
	if hits == nil {
		hits = []domain.DomainAggregate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": res.Total, "hits": hits})
}
