// internal/adapters/in/http/handlers/report_handler.go
package handlers

import (
	"context"
	"net/http"
	"strings"

	"borgo/internal/adapters/out/postgres"
)

// ShopReporting is the slice of the Postgres read model the handler needs.
type ShopReporting interface {
	ListSummaries(ctx context.Context, category string, limit int) ([]postgres.ShopSummary, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// ReportHandler serves the /reports endpoints backed by the replicated
// reporting table. Mounted only when DATABASE_URL is configured.
type ReportHandler struct {
	reporting ShopReporting
}

func NewReportHandler(reporting ShopReporting) http.Handler {
	return &ReportHandler{reporting: reporting}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.reporting == nil {
		writeErr(w, http.StatusServiceUnavailable, "reporting is not configured")
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/reports/shops":
		h.listShops(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/reports/categories":
		h.countCategories(w, r)
	default:
		notFound(w)
	}
}

// GET /reports/shops?category=Ristoranti&limit=20
func (h *ReportHandler) listShops(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	limit := parseIntDefault(r.URL.Query().Get("limit"), 50)

	rows, err := h.reporting.ListSummaries(r.Context(), category, limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []postgres.ShopSummary{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// GET /reports/categories
func (h *ReportHandler) countCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reporting.CountByCategory(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
