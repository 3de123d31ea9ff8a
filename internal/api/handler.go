package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/format"
	"github.com/mtlprog/patrimoine/internal/rates"
	"github.com/mtlprog/patrimoine/internal/render"
)

// RateSource exposes the session's rate table and whether it is still loading.
type RateSource interface {
	Snapshot() (rates.Result, bool)
}

// Handler provides HTTP endpoints for the dashboard.
type Handler struct {
	rates       RateSource
	holdings    domain.Holdings
	formatter   *format.Formatter
	defaultBase domain.Currency
}

// NewHandler creates a new dashboard handler.
func NewHandler(rs RateSource, h domain.Holdings, f *format.Formatter, defaultBase domain.Currency) *Handler {
	return &Handler{
		rates:       rs,
		holdings:    h,
		formatter:   f,
		defaultBase: defaultBase,
	}
}

type ratesResponse struct {
	Rates    domain.RateTable `json:"rates"`
	Loading  bool             `json:"loading"`
	Fallback bool             `json:"fallback"`
}

// GetDashboardPage handles GET /.
func (h *Handler) GetDashboardPage(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, v, h.formatter); err != nil {
		slog.Error("failed to render dashboard page", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// GetDashboard handles GET /api/v1/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// GetRates handles GET /api/v1/rates.
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	res, loading := h.rates.Snapshot()
	writeJSON(w, http.StatusOK, ratesResponse{
		Rates:    res.Table,
		Loading:  loading,
		Fallback: res.Fallback,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// view builds the snapshot for the display state carried by the request query.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) (dashboard.View, bool) {
	res, loading := h.rates.Snapshot()

	s := dashboard.Initial(h.defaultBase)
	if !loading {
		s = s.Loaded()
	}
	s, err := dashboard.FromQuery(s, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return dashboard.View{}, false
	}
	return dashboard.Build(s, h.holdings, res.Table), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
