package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"tradelens/internal/modules/journal"
)

// Handlers contains HTTP handlers for the analytics API
type Handlers struct {
	service *Service
	repo    *journal.TradeRepository
	log     zerolog.Logger
}

// NewHandlers creates a new analytics handlers instance
func NewHandlers(service *Service, repo *journal.TradeRepository, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		repo:    repo,
		log:     log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleGetDashboard returns the full dashboard report
// GET /api/dashboard?account_id=&year=&month=
func (h *Handlers) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r)
	if !ok {
		return
	}

	year, month := yearMonthParams(r)
	h.respondJSON(w, h.service.DashboardReport(trades, year, month))
}

// HandleGetMetrics returns the scalar performance summary
// GET /api/analytics/metrics?account_id=
func (h *Handlers) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, ComputeMetrics(trades))
}

// HandleGetEquityCurve returns the cumulative P&L series
// GET /api/analytics/equity-curve?account_id=
func (h *Handlers) HandleGetEquityCurve(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, BuildEquityCurve(trades))
}

// HandleGetBehavior returns the behavioral profile
// GET /api/analytics/behavior?account_id=
func (h *Handlers) HandleGetBehavior(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, ComputeBehavior(trades))
}

// HandleGetCalendar returns the month view
// GET /api/analytics/calendar?account_id=&year=&month=
func (h *Handlers) HandleGetCalendar(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r)
	if !ok {
		return
	}

	year, month := yearMonthParams(r)
	h.respondJSON(w, BuildCalendar(trades, year, month))
}

// loadTrades fetches the trade snapshot for a request, applying the
// account_id filter before any aggregation
func (h *Handlers) loadTrades(w http.ResponseWriter, r *http.Request) ([]journal.Trade, bool) {
	trades, err := h.repo.ListAll(r.URL.Query().Get("account_id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load trades")
		http.Error(w, "Failed to load trades", http.StatusInternalServerError)
		return nil, false
	}
	return trades, true
}

// yearMonthParams reads the calendar selector, defaulting to the
// current UTC month when absent or out of range
func yearMonthParams(r *http.Request) (int, int) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			year = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}

	return year, month
}

func (h *Handlers) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
