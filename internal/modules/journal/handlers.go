package journal

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Handlers contains HTTP handlers for the journal API
type Handlers struct {
	repo *TradeRepository
	log  zerolog.Logger
}

// NewHandlers creates a new journal handlers instance
func NewHandlers(repo *TradeRepository, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo: repo,
		log:  log.With().Str("handler", "journal").Logger(),
	}
}

// HandleGetTrades returns recent trades
// GET /api/trades?account_id=&limit=
func (h *Handlers) HandleGetTrades(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	trades, err := h.repo.ListRecent(r.URL.Query().Get("account_id"), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get trades")
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}
	if trades == nil {
		trades = []Trade{}
	}

	h.respondJSON(w, trades)
}

// HandleGetTradesForDate returns trades whose exit date equals {date}
// GET /api/trades/{date}?account_id=
func (h *Handlers) HandleGetTradesForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !datePattern.MatchString(date) {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	trades, err := h.repo.ListByExitDate(date, r.URL.Query().Get("account_id"))
	if err != nil {
		h.log.Error().Err(err).Str("date", date).Msg("Failed to get trades for date")
		http.Error(w, "Failed to get trades for date", http.StatusInternalServerError)
		return
	}
	if trades == nil {
		trades = []Trade{}
	}

	h.respondJSON(w, trades)
}

// HandleGetAccounts returns the distinct account ids in the journal
// GET /api/accounts
func (h *Handlers) HandleGetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.Accounts()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get accounts")
		http.Error(w, "Failed to get accounts", http.StatusInternalServerError)
		return
	}
	if accounts == nil {
		accounts = []string{}
	}

	h.respondJSON(w, accounts)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
