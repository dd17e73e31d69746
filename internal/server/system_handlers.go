package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/disk"

	"tradelens/internal/database"
)

// SystemHandlers contains HTTP handlers for system monitoring
type SystemHandlers struct {
	log       zerolog.Logger
	journalDB *database.DB
	startedAt time.Time
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, journalDB *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		journalDB: journalDB,
		startedAt: time.Now(),
	}
}

// HandleSystemStatus returns process uptime, database statistics, and
// disk usage of the data directory
// GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	}

	if stats, err := h.journalDB.GetStats(); err == nil {
		status["database"] = map[string]interface{}{
			"name":           h.journalDB.Name(),
			"size_bytes":     stats.SizeBytes,
			"wal_size_bytes": stats.WALSizeBytes,
			"page_count":     stats.PageCount,
			"page_size":      stats.PageSize,
		}
	} else {
		h.log.Warn().Err(err).Msg("Failed to get database stats")
	}

	dataDir := filepath.Dir(h.journalDB.Path())
	if usage, err := disk.Usage(dataDir); err == nil {
		status["disk"] = map[string]interface{}{
			"path":         dataDir,
			"total_bytes":  usage.Total,
			"free_bytes":   usage.Free,
			"used_percent": usage.UsedPercent,
		}
	} else {
		h.log.Warn().Err(err).Str("path", dataDir).Msg("Failed to get disk usage")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
