package service

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

const (
	// auditQueryLimit caps the number of entries one query may return.
	auditQueryLimit = 1000

	// auditTrimRatio is the fraction of capacity kept when the log is full.
	auditTrimRatio = 2
)

// auditService is the concrete implementation of AuditService.
// Entries live in a bounded in-memory slice: when the log reaches capacity
// the oldest half is dropped in one cut, so trimming stays rare.
type auditService struct {
	mu      sync.RWMutex
	entries []models.AuditEntry

	capacity int

	logger *logger.Logger
}

// NewAuditService constructs an AuditService holding at most capacity
// entries.
func NewAuditService(capacity int, logger *logger.Logger) AuditService {
	return &auditService{
		entries:  make([]models.AuditEntry, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Record appends one entry, stamping it and filling the anonymous defaults
// if the caller left the identity fields empty. Every entry is also mirrored
// to the structured log.
func (a *auditService) Record(entry models.AuditEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.User == "" {
		entry.User = "anonymous"
	}
	if entry.Role == "" {
		entry.Role = "unknown"
	}

	a.mu.Lock()
	if len(a.entries) >= a.capacity {
		keep := a.capacity / auditTrimRatio
		a.entries = append(a.entries[:0:0], a.entries[len(a.entries)-keep:]...)
	}
	a.entries = append(a.entries, entry)
	a.mu.Unlock()

	a.logger.Info().
		Str("action", string(entry.Action)).
		Str("user", entry.User).
		Str("role", entry.Role).
		Str("source_ip", entry.SourceIP).
		Str("resource", entry.Resource).
		Str("result", string(entry.Result)).
		Msg("audit")
}

// Query returns entries matching the filter, newest first, capped at the
// query limit.
func (a *auditService) Query(filter models.AuditFilter) []models.AuditEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	matched := make([]models.AuditEntry, 0, auditQueryLimit)
	for i := len(a.entries) - 1; i >= 0 && len(matched) < auditQueryLimit; i-- {
		entry := a.entries[i]

		if filter.User != "" && !strings.EqualFold(entry.User, filter.User) {
			continue
		}
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if !filter.Since.IsZero() && entry.Timestamp.Before(filter.Since) {
			continue
		}

		matched = append(matched, entry)
	}

	return matched
}

// Len reports the number of retained entries.
func (a *auditService) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}
