package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

func TestAuditService_Record_FillsDefaults(t *testing.T) {
	audit := NewAuditService(100, logger.Nop())

	audit.Record(models.AuditEntry{
		Action: models.AuditAuthFailed,
		Result: models.AuditResultFailure,
	})

	entries := audit.Query(models.AuditFilter{})
	assert.Len(t, entries, 1)
	assert.Equal(t, "anonymous", entries[0].User)
	assert.Equal(t, "unknown", entries[0].Role)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAuditService_Record_KeepsProvidedIdentity(t *testing.T) {
	audit := NewAuditService(100, logger.Nop())
	stamped := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	audit.Record(models.AuditEntry{
		Timestamp: stamped,
		Action:    models.AuditLoginSuccess,
		User:      "alice",
		Role:      string(models.RoleManager),
		Result:    models.AuditResultSuccess,
	})

	entries := audit.Query(models.AuditFilter{})
	assert.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].User)
	assert.Equal(t, string(models.RoleManager), entries[0].Role)
	assert.Equal(t, stamped, entries[0].Timestamp)
}

func TestAuditService_Record_TrimsOldestHalfAtCapacity(t *testing.T) {
	audit := NewAuditService(10, logger.Nop())

	for i := 0; i < 10; i++ {
		audit.Record(models.AuditEntry{
			Action: models.AuditAccessGranted,
			User:   fmt.Sprintf("user-%d", i),
			Result: models.AuditResultSuccess,
		})
	}
	assert.Equal(t, 10, audit.Len())

	// the 11th entry forces one trim: the oldest half is cut, the new entry
	// is appended on top of the surviving half
	audit.Record(models.AuditEntry{
		Action: models.AuditAccessGranted,
		User:   "user-10",
		Result: models.AuditResultSuccess,
	})

	assert.Equal(t, 6, audit.Len())

	entries := audit.Query(models.AuditFilter{})
	assert.Equal(t, "user-10", entries[0].User)
	assert.Equal(t, "user-5", entries[len(entries)-1].User)

	// the trimmed entries are gone for good
	assert.Empty(t, audit.Query(models.AuditFilter{User: "user-0"}))
}

func TestAuditService_Query_NewestFirst(t *testing.T) {
	audit := NewAuditService(100, logger.Nop())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		audit.Record(models.AuditEntry{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Action:    models.AuditLoginSuccess,
			User:      "bob",
			Result:    models.AuditResultSuccess,
		})
	}

	entries := audit.Query(models.AuditFilter{})
	assert.Len(t, entries, 3)
	assert.Equal(t, base.Add(2*time.Minute), entries[0].Timestamp)
	assert.Equal(t, base, entries[2].Timestamp)
}

func TestAuditService_Query_Filters(t *testing.T) {
	audit := NewAuditService(100, logger.Nop())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	audit.Record(models.AuditEntry{Timestamp: base, Action: models.AuditAuthFailed, User: "alice", Result: models.AuditResultFailure})
	audit.Record(models.AuditEntry{Timestamp: base.Add(time.Minute), Action: models.AuditLoginSuccess, User: "alice", Result: models.AuditResultSuccess})
	audit.Record(models.AuditEntry{Timestamp: base.Add(2 * time.Minute), Action: models.AuditAuthFailed, User: "bob", Result: models.AuditResultFailure})

	tests := []struct {
		name   string
		filter models.AuditFilter
		want   int
	}{
		{
			name:   "by user, case-insensitive",
			filter: models.AuditFilter{User: "ALICE"},
			want:   2,
		},
		{
			name:   "by action",
			filter: models.AuditFilter{Action: models.AuditAuthFailed},
			want:   2,
		},
		{
			name:   "by user and action",
			filter: models.AuditFilter{User: "alice", Action: models.AuditAuthFailed},
			want:   1,
		},
		{
			name:   "since cuts older entries",
			filter: models.AuditFilter{Since: base.Add(time.Minute)},
			want:   2,
		},
		{
			name:   "no match",
			filter: models.AuditFilter{User: "mallory"},
			want:   0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Len(t, audit.Query(test.filter), test.want)
		})
	}
}

func TestAuditService_Query_CappedAtLimit(t *testing.T) {
	audit := NewAuditService(3000, logger.Nop())

	for i := 0; i < auditQueryLimit+50; i++ {
		audit.Record(models.AuditEntry{
			Action: models.AuditAccessGranted,
			User:   "carol",
			Result: models.AuditResultSuccess,
		})
	}

	assert.Len(t, audit.Query(models.AuditFilter{}), auditQueryLimit)
}
