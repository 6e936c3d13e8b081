package otp

import (
	"context"
	"sync"
	"time"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-memory Repository. Records do not
// survive a process restart.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[string]*models.OTPRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*models.OTPRecord)}
}

func (r *MemoryRepository) Put(ctx context.Context, rec *models.OTPRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[rec.Email] = rec
	return nil
}

// Consume iterates the table in map order; when several unexpired records
// share code, whichever the iteration reaches first is consumed.
func (r *MemoryRepository) Consume(ctx context.Context, code string, now time.Time) (*models.OTPRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, rec := range r.records {
		if rec.Expired(now) {
			delete(r.records, email)
			continue
		}
		if rec.Code == code {
			delete(r.records, email)
			return rec, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) SweepExpired(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for email, rec := range r.records {
		if rec.Expired(now) {
			delete(r.records, email)
			removed++
		}
	}
	return removed
}

// Len reports the number of outstanding records.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
