package repositories

import (
	"context"
	"sync"
	"time"

	"healthtrack/internal/models"
)

// MockMedicalHistoryRepository is an in-memory implementation of MedicalHistoryRepository.
type MockMedicalHistoryRepository struct {
	entries []models.MedicalHistory
	nextID  uint
	mu      sync.RWMutex
}

// NewMockMedicalHistoryRepository creates a new instance of MockMedicalHistoryRepository.
func NewMockMedicalHistoryRepository() *MockMedicalHistoryRepository {
	return &MockMedicalHistoryRepository{}
}

// Create appends a new entry.
func (r *MockMedicalHistoryRepository) Create(_ context.Context, entry *models.MedicalHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

// ListByUser returns the user's entries in insertion order.
func (r *MockMedicalHistoryRepository) ListByUser(_ context.Context, userID uint) ([]models.MedicalHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.MedicalHistory, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	return list, nil
}

// DeleteByUser removes every entry owned by userID.
func (r *MockMedicalHistoryRepository) DeleteByUser(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}
