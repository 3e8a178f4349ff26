package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"healthtrack/internal/models"
)

type dailyDataKey struct {
	userID uint
	date   string
}

// MockDailyDataRepository is an in-memory implementation of DailyDataRepository.
type MockDailyDataRepository struct {
	rows   map[dailyDataKey]models.DailyData
	nextID uint
	mu     sync.RWMutex
}

// NewMockDailyDataRepository creates a new instance of MockDailyDataRepository.
func NewMockDailyDataRepository() *MockDailyDataRepository {
	return &MockDailyDataRepository{
		rows: make(map[dailyDataKey]models.DailyData),
	}
}

// FindByUserAndDate returns the user's row for date.
func (r *MockDailyDataRepository) FindByUserAndDate(_ context.Context, userID uint, date models.Date) (*models.DailyData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.rows[dailyDataKey{userID, date.String()}]
	if !ok {
		return nil, fmt.Errorf("daily data for user %d on %s: %w", userID, date, ErrNotFound)
	}
	return &data, nil
}

// ListByUser returns all of the user's rows ordered by date.
func (r *MockDailyDataRepository) ListByUser(_ context.Context, userID uint) ([]models.DailyData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.DailyData, 0)
	for key, data := range r.rows {
		if key.userID == userID {
			list = append(list, data)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date.Time) })
	return list, nil
}

// Upsert inserts data or replaces the existing row for the same user and date.
func (r *MockDailyDataRepository) Upsert(_ context.Context, data *models.DailyData) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := dailyDataKey{data.UserID, data.Date.String()}
	existing, ok := r.rows[key]
	if ok {
		data.ID = existing.ID
		data.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		data.ID = r.nextID
		data.CreatedAt = now
	}
	data.UpdatedAt = now
	r.rows[key] = *data
	return !ok, nil
}

// DeleteByUser removes every row owned by userID.
func (r *MockDailyDataRepository) DeleteByUser(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.rows {
		if key.userID == userID {
			delete(r.rows, key)
		}
	}
}
