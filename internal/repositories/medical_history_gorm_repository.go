package repositories

import (
	"context"
	"fmt"

	"healthtrack/internal/models"

	"gorm.io/gorm"
)

// GORMMedicalHistoryRepository is a GORM implementation of MedicalHistoryRepository.
type GORMMedicalHistoryRepository struct {
	db *gorm.DB
}

// NewGORMMedicalHistoryRepository creates a new instance of GORMMedicalHistoryRepository.
func NewGORMMedicalHistoryRepository(db *gorm.DB) *GORMMedicalHistoryRepository {
	return &GORMMedicalHistoryRepository{
		db: db,
	}
}

// Create inserts a new medical history entry.
func (r *GORMMedicalHistoryRepository) Create(ctx context.Context, entry *models.MedicalHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create medical history for user %d: %w", entry.UserID, err)
	}
	return nil
}

// ListByUser returns the user's entries in insertion order.
func (r *GORMMedicalHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]models.MedicalHistory, error) {
	list := make([]models.MedicalHistory, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medical history for user %d: %w", userID, err)
	}
	return list, nil
}
