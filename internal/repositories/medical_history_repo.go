package repositories

import (
	"context"

	"healthtrack/internal/models"
)

// MedicalHistoryRepository defines the interface for medical history access.
// Entries are append-only.
type MedicalHistoryRepository interface {
	Create(ctx context.Context, entry *models.MedicalHistory) error
	ListByUser(ctx context.Context, userID uint) ([]models.MedicalHistory, error)
}
