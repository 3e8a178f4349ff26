package repositories

import (
	"context"

	"healthtrack/internal/models"
)

// DailyDataRepository defines the interface for daily data access.
// Every method is scoped to a single owning user.
type DailyDataRepository interface {
	FindByUserAndDate(ctx context.Context, userID uint, date models.Date) (*models.DailyData, error)
	ListByUser(ctx context.Context, userID uint) ([]models.DailyData, error)
	// Upsert inserts data, or overwrites every non-key field of the existing
	// row for (data.UserID, data.Date). It reports whether a row was inserted.
	Upsert(ctx context.Context, data *models.DailyData) (bool, error)
}
