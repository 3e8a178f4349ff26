package repositories

import (
	"context"
	"errors"
	"fmt"

	"healthtrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMDailyDataRepository is a GORM implementation of DailyDataRepository.
type GORMDailyDataRepository struct {
	db *gorm.DB
}

// NewGORMDailyDataRepository creates a new instance of GORMDailyDataRepository.
func NewGORMDailyDataRepository(db *gorm.DB) *GORMDailyDataRepository {
	return &GORMDailyDataRepository{
		db: db,
	}
}

// FindByUserAndDate returns the user's row for date.
func (r *GORMDailyDataRepository) FindByUserAndDate(ctx context.Context, userID uint, date models.Date) (*models.DailyData, error) {
	var data models.DailyData
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, date).
		First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("daily data for user %d on %s: %w", userID, date, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get daily data for user %d on %s: %w", userID, date, err)
	}
	return &data, nil
}

// ListByUser returns all of the user's rows ordered by date.
func (r *GORMDailyDataRepository) ListByUser(ctx context.Context, userID uint) ([]models.DailyData, error) {
	list := make([]models.DailyData, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date asc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list daily data for user %d: %w", userID, err)
	}
	return list, nil
}

// Upsert inserts data with ON CONFLICT (user_id, entry_date) DO NOTHING and,
// when the row already exists, overwrites its readings. Both statements run in
// one transaction, so concurrent first submissions still end up as one row
// and exactly one of them reports the insert. data.ID is ignored on input.
func (r *GORMDailyDataRepository) Upsert(ctx context.Context, data *models.DailyData) (bool, error) {
	data.ID = 0
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
			DoNothing: true,
		}).Create(data)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			created = true
			return nil
		}

		where := tx.Model(&models.DailyData{}).Where("user_id = ? AND entry_date = ?", data.UserID, data.Date)
		res = where.UpdateColumns(map[string]interface{}{
			"steps":                    data.Steps,
			"distance":                 data.Distance,
			"calories_burned":          data.CaloriesBurned,
			"heart_rate":               data.HeartRate,
			"blood_pressure_systolic":  data.BloodPressureSystolic,
			"blood_pressure_diastolic": data.BloodPressureDiastolic,
			"updated_at":               tx.NowFunc(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("user_id = ? AND entry_date = ?", data.UserID, data.Date).First(data).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to save daily data for user %d on %s: %w", data.UserID, data.Date, err)
	}
	return created, nil
}
