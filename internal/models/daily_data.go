package models

import "time"

// DailyData is one user's biometric snapshot for a calendar date.
// At most one row exists per (UserID, Date).
type DailyData struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	UserID                 uint      `json:"userId" gorm:"not null;uniqueIndex:idx_daily_data_user_date,priority:1"`
	Date                   Date      `json:"date" gorm:"column:entry_date;not null;uniqueIndex:idx_daily_data_user_date,priority:2"`
	Steps                  *int      `json:"steps"`
	Distance               *float64  `json:"distance"`
	CaloriesBurned         *int      `json:"caloriesBurned"`
	HeartRate              *int      `json:"heartRate"` // beats per minute
	BloodPressureSystolic  *float64  `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *float64  `json:"bloodPressureDiastolic"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// TableName returns the database table name for the DailyData model.
func (DailyData) TableName() string {
	return "daily_data"
}
