package models

import "time"

// MedicalHistory is a single medical history entry. Entries are append-only.
type MedicalHistory struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"not null;index"`
	Condition     *string   `json:"condition" gorm:"column:condition_name;type:varchar(255)"`
	Diagnosis     *string   `json:"diagnosis" gorm:"type:text"`
	DiagnosisDate *Date     `json:"diagnosisDate"`
	Treatment     *string   `json:"treatment" gorm:"type:text"`
	Medications   *string   `json:"medications" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName returns the database table name for the MedicalHistory model.
func (MedicalHistory) TableName() string {
	return "medical_histories"
}
