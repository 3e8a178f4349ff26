package services

import (
	"context"
	"errors"
	"fmt"

	"healthtrack/internal/models"
	"healthtrack/internal/repositories"
)

// SubmitDailyData carries one day's readings. Nil fields are stored as absent.
type SubmitDailyData struct {
	Date                   models.Date
	Steps                  *int
	Distance               *float64
	CaloriesBurned         *int
	HeartRate              *int
	BloodPressureSystolic  *float64
	BloodPressureDiastolic *float64
}

// DailyDataService handles business logic related to daily biometric data.
type DailyDataService struct {
	repo     repositories.DailyDataRepository
	userRepo repositories.UserRepository
	events   EventPublisher
	recorder Recorder
}

// NewDailyDataService creates a new DailyDataService. events and recorder may be nil.
func NewDailyDataService(repo repositories.DailyDataRepository, userRepo repositories.UserRepository, events EventPublisher, recorder Recorder) *DailyDataService {
	return &DailyDataService{
		repo:     repo,
		userRepo: userRepo,
		events:   events,
		recorder: recorder,
	}
}

// Submit creates the caller's row for input.Date, or replaces every reading
// of the existing row. It reports whether a new row was created.
func (s *DailyDataService) Submit(ctx context.Context, userID uint, input SubmitDailyData) (bool, error) {
	if input.Date.IsZero() {
		return false, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return false, err
	}

	data, err := s.repo.FindByUserAndDate(ctx, userID, input.Date)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		data = &models.DailyData{UserID: userID, Date: input.Date}
	case err != nil:
		return false, err
	}

	data.Steps = input.Steps
	data.Distance = input.Distance
	data.CaloriesBurned = input.CaloriesBurned
	data.HeartRate = input.HeartRate
	data.BloodPressureSystolic = input.BloodPressureSystolic
	data.BloodPressureDiastolic = input.BloodPressureDiastolic

	// The lookup can race with another first submission for the same date;
	// only the write knows which one inserted.
	created, err := s.repo.Upsert(ctx, data)
	if err != nil {
		return false, err
	}

	if s.recorder != nil {
		s.recorder.DailyDataSaved(created)
	}
	publishEvent(s.events, HealthEvent{
		Type:     EventDailyDataSaved,
		UserID:   userID,
		RecordID: data.ID,
		Date:     data.Date.String(),
		Created:  created,
	})
	return created, nil
}

// ListAll returns every row owned by the caller.
func (s *DailyDataService) ListAll(ctx context.Context, userID uint) ([]models.DailyData, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetByDate returns the caller's row for rawDate, which must be YYYY-MM-DD.
func (s *DailyDataService) GetByDate(ctx context.Context, userID uint, rawDate string) (*models.DailyData, error) {
	date, err := models.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	data, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrDailyDataNotFound, date)
	}
	return data, err
}

// requireUser fails with ErrUserNotFound when userID has no stored user.
func requireUser(ctx context.Context, userRepo repositories.UserRepository, userID uint) error {
	_, err := userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}
	return err
}
