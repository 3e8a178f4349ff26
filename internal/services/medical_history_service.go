package services

import (
	"context"

	"healthtrack/internal/models"
	"healthtrack/internal/repositories"
)

// AddMedicalHistory carries a new medical history entry. All fields are optional.
type AddMedicalHistory struct {
	Condition     *string
	Diagnosis     *string
	DiagnosisDate *models.Date
	Treatment     *string
	Medications   *string
}

// MedicalHistoryService handles business logic related to medical history.
type MedicalHistoryService struct {
	repo     repositories.MedicalHistoryRepository
	userRepo repositories.UserRepository
	events   EventPublisher
	recorder Recorder
}

// NewMedicalHistoryService creates a new MedicalHistoryService. events and recorder may be nil.
func NewMedicalHistoryService(repo repositories.MedicalHistoryRepository, userRepo repositories.UserRepository, events EventPublisher, recorder Recorder) *MedicalHistoryService {
	return &MedicalHistoryService{
		repo:     repo,
		userRepo: userRepo,
		events:   events,
		recorder: recorder,
	}
}

// Add always stores a new entry owned by the caller.
func (s *MedicalHistoryService) Add(ctx context.Context, userID uint, input AddMedicalHistory) (*models.MedicalHistory, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entry := &models.MedicalHistory{
		UserID:        userID,
		Condition:     input.Condition,
		Diagnosis:     input.Diagnosis,
		DiagnosisDate: input.DiagnosisDate,
		Treatment:     input.Treatment,
		Medications:   input.Medications,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.MedicalHistoryAdded()
	}
	event := HealthEvent{Type: EventMedicalHistoryAdded, UserID: userID, RecordID: entry.ID, Created: true}
	if entry.DiagnosisDate != nil {
		event.Date = entry.DiagnosisDate.String()
	}
	publishEvent(s.events, event)
	return entry, nil
}

// ListAll returns every entry owned by the caller.
func (s *MedicalHistoryService) ListAll(ctx context.Context, userID uint) ([]models.MedicalHistory, error) {
	return s.repo.ListByUser(ctx, userID)
}
