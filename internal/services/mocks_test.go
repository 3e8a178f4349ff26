package services_test

import (
	"context"

	"healthtrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDailyDataRepository is a mock implementation of repositories.DailyDataRepository
type MockDailyDataRepository struct {
	mock.Mock
}

func (m *MockDailyDataRepository) FindByUserAndDate(ctx context.Context, userID uint, date models.Date) (*models.DailyData, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyData), args.Error(1)
}

func (m *MockDailyDataRepository) ListByUser(ctx context.Context, userID uint) ([]models.DailyData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyData), args.Error(1)
}

func (m *MockDailyDataRepository) Upsert(ctx context.Context, data *models.DailyData) (bool, error) {
	args := m.Called(ctx, data)
	return args.Bool(0), args.Error(1)
}

// MockMedicalHistoryRepository is a mock implementation of repositories.MedicalHistoryRepository
type MockMedicalHistoryRepository struct {
	mock.Mock
}

func (m *MockMedicalHistoryRepository) Create(ctx context.Context, entry *models.MedicalHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMedicalHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]models.MedicalHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalHistory), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

// MockRecorder is a mock implementation of services.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) DailyDataSaved(created bool) {
	m.Called(created)
}

func (m *MockRecorder) MedicalHistoryAdded() {
	m.Called()
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }
