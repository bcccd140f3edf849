package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timetrack/internal/auth"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

// MockTimesheetRepository is a mock implementation of TimesheetRepository.
type MockTimesheetRepository struct {
	mock.Mock
}

func (m *MockTimesheetRepository) Create(ctx context.Context, entry *model.TimesheetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimesheetRepository) List(ctx context.Context, filter repository.TimesheetFilter) ([]model.TimesheetEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimesheetEntry), args.Error(1)
}

func driverClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Username: "juan_perez", Position: "Driver"}
}

func TestTimesheetService_Create(t *testing.T) {
	mockRepo := new(MockTimesheetRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.TimesheetEntry")).Return(nil)

	service := NewTimesheetService(mockRepo)
	entry, err := service.Create(context.Background(), driverClaims(), TimesheetInput{
		Date:        "2025-01-15",
		Time:        "09:00",
		Description: "Site visit",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-01-15", entry.Date)
	assert.Equal(t, "09:00", entry.Time)
	assert.Equal(t, "Site visit", entry.Description)
	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, "juan_perez", entry.Username)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.NotEmpty(t, entry.ServerTime)

	mockRepo.AssertExpectations(t)
}

func TestTimesheetService_List_Scoping(t *testing.T) {
	tests := []struct {
		name           string
		claims         *auth.Claims
		query          TimesheetQuery
		expectedFilter repository.TimesheetFilter
	}{
		{
			name:   "own records by default",
			claims: driverClaims(),
			query:  TimesheetQuery{},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       1,
				OwnerUsername: "juan_perez",
			},
		},
		{
			name:   "user param ignored without admin position",
			claims: driverClaims(),
			query:  TimesheetQuery{User: "maria_garcia"},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       1,
				OwnerUsername: "juan_perez",
			},
		},
		{
			name:   "admin can target another user",
			claims: &auth.Claims{UserID: 9, Username: "boss", Position: "admin"},
			query:  TimesheetQuery{User: "maria_garcia"},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       9,
				OwnerUsername: "boss",
				Username:      "maria_garcia",
			},
		},
		{
			name:   "month and year build a zero-padded prefix",
			claims: driverClaims(),
			query:  TimesheetQuery{Month: "1", Year: "2025"},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       1,
				OwnerUsername: "juan_perez",
				Month:         "2025-01",
			},
		},
		{
			name:   "month without year is ignored",
			claims: driverClaims(),
			query:  TimesheetQuery{Month: "1"},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       1,
				OwnerUsername: "juan_perez",
			},
		},
		{
			name:   "exact date filter",
			claims: driverClaims(),
			query:  TimesheetQuery{Date: "2025-01-15"},
			expectedFilter: repository.TimesheetFilter{
				OwnerID:       1,
				OwnerUsername: "juan_perez",
				Date:          "2025-01-15",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTimesheetRepository)
			mockRepo.On("List", mock.Anything, tt.expectedFilter).Return([]model.TimesheetEntry{}, nil)

			service := NewTimesheetService(mockRepo)
			_, err := service.List(context.Background(), tt.claims, tt.query)

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}
