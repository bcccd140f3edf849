package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"timetrack/internal/auth"
	"timetrack/internal/errors"
	"timetrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	assert.NoError(t, err)
	return &model.User{
		ID:           1,
		Username:     "juan_perez",
		PasswordHash: string(hash),
		CompleteName: "Juan Pérez",
		Position:     "Driver",
		Active:       true,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "juan_perez",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "juan_perez").Return(activeUser(t, "password123"), nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "juan_perez",
			password: "wrong",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "juan_perez").Return(activeUser(t, "password123"), nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			username: "juan_perez",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				user := activeUser(t, "password123")
				user.Active = false
				m.On("FindByUsername", mock.Anything, "juan_perez").Return(user, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				// Failures are uniform: callers cannot tell why.
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, user.Username, claims.Username)
				assert.Equal(t, user.Position, claims.Position)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
