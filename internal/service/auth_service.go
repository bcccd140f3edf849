package service

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"timetrack/internal/auth"
	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login checks credentials against the user directory and issues a session
// token. Unknown username, wrong password and inactive account all fail with
// the same error so callers cannot enumerate users.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, user.Position)
	if err != nil {
		return "", nil, err
	}

	log.Printf("login successful: %s", user.Username)

	return token, user, nil
}
