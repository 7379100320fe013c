package service

import (
	"context"
	"errors"
	"fmt"
	"judge_api/internal/common"
	"judge_api/internal/common/security"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userRepo repository.UserRepository
	log      logrus.FieldLogger
}

func NewAuthService(userRepo repository.UserRepository, log logrus.FieldLogger) *AuthService {
	return &AuthService{userRepo: userRepo, log: log}
}

type RegisterRequest struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register creates a user with a salted password hash. The email is accepted
// but not stored.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, common.Errorf("password too long: %w", common.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	user.HashedPassword = ""
	return user, nil
}

// Login checks the credentials. Unknown usernames and wrong passwords are
// both reported as common.ErrUnauthorized. No session is issued.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}
