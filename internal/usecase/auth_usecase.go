package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
	"truvamate/pkg/logger"
)

// AuthUseCase is a mock auth gate, not a security boundary: login binds a
// fixed profile to whatever email is supplied, with no credential check.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtSecret  []byte
	jwtExpiry  time.Duration
	adminEmail string
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, jwtExpirySeconds int64, adminEmail string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		jwtExpiry:  time.Duration(jwtExpirySeconds) * time.Second,
		adminEmail: adminEmail,
	}
}

type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (u *AuthUseCase) Login(ctx context.Context, email string) (*LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		role := "user"
		if strings.EqualFold(email, u.adminEmail) {
			role = "admin"
		}
		user = &entity.User{
			ID:        uuid.New().String(),
			Email:     email,
			Username:  strings.SplitN(email, "@", 2)[0],
			Role:      role,
			CreatedAt: time.Now(),
		}
		if err := u.userRepo.Save(ctx, user); err != nil {
			return nil, err
		}
		logger.Info("Created mock profile for %s", email)
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(u.jwtExpiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, errors.Internal("Failed to sign session token", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
