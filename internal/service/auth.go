package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/hash"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
)

const accessTokenTTL = 15 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials") // 401

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	if _, err := s.Repo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %q taken", ErrConflict, username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	return s.Repo.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
	})
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password required", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.CreateAccessToken(user.Role, user.ID.String(), time.Now().Add(accessTokenTTL).UTC())
}

func (s *AuthService) CreateAccessToken(role, userID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  jwt.NewNumericDate(expiresAt),
		"iat":  jwt.NewNumericDate(time.Now().UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
