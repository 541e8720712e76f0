package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/interfaces"
	"github.com/projetprice/formation-svc/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (string, error)
	Login(ctx context.Context, input dto.AuthenticationRequest) (string, error)
}

type authService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
	baseURL  string
}

func NewAuthService(repo repository.UserRepository, auth helper.Auth, producer interfaces.ProducerHandler, baseURL string) AuthService {
	return &authService{
		repo:     repo,
		auth:     auth,
		producer: producer,
		baseURL:  baseURL,
	}
}

// Register creates the account and hands back a session token for it. A
// duplicate email fails with helper.ErrUserAlreadyExists and writes nothing.
func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.Name)

	if email == "" || strings.TrimSpace(input.Password) == "" || name == "" {
		return "", helper.ErrInvalidInput
	}
	if len(input.Password) < 6 {
		return "", helper.ErrPasswordTooShort
	}

	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", helper.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, helper.ErrUserNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}

	now := time.Now()
	newUser := &domain.User{
		Email:          email,
		Password:       string(hashedPassword),
		Name:           name,
		ProfilePicture: s.baseURL + "/images/defaultProfilePicture.png",
		Role:           "STUDENT",
		UserStatus:     domain.StatusOffline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	usr, err := s.repo.CreateUser(ctx, newUser)
	if err != nil {
		return "", err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":"%s","email":"%s","registered_at":"%s"}`,
			usr.ID.Hex(), usr.Email, now.Format(time.RFC3339))
		_ = s.producer.PublishMessage([]byte("user.registered"), []byte(payload))
	}

	return s.auth.GenerateToken(usr.Email, nil)
}

// Login verifies the password by re-hash-and-compare and issues a fresh
// token. Unknown emails and bad passwords surface as distinct error kinds.
func (s *authService) Login(ctx context.Context, input dto.AuthenticationRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if email == "" || strings.TrimSpace(input.Password) == "" {
		return "", helper.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	// compare the password exactly as submitted; registration hashed it verbatim
	if err := s.auth.VerifyPassword(input.Password, user.Password); err != nil {
		return "", err
	}

	return s.auth.GenerateToken(user.Email, nil)
}
