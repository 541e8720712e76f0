package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/interfaces"
	"github.com/projetprice/formation-svc/internal/repository"
)

type UserService interface {
	// Presence
	MarkOnline(ctx context.Context, userID string) (*domain.User, error)
	MarkOffline(ctx context.Context, email string) (*domain.User, error)
	FindConnectedUsers(ctx context.Context) ([]domain.User, error)

	// Profile
	GetUserInfoByEmail(ctx context.Context, email string) (map[string]interface{}, error)
	GetUserInfoByID(ctx context.Context, id string) (map[string]interface{}, error)
}

type userService struct {
	repo     repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewUserService(repo repository.UserRepository, producer interfaces.ProducerHandler) UserService {
	return &userService{repo: repo, producer: producer}
}

func (s *userService) MarkOnline(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.UserStatus = domain.StatusOnline
	user.UpdatedAt = time.Now()
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.publishPresence("user.online", user)
	return user, nil
}

// MarkOffline is a no-op for unknown emails: disconnects can race account
// deletion, so a missing user yields (nil, nil) rather than an error.
func (s *userService) MarkOffline(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if errors.Is(err, helper.ErrUserNotFound) || (err == nil && user == nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.UserStatus = domain.StatusOffline
	user.UpdatedAt = time.Now()
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.publishPresence("user.offline", user)
	return user, nil
}

func (s *userService) FindConnectedUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAllByStatus(ctx, domain.StatusOnline)
}

func (s *userService) GetUserInfoByEmail(ctx context.Context, email string) (map[string]interface{}, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return filteredProfile(user), nil
}

func (s *userService) GetUserInfoByID(ctx context.Context, id string) (map[string]interface{}, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return filteredProfile(user), nil
}

// filteredProfile exposes only the fields the frontend needs; the password
// hash and verification state stay server-side.
func filteredProfile(user *domain.User) map[string]interface{} {
	return map[string]interface{}{
		"_id":            user.ID.Hex(),
		"name":           user.Name,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"contacts":       user.Contacts,
		"createdAt":      user.CreatedAt,
	}
}

func (s *userService) publishPresence(event string, user *domain.User) {
	if s.producer == nil {
		return
	}
	payload := fmt.Sprintf(`{"user_id":"%s","email":"%s","status":"%s"}`,
		user.ID.Hex(), user.Email, user.UserStatus)
	_ = s.producer.PublishMessage([]byte(event), []byte(payload))
}
