package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/helper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	FindAllByStatus(ctx context.Context, status string) ([]domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		// a racing register can pass the service's duplicate check and land
		// on the unique email index instead
		if mongo.IsDuplicateKeyError(err) {
			return nil, helper.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helper.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, helper.ErrUserNotFound
	}

	user := &domain.User{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helper.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindAllByStatus(ctx context.Context, status string) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"userStatus": status})
	if err != nil {
		return nil, fmt.Errorf("find users by status: %w", err)
	}

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// SaveUser overwrites the whole document. Concurrent saves of the same user
// are last-writer-wins.
func (r *userRepository) SaveUser(ctx context.Context, user *domain.User) error {
	if user == nil || user.ID.IsZero() {
		return errors.New("nil or unsaved user")
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
