package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// userService implements user.Service
type userService struct {
	repo           user.Repository
	tokens         *jwt.Manager
	sharedPassword string
}

// NewUserService creates the service instance.
// sharedPassword is the placeholder login credential every user shares.
func NewUserService(repo user.Repository, tokens *jwt.Manager, sharedPassword string) user.Service {
	return &userService{
		repo:           repo,
		tokens:         tokens,
		sharedPassword: sharedPassword,
	}
}

func (s *userService) CreateUser(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	// 1. Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. Persist; the unique index rejects duplicate usernames
	created, err := s.repo.Create(ctx, &user.User{
		Username:      input.Username,
		FavoriteGenre: input.FavoriteGenre,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *userService) Login(ctx context.Context, input user.LoginInput) (string, error) {
	// 1. Validate input
	if err := input.Validate(); err != nil {
		return "", err
	}

	// 2. Find the user. An unknown username reports the same error as a
	// wrong password so callers cannot probe which usernames exist.
	u, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", user.ErrWrongCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	// 3. Check the password against the configured shared placeholder.
	// TODO: replace with a per-user bcrypt hash comparison once the user
	// schema carries credentials.
	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.sharedPassword)) != 1 {
		return "", user.ErrWrongCredentials
	}

	// 4. Issue the signed token embedding {username, id}
	token, err := s.tokens.Generate(u.Username, u.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, user.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, oid)
}
