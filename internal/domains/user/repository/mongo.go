package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/user"
	"library-backend/internal/infrastructure/database"
)

// mongoRepository implements user.Repository on a MongoDB collection
type mongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new user repository instance
func NewMongoRepository(db *mongo.Database) user.Repository {
	return &mongoRepository{
		col: db.Collection(database.CollectionUsers),
	}
}

func (r *mongoRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, user.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *mongoRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
