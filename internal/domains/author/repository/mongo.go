package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-backend/internal/domains/author"
	"library-backend/internal/infrastructure/database"
)

// mongoRepository implements author.Repository on a MongoDB collection
type mongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new author repository instance
func NewMongoRepository(db *mongo.Database) author.Repository {
	return &mongoRepository{
		col: db.Collection(database.CollectionAuthors),
	}
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return n, nil
}

func (r *mongoRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var a author.Author
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to find author: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]author.Author, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors := []author.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("failed to decode authors: %w", err)
	}
	return authors, nil
}

func (r *mongoRepository) Create(ctx context.Context, name string) (*author.Author, error) {
	a := &author.Author{Name: name, BookCount: 0}

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, author.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *mongoRepository) SetBorn(ctx context.Context, name string, born int) (*author.Author, error) {
	var updated author.Author
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"born": born}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &updated, nil
}

func (r *mongoRepository) IncrementBookCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"bookCount": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment book count: %w", err)
	}
	if res.MatchedCount == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// UpsertAndIncrement performs the create-if-absent + increment in a single
// FindOneAndUpdate. The unique index on name backs the upsert: if two
// concurrent upserts for the same new name collide, the loser gets a
// duplicate-key error and is retried once, at which point the document
// exists and the retry degrades to a plain increment.
func (r *mongoRepository) UpsertAndIncrement(ctx context.Context, name string) (*author.Author, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var a author.Author
		err := r.col.FindOneAndUpdate(ctx,
			bson.M{"name": name},
			bson.M{
				"$setOnInsert": bson.M{"name": name},
				"$inc":         bson.M{"bookCount": 1},
			},
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		).Decode(&a)
		if err == nil {
			return &a, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to upsert author: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to upsert author after retry: %w", lastErr)
}
