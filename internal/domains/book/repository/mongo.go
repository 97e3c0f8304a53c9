package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/database"
)

// mongoRepository implements book.Repository on a MongoDB collection
type mongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new book repository instance
func NewMongoRepository(db *mongo.Database) book.Repository {
	return &mongoRepository{
		col: db.Collection(database.CollectionBooks),
	}
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return n, nil
}

// List resolves the author reference server-side with a $lookup. The
// $unwind keeps books whose lookup came back empty so a dangling reference
// surfaces as ErrDanglingAuthor instead of a silently shorter result.
func (r *mongoRepository) List(ctx context.Context) ([]book.WithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionAuthors},
			{Key: "localField", Value: "author"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "authorDoc"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$authorDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "title", Value: 1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := []book.WithAuthor{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}

	// All-or-nothing population: fail the whole call on a broken reference
	for _, b := range books {
		if b.Author.ID.IsZero() {
			return nil, fmt.Errorf("%w: book %s", book.ErrDanglingAuthor, b.ID.Hex())
		}
	}
	return books, nil
}

func (r *mongoRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	if b.Genres == nil {
		b.Genres = []string{}
	}

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, book.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}
