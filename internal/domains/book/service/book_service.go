package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

// bookService implements book.Service.
// AddBook spans two domains, so both repositories are injected.
type bookService struct {
	books   book.Repository
	authors author.Repository
}

// NewBookService creates the service instance
func NewBookService(books book.Repository, authors author.Repository) book.Service {
	return &bookService{
		books:   books,
		authors: authors,
	}
}

func (s *bookService) Count(ctx context.Context) (int64, error) {
	return s.books.Count(ctx)
}

func (s *bookService) List(ctx context.Context, filter book.ListFilter) ([]book.WithAuthor, error) {
	all, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	if filter.Author == nil && filter.Genre == nil {
		return all, nil
	}

	// Post-filter on the joined result set
	filtered := []book.WithAuthor{}
	for _, b := range all {
		if filter.Matches(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// AddBook runs the two store writes strictly in sequence: the book insert
// needs the author's id, so the author upsert must complete first.
func (s *bookService) AddBook(ctx context.Context, input book.AddBookInput) (*book.WithAuthor, error) {
	// 1. Validate before anything touches the store
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. Create the author if absent and bump its counter, atomically.
	// The returned record already reflects the new bookCount.
	a, err := s.authors.UpsertAndIncrement(ctx, input.Author)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	// 3. Insert the book referencing the author's id
	genres := input.Genres
	if genres == nil {
		genres = []string{}
	}
	created, err := s.books.Create(ctx, &book.Book{
		Title:     input.Title,
		AuthorID:  a.ID,
		Published: input.Published,
		Genres:    genres,
	})
	if err != nil {
		// The counter bump from step 2 is not rolled back; the two writes
		// share no transaction. Surface the gap in the logs.
		log.Warn().
			Str("author", a.Name).
			Str("title", input.Title).
			Err(err).
			Msg("book insert failed after author counter increment")
		return nil, err
	}

	// 4. Return the created book with the author resolved
	return &book.WithAuthor{Book: *created, Author: *a}, nil
}
