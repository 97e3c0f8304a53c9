package service

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the service instance.
// Repository is injected via constructor.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	// bookCount comes straight from the stored counter; no per-request scan
	return s.repo.List(ctx)
}

// EditAuthor sets born on the named author.
// A missing subject returns (nil, nil): the conditional-update contract is
// a no-op when nothing matches, and no record is created.
func (s *authorService) EditAuthor(ctx context.Context, input author.EditAuthorInput) (*author.Author, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.SetBorn(ctx, input.Name, input.SetBornTo)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("edit author: %w", err)
	}
	return updated, nil
}
