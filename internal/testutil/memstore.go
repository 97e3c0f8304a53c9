// Package testutil provides in-memory repository implementations for
// tests. They mirror the store's contracts: assigned ids, unique-key
// rejections and the atomic upsert-and-increment.
package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
)

// NewStores builds the three linked in-memory stores. The book store
// joins against the author store, like the real aggregation does.
func NewStores() (*AuthorStore, *BookStore, *UserStore) {
	authors := &AuthorStore{}
	books := &BookStore{authors: authors}
	users := &UserStore{}
	return authors, books, users
}

// ========================================
// AUTHOR STORE
// ========================================

type AuthorStore struct {
	mu      sync.Mutex
	authors []author.Author
}

var _ author.Repository = (*AuthorStore)(nil)

func (s *AuthorStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.authors)), nil
}

func (s *AuthorStore) FindByName(ctx context.Context, name string) (*author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].Name == name {
			a := s.authors[i]
			return &a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (s *AuthorStore) List(ctx context.Context) ([]author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]author.Author, len(s.authors))
	copy(out, s.authors)
	return out, nil
}

func (s *AuthorStore) Create(ctx context.Context, name string) (*author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].Name == name {
			return nil, author.ErrDuplicateName
		}
	}
	a := author.Author{ID: primitive.NewObjectID(), Name: name, BookCount: 0}
	s.authors = append(s.authors, a)
	return &a, nil
}

func (s *AuthorStore) SetBorn(ctx context.Context, name string, born int) (*author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].Name == name {
			b := born
			s.authors[i].Born = &b
			a := s.authors[i]
			return &a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (s *AuthorStore) IncrementBookCount(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].ID == id {
			s.authors[i].BookCount++
			return nil
		}
	}
	return author.ErrAuthorNotFound
}

func (s *AuthorStore) UpsertAndIncrement(ctx context.Context, name string) (*author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].Name == name {
			s.authors[i].BookCount++
			a := s.authors[i]
			return &a, nil
		}
	}
	a := author.Author{ID: primitive.NewObjectID(), Name: name, BookCount: 1}
	s.authors = append(s.authors, a)
	return &a, nil
}

// ========================================
// BOOK STORE
// ========================================

type BookStore struct {
	mu      sync.Mutex
	books   []book.Book
	authors *AuthorStore
}

var _ book.Repository = (*BookStore)(nil)

func (s *BookStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.books)), nil
}

func (s *BookStore) List(ctx context.Context) ([]book.WithAuthor, error) {
	s.mu.Lock()
	books := make([]book.Book, len(s.books))
	copy(books, s.books)
	s.mu.Unlock()

	out := make([]book.WithAuthor, 0, len(books))
	for _, b := range books {
		a, err := s.authors.findByID(b.AuthorID)
		if err != nil {
			return nil, book.ErrDanglingAuthor
		}
		out = append(out, book.WithAuthor{Book: b, Author: *a})
	}
	return out, nil
}

func (s *BookStore) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].Title == b.Title {
			return nil, book.ErrDuplicateTitle
		}
	}
	created := *b
	created.ID = primitive.NewObjectID()
	if created.Genres == nil {
		created.Genres = []string{}
	}
	s.books = append(s.books, created)
	return &created, nil
}

func (s *AuthorStore) findByID(id primitive.ObjectID) (*author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.authors {
		if s.authors[i].ID == id {
			a := s.authors[i]
			return &a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

// ========================================
// USER STORE
// ========================================

type UserStore struct {
	mu    sync.Mutex
	users []user.User
}

var _ user.Repository = (*UserStore)(nil)

func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == u.Username {
			return nil, user.ErrDuplicateUsername
		}
	}
	created := *u
	created.ID = primitive.NewObjectID()
	s.users = append(s.users, created)
	return &created, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}
