package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/session"
	"library-backend/pkg/logger"
)

// Resolver is the root resolver. It delegates to the domain services and
// owns nothing but the translation between GraphQL and domain types.
type Resolver struct {
	books   book.Service
	authors author.Service
	users   user.Service
}

// NewResolver creates the root resolver
func NewResolver(books book.Service, authors author.Service, users user.Service) *Resolver {
	return &Resolver{
		books:   books,
		authors: authors,
		users:   users,
	}
}

// ========================================
// QUERIES
// ========================================

func (r *Resolver) BookCount(ctx context.Context) (int32, error) {
	n, err := r.books.Count(ctx)
	if err != nil {
		logger.Error("bookCount failed", err)
		return 0, errInternal
	}
	return int32(n), nil
}

func (r *Resolver) AuthorCount(ctx context.Context) (int32, error) {
	n, err := r.authors.Count(ctx)
	if err != nil {
		logger.Error("authorCount failed", err)
		return 0, errInternal
	}
	return int32(n), nil
}

func (r *Resolver) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*BookResolver, error) {
	books, err := r.books.List(ctx, book.ListFilter{
		Author: args.Author,
		Genre:  args.Genre,
	})
	if err != nil {
		logger.Error("allBooks failed", err)
		return nil, errInternal
	}

	resolvers := make([]*BookResolver, 0, len(books))
	for i := range books {
		resolvers = append(resolvers, &BookResolver{b: books[i]})
	}
	return resolvers, nil
}

func (r *Resolver) AllAuthors(ctx context.Context) ([]*AuthorResolver, error) {
	authors, err := r.authors.List(ctx)
	if err != nil {
		logger.Error("allAuthors failed", err)
		return nil, errInternal
	}

	resolvers := make([]*AuthorResolver, 0, len(authors))
	for i := range authors {
		resolvers = append(resolvers, &AuthorResolver{a: authors[i]})
	}
	return resolvers, nil
}

// Me returns the session's user; null for anonymous requests
func (r *Resolver) Me(ctx context.Context) *UserResolver {
	u, ok := session.CurrentUser(ctx)
	if !ok {
		return nil
	}
	return &UserResolver{u: *u}
}

// ========================================
// MUTATIONS
// ========================================

func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published *int32
	Genres    *[]string
}) (*BookResolver, error) {
	// addBook is the gated mutation: it requires a session user
	if _, ok := session.CurrentUser(ctx); !ok {
		return nil, errNotAuthenticated
	}

	input := book.AddBookInput{
		Title:  args.Title,
		Author: args.Author,
	}
	if args.Published != nil {
		published := int(*args.Published)
		input.Published = &published
	}
	if args.Genres != nil {
		input.Genres = *args.Genres
	}

	created, err := r.books.AddBook(ctx, input)
	if err != nil {
		return nil, mapMutationError("addBook", err, map[string]interface{}{
			"title":  args.Title,
			"author": args.Author,
		})
	}
	return &BookResolver{b: *created}, nil
}

func (r *Resolver) EditAuthor(ctx context.Context, args struct {
	Name      string
	SetBornTo int32
}) (*AuthorResolver, error) {
	updated, err := r.authors.EditAuthor(ctx, author.EditAuthorInput{
		Name:      args.Name,
		SetBornTo: int(args.SetBornTo),
	})
	if err != nil {
		return nil, mapMutationError("editAuthor", err, map[string]interface{}{
			"name": args.Name,
		})
	}
	if updated == nil {
		// Missing subject is a no-op, surfaced as null
		return nil, nil
	}
	return &AuthorResolver{a: *updated}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Username      string
	FavoriteGenre string
}) (*UserResolver, error) {
	created, err := r.users.CreateUser(ctx, user.CreateUserInput{
		Username:      args.Username,
		FavoriteGenre: args.FavoriteGenre,
	})
	if err != nil {
		return nil, mapMutationError("createUser", err, map[string]interface{}{
			"username":      args.Username,
			"favoriteGenre": args.FavoriteGenre,
		})
	}
	return &UserResolver{u: *created}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*TokenResolver, error) {
	token, err := r.users.Login(ctx, user.LoginInput{
		Username: args.Username,
		Password: args.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrWrongCredentials) {
			return nil, &AuthenticationError{Message: "wrong credentials"}
		}
		return nil, mapMutationError("login", err, map[string]interface{}{
			"username": args.Username,
		})
	}
	return &TokenResolver{value: token}, nil
}

// ========================================
// TYPE RESOLVERS
// ========================================

// BookResolver resolves Book fields against an already-joined record, so
// the nested author field costs no extra store call.
type BookResolver struct {
	b book.WithAuthor
}

func (r *BookResolver) ID() graphql.ID { return graphql.ID(r.b.ID.Hex()) }
func (r *BookResolver) Title() string  { return r.b.Title }

func (r *BookResolver) Author() *AuthorResolver {
	return &AuthorResolver{a: r.b.Author}
}

func (r *BookResolver) Published() *int32 {
	if r.b.Published == nil {
		return nil
	}
	published := int32(*r.b.Published)
	return &published
}

func (r *BookResolver) Genres() []string {
	if r.b.Genres == nil {
		return []string{}
	}
	return r.b.Genres
}

// AuthorResolver resolves Author fields. BookCount reads the stored
// counter, never a collection scan.
type AuthorResolver struct {
	a author.Author
}

func (r *AuthorResolver) ID() graphql.ID   { return graphql.ID(r.a.ID.Hex()) }
func (r *AuthorResolver) Name() string     { return r.a.Name }
func (r *AuthorResolver) BookCount() int32 { return int32(r.a.BookCount) }

func (r *AuthorResolver) Born() *int32 {
	if r.a.Born == nil {
		return nil
	}
	born := int32(*r.a.Born)
	return &born
}

// UserResolver resolves User fields
type UserResolver struct {
	u user.User
}

func (r *UserResolver) ID() graphql.ID        { return graphql.ID(r.u.ID.Hex()) }
func (r *UserResolver) Username() string      { return r.u.Username }
func (r *UserResolver) FavoriteGenre() string { return r.u.FavoriteGenre }

// TokenResolver wraps an issued credential in the {value} envelope
type TokenResolver struct {
	value string
}

func (r *TokenResolver) Value() string { return r.value }
