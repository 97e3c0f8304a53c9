package graph_test

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/gqltesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	userSvc "library-backend/internal/domains/user/service"
	"library-backend/internal/graph"
	"library-backend/internal/shared/session"
	"library-backend/internal/testutil"
	"library-backend/pkg/jwt"

	authorSvc "library-backend/internal/domains/author/service"
	bookSvc "library-backend/internal/domains/book/service"
)

const testPassword = "secret"

type fixture struct {
	schema *graphql.Schema
	users  user.Service
	tokens *jwt.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	authors, books, users := testutil.NewStores()
	tokens := jwt.NewManager("test-secret")

	authorService := authorSvc.NewAuthorService(authors)
	bookService := bookSvc.NewBookService(books, authors)
	userService := userSvc.NewUserService(users, tokens, testPassword)

	resolver := graph.NewResolver(bookService, authorService, userService)
	return &fixture{
		schema: graph.NewSchema(resolver),
		users:  userService,
		tokens: tokens,
	}
}

// authedContext creates a user and returns a context carrying it, the way
// the session middleware would after verifying a bearer token.
func (f *fixture) authedContext(t *testing.T, username string) context.Context {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), user.CreateUserInput{
		Username:      username,
		FavoriteGenre: "sci-fi",
	})
	require.NoError(t, err)
	return session.WithCurrentUser(context.Background(), u)
}

func TestCountsOnEmptyStore(t *testing.T) {
	f := newFixture(t)

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			{
				bookCount
				authorCount
			}
		`,
		ExpectedResult: `
			{
				"bookCount": 0,
				"authorCount": 0
			}
		`,
	})
}

func TestAddBookResolvesAuthorWithCount(t *testing.T) {
	f := newFixture(t)
	ctx := f.authedContext(t, "librarian")

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema:  f.schema,
		Context: ctx,
		Query: `
			mutation {
				addBook(
					title: "Book A"
					author: "New Author"
					published: 2020
					genres: ["sci-fi"]
				) {
					title
					published
					genres
					author {
						name
						born
						bookCount
					}
				}
			}
		`,
		ExpectedResult: `
			{
				"addBook": {
					"title": "Book A",
					"published": 2020,
					"genres": ["sci-fi"],
					"author": {
						"name": "New Author",
						"born": null,
						"bookCount": 1
					}
				}
			}
		`,
	})

	// The author is visible on allAuthors with the incremented counter
	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			{
				allAuthors {
					name
					bookCount
				}
			}
		`,
		ExpectedResult: `
			{
				"allAuthors": [
					{"name": "New Author", "bookCount": 1}
				]
			}
		`,
	})
}

func TestAddBookRequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	resp := f.schema.Exec(context.Background(), `
		mutation {
			addBook(title: "Book A", author: "New Author") { title }
		}
	`, "", nil)

	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "not authenticated", resp.Errors[0].Message)
}

func TestAddBookRejectsEmptyTitle(t *testing.T) {
	f := newFixture(t)
	ctx := f.authedContext(t, "librarian")

	resp := f.schema.Exec(ctx, `
		mutation {
			addBook(title: "", author: "Someone") { title }
		}
	`, "", nil)

	require.NotEmpty(t, resp.Errors)
}

func TestAllBooksGenreFilter(t *testing.T) {
	f := newFixture(t)
	ctx := f.authedContext(t, "librarian")

	seed := []string{
		`mutation { addBook(title: "Dune", author: "Frank Herbert", genres: ["sci-fi"]) { title } }`,
		`mutation { addBook(title: "Refactoring", author: "Martin Fowler", genres: ["programming"]) { title } }`,
	}
	for _, q := range seed {
		resp := f.schema.Exec(ctx, q, "", nil)
		require.Empty(t, resp.Errors)
	}

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			{
				allBooks(genre: "sci-fi") {
					title
					author { name }
				}
			}
		`,
		ExpectedResult: `
			{
				"allBooks": [
					{"title": "Dune", "author": {"name": "Frank Herbert"}}
				]
			}
		`,
	})
}

func TestEditAuthorMissingSubjectReturnsNull(t *testing.T) {
	f := newFixture(t)

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			mutation {
				editAuthor(name: "Ghost Writer", setBornTo: 1900) {
					name
				}
			}
		`,
		ExpectedResult: `
			{
				"editAuthor": null
			}
		`,
	})
}

func TestMeAnonymousIsNull(t *testing.T) {
	f := newFixture(t)

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			{
				me { username }
			}
		`,
		ExpectedResult: `
			{
				"me": null
			}
		`,
	})
}

func TestMeReturnsSessionUser(t *testing.T) {
	f := newFixture(t)
	ctx := f.authedContext(t, "alice")

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema:  f.schema,
		Context: ctx,
		Query: `
			{
				me {
					username
					favoriteGenre
				}
			}
		`,
		ExpectedResult: `
			{
				"me": {
					"username": "alice",
					"favoriteGenre": "sci-fi"
				}
			}
		`,
	})
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.CreateUser(context.Background(), user.CreateUserInput{
		Username:      "alice",
		FavoriteGenre: "sci-fi",
	})
	require.NoError(t, err)

	resp := f.schema.Exec(context.Background(), `
		mutation {
			login(username: "alice", password: "secret") { value }
		}
	`, "", nil)
	require.Empty(t, resp.Errors)

	var data struct {
		Login struct {
			Value string `json:"value"`
		} `json:"login"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Login.Value)

	claims, err := f.tokens.Verify(data.Login.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.CreateUser(context.Background(), user.CreateUserInput{
		Username:      "alice",
		FavoriteGenre: "sci-fi",
	})
	require.NoError(t, err)

	queries := []string{
		`mutation { login(username: "alice", password: "wrong") { value } }`,
		`mutation { login(username: "mallory", password: "secret") { value } }`,
	}
	for _, q := range queries {
		resp := f.schema.Exec(context.Background(), q, "", nil)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "wrong credentials", resp.Errors[0].Message)
	}
}

func TestCreateUserMutation(t *testing.T) {
	f := newFixture(t)

	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: f.schema,
		Query: `
			mutation {
				createUser(username: "alice", favoriteGenre: "sci-fi") {
					username
					favoriteGenre
				}
			}
		`,
		ExpectedResult: `
			{
				"createUser": {
					"username": "alice",
					"favoriteGenre": "sci-fi"
				}
			}
		`,
	})

	// A second user with the same name is a validation failure
	resp := f.schema.Exec(context.Background(), `
		mutation {
			createUser(username: "alice", favoriteGenre: "horror") { username }
		}
	`, "", nil)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "username already taken", resp.Errors[0].Message)
}
