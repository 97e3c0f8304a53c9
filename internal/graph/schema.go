package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the catalog API surface. Resolvers in this package implement
// every field; parsing, validation and execution belong to the library.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Book {
		id: ID!
		title: String!
		author: Author!
		published: Int
		genres: [String!]!
	}

	type Author {
		id: ID!
		name: String!
		born: Int
		bookCount: Int!
	}

	type User {
		id: ID!
		username: String!
		favoriteGenre: String!
	}

	type Token {
		value: String!
	}

	type Query {
		bookCount: Int!
		authorCount: Int!
		allBooks(author: String, genre: String): [Book!]!
		allAuthors: [Author!]!
		me: User
	}

	type Mutation {
		addBook(
			title: String!
			author: String!
			published: Int
			genres: [String!]
		): Book

		editAuthor(
			name: String!
			setBornTo: Int!
		): Author

		createUser(
			username: String!
			favoriteGenre: String!
		): User

		login(
			username: String!
			password: String!
		): Token
	}
`

// NewSchema parses the SDL against the resolver. Panics on a mismatch,
// which is a programming error caught at startup (and in tests).
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
