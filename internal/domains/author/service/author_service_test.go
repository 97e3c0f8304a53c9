package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/testutil"
)

func TestEditAuthorSetsBorn(t *testing.T) {
	authors, _, _ := testutil.NewStores()
	svc := NewAuthorService(authors)
	ctx := context.Background()

	_, err := authors.Create(ctx, "Sandi Metz")
	require.NoError(t, err)

	updated, err := svc.EditAuthor(ctx, author.EditAuthorInput{Name: "Sandi Metz", SetBornTo: 1952})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Born)
	assert.Equal(t, 1952, *updated.Born)
}

func TestEditAuthorMissingSubjectIsNoOp(t *testing.T) {
	authors, _, _ := testutil.NewStores()
	svc := NewAuthorService(authors)
	ctx := context.Background()

	updated, err := svc.EditAuthor(ctx, author.EditAuthorInput{Name: "Nobody", SetBornTo: 1900})
	require.NoError(t, err)
	assert.Nil(t, updated, "missing subject must yield null, not an error")

	// And no record was created as a side effect
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestEditAuthorValidatesName(t *testing.T) {
	authors, _, _ := testutil.NewStores()
	svc := NewAuthorService(authors)

	_, err := svc.EditAuthor(context.Background(), author.EditAuthorInput{Name: "", SetBornTo: 1900})
	assert.Error(t, err)
}

func TestListReturnsStoredBookCount(t *testing.T) {
	authors, _, _ := testutil.NewStores()
	svc := NewAuthorService(authors)
	ctx := context.Background()

	_, err := authors.UpsertAndIncrement(ctx, "Robert Martin")
	require.NoError(t, err)
	_, err = authors.UpsertAndIncrement(ctx, "Robert Martin")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Robert Martin", list[0].Name)
	assert.Equal(t, 2, list[0].BookCount)
}
