package catalog_test

import (
	"context"
	"testing"

	"chimichangapp/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_Users(t *testing.T) {
	repo := catalog.NewMemoryRepo()

	users, err := repo.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.User{{Name: "Harry"}, {Name: "Ron"}}, users)
}

func TestMemoryRepo_Items(t *testing.T) {
	repo := catalog.NewMemoryRepo()

	items, err := repo.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.ItemSummary{{Name: "wand"}, {Name: "flying broom"}}, items)
}

func TestMemoryRepo_Search(t *testing.T) {
	repo := catalog.NewMemoryRepo()

	// The demo dataset is returned regardless of the query.
	for _, query := range []string{"", "wand", "broomstick"} {
		hits, err := repo.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, []catalog.SearchHit{{ItemID: "Foo"}, {ItemID: "Bar"}}, hits)
	}
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	repo := catalog.NewMemoryRepo()

	first, err := repo.Items(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wand", second[0].Name)
}
