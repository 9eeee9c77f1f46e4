package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSchemasFiltersByKind(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	all, err := c.ListSchemas("")
	require.NoError(t, err)
	require.Len(t, all, 1)

	matched, err := c.ListSchemas("ascii")
	require.NoError(t, err)
	assert.Equal(t, all, matched)

	none, err := c.ListSchemas("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListConfigDefaultsFiltersByCategory(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	all, err := c.ListConfigDefaults("")
	require.NoError(t, err)
	require.Len(t, all, 1)

	matched, err := c.ListConfigDefaults("logging")
	require.NoError(t, err)
	assert.Equal(t, all, matched)

	none, err := c.ListConfigDefaults("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, none)
}
