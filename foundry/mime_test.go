package foundry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/foundry"
)

func TestGetMimeTypeCaseInsensitive(t *testing.T) {
	t.Parallel()

	e, ok, err := foundry.GetMimeType("APPLICATION/JSON")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "application/json", e.MimeType)
}

func TestGetMimeTypeByExtensionAcceptsLeadingDot(t *testing.T) {
	t.Parallel()

	withDot, ok, err := foundry.GetMimeTypeByExtension(".JSON")
	require.NoError(t, err)
	require.True(t, ok)

	withoutDot, ok, err := foundry.GetMimeTypeByExtension("json")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, withDot.MimeType, withoutDot.MimeType)
}

func TestGetMimeTypeUnknownReturnsFalse(t *testing.T) {
	t.Parallel()

	_, ok, err := foundry.GetMimeType("application/does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSupportedMimeType(t *testing.T) {
	t.Parallel()

	ok, err := foundry.IsSupportedMimeType("text/csv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListMimeTypesReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	list, err := foundry.ListMimeTypes()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	list[0].Extensions[0] = "mutated"

	again, err := foundry.ListMimeTypes()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Extensions[0])
}
