package foundry_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/foundry"
)

func TestDetectXML(t *testing.T) {
	t.Parallel()

	d, err := foundry.Detect([]byte(`<?xml version="1.0"?><root/>`))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/xml", d.MimeType)
	assert.Equal(t, foundry.MatchExact, d.Strategy)
}

func TestDetectSingleLineJSONIsExact(t *testing.T) {
	t.Parallel()

	d, err := foundry.Detect([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/json", d.MimeType)
	assert.Equal(t, foundry.MatchExact, d.Strategy)
}

func TestDetectNDJSONWinsOverPlainJSON(t *testing.T) {
	t.Parallel()

	d, err := foundry.Detect([]byte("{\"a\":1}\n{\"b\":2}\n{\"c\":3}\n"))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/x-ndjson", d.MimeType)
	assert.Equal(t, foundry.MatchHeuristic, d.Strategy)
}

func TestDetectYAML(t *testing.T) {
	t.Parallel()

	d, err := foundry.Detect([]byte("key: value\nother: thing\nmore: stuff\n"))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/x-yaml", d.MimeType)
}

func TestDetectCSV(t *testing.T) {
	t.Parallel()

	d, err := foundry.Detect([]byte("a,b,c\n1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "text/csv", d.MimeType)
}

func TestDetectProtobuf(t *testing.T) {
	t.Parallel()

	sample := []byte{0x08, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	d, err := foundry.Detect(sample)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/x-protobuf", d.MimeType)
}

func TestDetectPlainText(t *testing.T) {
	t.Parallel()

	sample := []byte("The quick brown fox jumps over the lazy dog\nPack my box with five dozen liquor jugs\n")
	d, err := foundry.Detect(sample)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "text/plain", d.MimeType)
}

func TestDetectNoMatchReturnsNil(t *testing.T) {
	t.Parallel()

	sample := make([]byte, 100)
	sample[0] = 0xFF
	for i := 1; i < 94; i++ {
		sample[i] = 'A'
	}
	for i := 94; i < 100; i++ {
		sample[i] = 0x01
	}

	d, err := foundry.Detect(sample)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDetectStripsBOM(t *testing.T) {
	t.Parallel()

	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<?xml version="1.0"?><root/>`)...)
	d, err := foundry.Detect(withBOM)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/xml", d.MimeType)
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?><root/>`), 0o644))

	d, err := foundry.DetectFile(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/xml", d.MimeType)
}

func TestDetectStream(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte(`<?xml version="1.0"?><root/>`))
	d, err := foundry.DetectStream(context.Background(), r, 0)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "application/xml", d.MimeType)
}
