package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augurmark/jtok"
)

func TestTokenizePlain(t *testing.T) {
	records, err := tokenize([]byte(`{"a":1,"b":[true,null]}`), jtok.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "StartObject", records[0].Kind)
	assert.Equal(t, "EndObject", records[len(records)-1].Kind)
}

func TestTokenizeMatchesGzipPath(t *testing.T) {
	doc := []byte(`{"x": [1,2,3], "y": "hi\nthere"}`)

	plain, err := tokenize(doc, jtok.Options{})
	require.NoError(t, err)

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err = w.Write(doc)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := gzip.NewReader(bytes.NewReader(gz.Bytes()))
	require.NoError(t, err)
	var decompressed bytes.Buffer
	_, err = decompressed.ReadFrom(r)
	require.NoError(t, err)

	fromGzip, err := tokenize(decompressed.Bytes(), jtok.Options{})
	require.NoError(t, err)

	require.Equal(t, len(plain), len(fromGzip))
	for i := range plain {
		assert.Equal(t, plain[i], fromGzip[i])
	}
}

func TestTokenizeRejectsTrailingGarbage(t *testing.T) {
	_, err := tokenize([]byte(`1 2`), jtok.Options{})
	assert.Error(t, err)
}

func TestLoadConfigUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	err := os.WriteFile(path, []byte("comments: allow\nbogus_field: true\n"), 0o644)
	require.NoError(t, err)

	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigAllowComments(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	err := os.WriteFile(path, []byte("comments: allow\nmax_depth: 8\n"), 0o644)
	require.NoError(t, err)

	opts, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, jtok.AllowComments, opts.Comments)
	assert.Equal(t, 8, opts.MaxDepth)
}
