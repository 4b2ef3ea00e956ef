package bench

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augurmark/jtok"
)

// countShape walks a decoded interface{} tree counting objects, arrays, and
// scalars -- a cheap structural fingerprint to compare against what the
// Reader reports token-by-token, without requiring the two decoders to
// agree on Go types for numbers.
type shape struct {
	Objects int
	Arrays  int
	Scalars int
}

func countShape(v interface{}, s *shape) {
	switch t := v.(type) {
	case map[string]interface{}:
		s.Objects++
		for _, child := range t {
			countShape(child, s)
		}
	case []interface{}:
		s.Arrays++
		for _, child := range t {
			countShape(child, s)
		}
	default:
		s.Scalars++
	}
}

func tokenShape(t *testing.T, doc []byte) shape {
	t.Helper()
	r := jtok.NewReader(doc, true, jtok.Options{}, nil)
	var s shape
	for {
		ok, err := r.Advance()
		require.NoError(t, err)
		if !ok {
			break
		}
		switch r.TokenKind() {
		case jtok.StartObject:
			s.Objects++
		case jtok.StartArray:
			s.Arrays++
		case jtok.String, jtok.Number, jtok.True, jtok.False, jtok.Null:
			s.Scalars++
		}
	}
	return s
}

func TestBenchmarkDecodersAgreeOnShape(t *testing.T) {
	doc := []byte(sampleDoc)

	var parsed interface{}
	require.NoError(t, json.Unmarshal(doc, &parsed))
	var want shape
	countShape(parsed, &want)

	got := tokenShape(t, doc)
	assert.Equal(t, want, got)
}
