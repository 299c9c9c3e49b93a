package dataformat_test

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/vocabulary"
)

func TestExtractJSONLD(t *testing.T) {
	raw := map[string]any{
		"name":     "Song",
		"@type":    "AbstractWork",
		"@context": []any{vocabulary.ContextCoalaIP},
		"@id":      "doc-1",
	}

	extracted, err := dataformat.Extract(raw, dataformat.JSONLD)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Song"}, extracted.Data)
	assert.Equal(t, "AbstractWork", extracted.Type)
	assert.Equal(t, []any{vocabulary.ContextCoalaIP}, extracted.Context)
	assert.Equal(t, "doc-1", extracted.ID)
}

func TestExtractJSON(t *testing.T) {
	raw := map[string]any{
		"name": "Song",
		"type": "AbstractWork",
	}

	extracted, err := dataformat.Extract(raw, dataformat.JSON)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Song"}, extracted.Data)
	assert.Equal(t, "AbstractWork", extracted.Type)
	assert.Nil(t, extracted.Context)
	assert.Empty(t, extracted.ID)
}

func TestExtractIPLDNotImplemented(t *testing.T) {
	_, err := dataformat.Extract(map[string]any{"name": "Song"}, dataformat.IPLD)
	require.ErrorIs(t, err, dataformat.ErrNotImplemented)
}

func TestExtractInvalidFormat(t *testing.T) {
	_, err := dataformat.Extract(map[string]any{}, dataformat.Format("xml"))
	var invalid *dataformat.InvalidFormatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, dataformat.Format("xml"), invalid.Format)
}

// A non-string type or id value must surface as an error, not vanish from
// the extracted record.
func TestExtractMalformedMetadata(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]any
		format dataformat.Format
		key    string
	}{
		{"jsonld type", map[string]any{"name": "Song", "@type": 42}, dataformat.JSONLD, "@type"},
		{"jsonld id", map[string]any{"name": "Song", "@id": 7}, dataformat.JSONLD, "@id"},
		{"inferred", map[string]any{"name": "Song", "@type": 42}, "", "@type"},
		{"plain type", map[string]any{"name": "Song", "type": []any{"Right"}}, dataformat.JSON, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataformat.Extract(tt.data, tt.format)
			var malformed *dataformat.MalformedValueError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.key, malformed.Key)
			assert.Equal(t, tt.data[tt.key], malformed.Value)
		})
	}
}

// An explicit null carries no information and reads as absent.
func TestExtractNilMetadata(t *testing.T) {
	extracted, err := dataformat.Extract(map[string]any{
		"name":  "Song",
		"@type": nil,
		"@id":   nil,
	}, dataformat.JSONLD)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Song"}, extracted.Data)
	assert.Empty(t, extracted.Type)
	assert.Empty(t, extracted.ID)
}

func TestExtractDoesNotModifyInput(t *testing.T) {
	raw := map[string]any{
		"name":  "Song",
		"@type": "AbstractWork",
		"@id":   "doc-1",
	}
	orig := maps.Clone(raw)

	_, err := dataformat.Extract(raw, dataformat.JSONLD)
	require.NoError(t, err)
	assert.Equal(t, orig, raw)
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected dataformat.Format
	}{
		{"type key", map[string]any{"@type": "Right"}, dataformat.JSONLD},
		{"context key", map[string]any{"@context": "https://coalaip.org/"}, dataformat.JSONLD},
		{"id key", map[string]any{"@id": "doc-1"}, dataformat.JSONLD},
		{"empty id is plain", map[string]any{"@id": ""}, dataformat.JSON},
		{"plain", map[string]any{"type": "Right", "name": "x"}, dataformat.JSON},
		{"empty", map[string]any{}, dataformat.JSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dataformat.Infer(tt.data))
		})
	}
}

// Extraction strips exactly the linked-data keys, leaves every other field
// intact, and is idempotent on its own output.
func TestExtractProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fields := rapid.MapOf(
			rapid.StringMatching(`[a-z][a-zA-Z]{0,8}`),
			rapid.String().AsAny(),
		).Draw(rt, "fields")
		delete(fields, "type")

		raw := maps.Clone(fields)
		raw[vocabulary.KeyType] = rapid.StringMatching(`[A-Z][a-zA-Z]{0,8}`).Draw(rt, "ldType")
		raw[vocabulary.KeyID] = rapid.String().Draw(rt, "ldID")

		extracted, err := dataformat.Extract(raw, dataformat.JSONLD)
		if err != nil {
			rt.Fatalf("extract: %v", err)
		}
		if !maps.Equal(extracted.Data, fields) {
			rt.Fatalf("data = %v, want %v", extracted.Data, fields)
		}

		again, err := dataformat.Extract(extracted.Data, dataformat.JSONLD)
		if err != nil {
			rt.Fatalf("re-extract: %v", err)
		}
		if !maps.Equal(again.Data, extracted.Data) {
			rt.Fatalf("re-extraction changed data: %v != %v", again.Data, extracted.Data)
		}
	})
}
