package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/coalaip/go-coalaip/model"
	"github.com/coalaip/go-coalaip/vocabulary"
)

func TestNewDefaults(t *testing.T) {
	m, err := model.New(model.Attrs{
		Data: map[string]any{"name": "Song"},
		Type: "AbstractWork",
	})
	require.NoError(t, err)

	assert.Equal(t, "AbstractWork", m.Type())
	assert.Equal(t, []any{vocabulary.ContextCoalaIP, vocabulary.ContextSchema}, m.Context())

	id, err := m.ID()
	require.NoError(t, err)
	assert.Empty(t, id)

	data, err := m.Data()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Song"}, data)
}

func TestNewValidatorFailure(t *testing.T) {
	_, err := model.New(model.Attrs{
		Data:      map[string]any{},
		Type:      "AbstractWork",
		Validator: model.IsWork,
	})

	var dataErr *model.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, vocabulary.KeyName, dataErr.Field)
}

func TestNewStringContext(t *testing.T) {
	m, err := model.New(model.Attrs{
		Data:    map[string]any{"name": "Song"},
		Type:    "AbstractWork",
		Context: vocabulary.ContextCoalaIP,
	})
	require.NoError(t, err)
	assert.Equal(t, []any{vocabulary.ContextCoalaIP}, m.Context())
}

func TestNewBadContext(t *testing.T) {
	_, err := model.New(model.Attrs{
		Data:    map[string]any{"name": "Song"},
		Type:    "AbstractWork",
		Context: 42,
	})

	var dataErr *model.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, vocabulary.KeyContext, dataErr.Field)
}

func TestDataCopiedOnConstruction(t *testing.T) {
	raw := map[string]any{"name": "Song"}
	m, err := model.New(model.Attrs{Data: raw, Type: "AbstractWork"})
	require.NoError(t, err)

	raw["name"] = "changed"

	data, err := m.Data()
	require.NoError(t, err)
	assert.Equal(t, "Song", data["name"])
}

// Mutating a returned data map never shows up in a later read of the same
// model.
func TestDataCopiedOnRead(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fields := rapid.MapOf(
			rapid.StringMatching(`[a-z][a-zA-Z]{0,8}`),
			rapid.String().AsAny(),
		).Draw(rt, "fields")
		fields["name"] = "Song"

		m, err := model.New(model.Attrs{Data: fields, Type: "AbstractWork", Validator: model.IsCreation})
		if err != nil {
			rt.Fatalf("construct: %v", err)
		}

		first, _ := m.Data()
		for key := range first {
			first[key] = "mutated"
		}
		first["injected"] = true

		second, _ := m.Data()
		if second["name"] != "Song" {
			rt.Fatalf("mutation leaked into stored data: %v", second)
		}
		if _, ok := second["injected"]; ok {
			rt.Fatal("injected key leaked into stored data")
		}
	})
}

func TestContextCopiedOnRead(t *testing.T) {
	m, err := model.New(model.Attrs{Data: map[string]any{"name": "Song"}, Type: "AbstractWork"})
	require.NoError(t, err)

	ctx := m.Context()
	ctx[0] = "mutated"

	assert.Equal(t, vocabulary.ContextCoalaIP, m.Context()[0])
}
