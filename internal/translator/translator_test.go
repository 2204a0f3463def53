package translator

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Len(t, registry.Languages, 17)
	assert.Equal(t, "en", registry.Codes()[0])
	assert.True(t, registry.IsSupported("ja"))
	assert.True(t, registry.IsSupported("pl"))
	assert.False(t, registry.IsSupported("xx"))
}

func TestPhraseTableModel(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		text     string
		expected string
	}{
		{name: "known phrase", target: "en", text: "自由", expected: "freedom"},
		{name: "known phrase reverse direction", target: "ja", text: "freedom", expected: "自由"},
		{name: "unknown phrase is bracketed", target: "de", text: "serendipity", expected: "[serendipity]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewPhraseTableModel(tt.target)
			assert.Equal(t, tt.expected, model.Translate(tt.text))
		})
	}
}

func TestModelCache(t *testing.T) {
	t.Run("loads on miss and caches", func(t *testing.T) {
		var loads int
		cache, err := NewModelCache(10, func(source, target string) (Model, error) {
			loads++
			return NewPhraseTableModel(target), nil
		})
		require.NoError(t, err)

		_, err = cache.Get("en", "ja")
		require.NoError(t, err)
		_, err = cache.Get("en", "ja")
		require.NoError(t, err)
		assert.Equal(t, 1, loads)
	})

	t.Run("evicts least recently used beyond capacity", func(t *testing.T) {
		var loads int
		cache, err := NewModelCache(10, func(source, target string) (Model, error) {
			loads++
			return NewPhraseTableModel(target), nil
		})
		require.NoError(t, err)

		for i := 0; i < 11; i++ {
			_, err := cache.Get("en", fmt.Sprintf("t%02d", i))
			require.NoError(t, err)
		}
		assert.Equal(t, 10, cache.Len())

		// The first pair was evicted, so it loads again.
		_, err = cache.Get("en", "t00")
		require.NoError(t, err)
		assert.Equal(t, 12, loads)
	})

	t.Run("propagates loader errors", func(t *testing.T) {
		cache, err := NewModelCache(10, func(source, target string) (Model, error) {
			return nil, errors.New("model blob missing")
		})
		require.NoError(t, err)

		_, err = cache.Get("en", "ja")
		require.Error(t, err)
	})
}

func TestTranslator_Translate(t *testing.T) {
	translator, err := New(slog.Default())
	require.NoError(t, err)

	t.Run("translates into every language but the source", func(t *testing.T) {
		result, err := translator.Translate("自由", "")
		require.NoError(t, err)

		assert.Equal(t, "ja", result.Source)
		assert.Len(t, result.Translations, 16)
		assert.NotContains(t, result.Translations, "ja")
		assert.Equal(t, "freedom", result.Translations["en"])
		assert.Equal(t, "Freiheit", result.Translations["de"])
		assert.Empty(t, result.Errors)
		assert.False(t, result.Timestamp.IsZero())
	})

	t.Run("explicit source overrides detection", func(t *testing.T) {
		result, err := translator.Translate("freedom", "en")
		require.NoError(t, err)
		assert.Equal(t, "en", result.Source)
		assert.Equal(t, "自由", result.Translations["ja"])
	})

	t.Run("unknown phrase is bracketed", func(t *testing.T) {
		result, err := translator.Translate("serendipity", "en")
		require.NoError(t, err)
		assert.Equal(t, "[serendipity]", result.Translations["fr"])
	})

	t.Run("unsupported source is an error", func(t *testing.T) {
		_, err := translator.Translate("hello", "xx")
		require.Error(t, err)
	})
}

func TestTranslator_modelLoadFailureYieldsPlaceholder(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	cache, err := NewModelCache(DefaultCacheCapacity, func(source, target string) (Model, error) {
		if target == "de" {
			return nil, errors.New("model blob missing")
		}
		return NewPhraseTableModel(target), nil
	})
	require.NoError(t, err)
	translator := &Translator{registry: registry, cache: cache, logger: slog.Default()}

	result, err := translator.Translate("freedom", "en")
	require.NoError(t, err)
	assert.Equal(t, "[Error: en->de]", result.Translations["de"])
	assert.Equal(t, []string{"en->de"}, result.Errors)
	assert.Equal(t, "自由", result.Translations["ja"])
}
