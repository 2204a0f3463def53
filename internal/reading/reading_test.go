package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Reading(t *testing.T) {
	analyzer, err := NewAnalyzer()
	require.NoError(t, err)

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{
			name:     "adjective",
			word:     "美しい",
			expected: "ウツクシイ",
		},
		{
			name:     "noun",
			word:     "自由",
			expected: "ジユウ",
		},
		{
			name:     "unknown latin word yields no reading",
			word:     "xyzzy",
			expected: "",
		},
		{
			name:     "empty string",
			word:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Reading(tt.word))
		})
	}
}
