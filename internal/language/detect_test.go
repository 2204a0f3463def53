package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Language
	}{
		{
			name:     "hiragana word",
			token:    "うつくしい",
			expected: Japanese,
		},
		{
			name:     "katakana word",
			token:    "コーヒー",
			expected: Japanese,
		},
		{
			name:     "kanji word",
			token:    "自由",
			expected: Japanese,
		},
		{
			name:     "mixed kanji and okurigana",
			token:    "美しい",
			expected: Japanese,
		},
		{
			name:     "single japanese character among latin",
			token:    "abc語def",
			expected: Japanese,
		},
		{
			name:     "english word",
			token:    "freedom",
			expected: English,
		},
		{
			name:     "empty string",
			token:    "",
			expected: English,
		},
		{
			name:     "digits and punctuation",
			token:    "42!?",
			expected: English,
		},
		{
			name:     "accented latin",
			token:    "liberté",
			expected: English,
		},
		{
			name:     "cyrillic is not japanese",
			token:    "свобода",
			expected: English,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.token))
		})
	}
}

func TestLanguage_Code(t *testing.T) {
	assert.Equal(t, "ja", Japanese.Code())
	assert.Equal(t, "en", English.Code())
}
