// Package reading produces katakana readings for Japanese headwords using
// morphological analysis. The lookup handler uses it to fill the phonetic
// field of Japanese dictionary results.
package reading

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Analyzer wraps a kagome tokenizer with the bundled IPA dictionary.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer creates a tokenizer instance. The IPA dictionary is embedded in
// the binary, so this only fails on internal tokenizer errors.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenizer.New > %w", err)
	}
	return &Analyzer{t: t}, nil
}

// Reading returns the katakana reading of word, concatenating per-token
// readings. It returns "" when any token has no reading, so that unknown
// words do not produce partial or misleading phonetics.
func (a *Analyzer) Reading(word string) string {
	var builder strings.Builder
	for _, token := range a.t.Tokenize(word) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		// IPA feature 7 is the reading in katakana.
		features := token.Features()
		if len(features) <= 7 || features[7] == "*" {
			return ""
		}
		builder.WriteString(features[7])
	}
	return builder.String()
}
