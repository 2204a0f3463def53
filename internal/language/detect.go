// Package language classifies an input token by script so that lookups can be
// routed to the Japanese offline tables or the English upstream APIs.
package language

// Language is the script family of an input token.
type Language string

const (
	Japanese Language = "japanese"
	English  Language = "english"
)

// Code returns the short language code used in the multilingual synset table.
func (l Language) Code() string {
	if l == Japanese {
		return "ja"
	}
	return "en"
}

// Detect returns Japanese if the token contains at least one hiragana,
// katakana, or kanji codepoint, and English otherwise.
func Detect(token string) Language {
	for _, r := range token {
		switch {
		case r >= 0x3040 && r <= 0x309F: // hiragana
			return Japanese
		case r >= 0x30A0 && r <= 0x30FF: // katakana
			return Japanese
		case r >= 0x4E00 && r <= 0x9FAF: // kanji
			return Japanese
		}
	}
	return English
}
