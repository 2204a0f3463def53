package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/keigo1110/wordtree/internal/language"
)

// Messages shown in place of a definition on the Japanese path.
const (
	posNotFound      = "不明"
	defNotFound      = "辞書に登録されていない単語です"
	posLookupError   = "エラー"
	defLookupError   = "辞書検索中にエラーが発生しました"
	defNoneAvailable = "定義がありません"
)

// DictionaryResult is a part-of-speech-grouped set of sense definitions.
type DictionaryResult struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic,omitempty"`
	Meanings []Meaning `json:"meanings"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is one sense definition with an optional usage example.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Dictionary looks up definitions for word. The Japanese path never fails:
// unknown words get a synthetic "not found" meaning. The English path
// propagates API errors to the caller.
func (s *Service) Dictionary(ctx context.Context, word string, lang language.Language) (*DictionaryResult, error) {
	if lang == language.Japanese {
		return s.japaneseDictionary(word), nil
	}
	return s.englishDictionary(ctx, word)
}

func (s *Service) japaneseDictionary(word string) *DictionaryResult {
	senses := s.repository.Senses()

	entries := senses[word]
	if len(entries) == 0 {
		// Substring fallback over sorted keys so the first match is the
		// same on every run.
		for _, key := range senses.SortedWords() {
			if strings.Contains(key, word) || strings.Contains(word, key) {
				entries = senses[key]
				break
			}
		}
	}
	if len(entries) == 0 {
		return &DictionaryResult{
			Word: word,
			Meanings: []Meaning{{
				PartOfSpeech: posNotFound,
				Definitions:  []Definition{{Definition: defNotFound}},
			}},
		}
	}

	result := &DictionaryResult{Word: word}
	if s.readings != nil {
		result.Phonetic = s.readings.Reading(word)
	}
	byPos := make(map[string]int)
	for _, entry := range entries {
		definition := entry.Definition
		if definition == "" {
			definition = defNoneAvailable
		}
		i, ok := byPos[entry.PartOfSpeech]
		if !ok {
			result.Meanings = append(result.Meanings, Meaning{PartOfSpeech: entry.PartOfSpeech})
			i = len(result.Meanings) - 1
			byPos[entry.PartOfSpeech] = i
		}
		result.Meanings[i].Definitions = append(result.Meanings[i].Definitions, Definition{Definition: definition})
	}
	return result
}

// errorDictionaryResult is the synthetic meaning shown when the Japanese
// dictionary path itself failed.
func errorDictionaryResult(word string) *DictionaryResult {
	return &DictionaryResult{
		Word: word,
		Meanings: []Meaning{{
			PartOfSpeech: posLookupError,
			Definitions:  []Definition{{Definition: defLookupError}},
		}},
	}
}

func (s *Service) englishDictionary(ctx context.Context, word string) (*DictionaryResult, error) {
	entries, err := s.words.Definitions(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("words.Definitions > %w", err)
	}
	if len(entries) == 0 || len(entries[0].Defs) == 0 {
		return nil, fmt.Errorf("no definitions found for %q", word)
	}

	// The API's spelling match may correct the query; report its headword.
	result := &DictionaryResult{Word: entries[0].Word}
	byPos := make(map[string]int)
	for _, def := range entries[0].Defs {
		// Datamuse definitions are "partOfSpeech\tdefinition" pairs.
		pos, definition, ok := strings.Cut(def, "\t")
		if !ok || definition == "" {
			continue
		}
		i, ok := byPos[pos]
		if !ok {
			result.Meanings = append(result.Meanings, Meaning{PartOfSpeech: pos})
			i = len(result.Meanings) - 1
			byPos[pos] = i
		}
		result.Meanings[i].Definitions = append(result.Meanings[i].Definitions, Definition{Definition: definition})
	}
	if len(result.Meanings) == 0 {
		return nil, fmt.Errorf("no definitions found for %q", word)
	}
	return result, nil
}
