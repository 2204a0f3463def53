package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keigo1110/wordtree/internal/language"
)

const (
	maxSynonyms          = 15
	maxAntonyms          = 10
	synonymAPIFetchLimit = 20
)

// SynonymResult carries same-synset sibling words and, on the English path,
// antonyms. Antonyms is omitted entirely when there are none.
type SynonymResult struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms,omitempty"`
}

// Synonyms finds synonyms (and antonyms on the English path) for word. The
// Japanese path never fails; a failed English synonym fetch propagates, but a
// failed antonym fetch only drops the antonym field.
func (s *Service) Synonyms(ctx context.Context, word string, lang language.Language, synsetIDs []string) (*SynonymResult, error) {
	if lang == language.Japanese {
		return s.japaneseSynonyms(word, synsetIDs), nil
	}
	return s.englishSynonyms(ctx, word)
}

// japaneseSynonyms scans the sense table for other words sharing a synset
// with word.
func (s *Service) japaneseSynonyms(word string, synsetIDs []string) *SynonymResult {
	result := &SynonymResult{Word: word, Synonyms: []string{}}
	if len(synsetIDs) == 0 {
		return result
	}

	wanted := make(map[string]struct{}, len(synsetIDs))
	for _, id := range synsetIDs {
		wanted[id] = struct{}{}
	}

	senses := s.repository.Senses()
	for _, candidate := range senses.SortedWords() {
		if candidate == word {
			continue
		}
		for _, entry := range senses[candidate] {
			if _, ok := wanted[entry.SynsetID]; !ok {
				continue
			}
			result.Synonyms = append(result.Synonyms, candidate)
			break
		}
		if len(result.Synonyms) >= maxSynonyms {
			break
		}
	}
	return result
}

func (s *Service) englishSynonyms(ctx context.Context, word string) (*SynonymResult, error) {
	entries, err := s.words.Synonyms(ctx, word, synonymAPIFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("words.Synonyms > %w", err)
	}

	result := &SynonymResult{Word: word, Synonyms: []string{}}
	for _, entry := range entries {
		if len(result.Synonyms) >= maxSynonyms {
			break
		}
		result.Synonyms = append(result.Synonyms, entry.Word)
	}

	// Antonyms are best effort: a failure here does not fail the lookup.
	antonyms, err := s.words.Antonyms(ctx, word, maxAntonyms)
	if err != nil {
		s.logger.Warn("antonym lookup failed",
			slog.String("word", word),
			slog.Any("error", err))
		return result, nil
	}
	for _, entry := range antonyms {
		if len(result.Antonyms) >= maxAntonyms {
			break
		}
		result.Antonyms = append(result.Antonyms, entry.Word)
	}
	return result, nil
}
