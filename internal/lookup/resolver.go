package lookup

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/keigo1110/wordtree/internal/language"
)

const (
	// expansionFetchLimit bounds the synonym-expansion fallback.
	expansionFetchLimit = 5

	// expansionTimeout bounds the synonym-expansion network call.
	expansionTimeout = 5 * time.Second
)

// Resolve returns the synset identifiers the word participates in, in
// deterministic order with duplicates removed. It never fails: a total miss
// and a network failure during expansion both yield an empty result.
func (s *Service) Resolve(ctx context.Context, word string, lang language.Language) []string {
	if lang == language.Japanese {
		return s.repository.Senses().SynsetIDsOf(word)
	}

	if ids := s.exactEnglishMatch(word); len(ids) > 0 {
		return ids
	}
	if ids := s.fuzzyEnglishMatch(word); len(ids) > 0 {
		return ids
	}
	return s.expandedEnglishMatch(ctx, word)
}

// exactEnglishMatch scans the multilingual table for synsets whose English
// lemma list contains word verbatim.
func (s *Service) exactEnglishMatch(word string) []string {
	var ids []string
	synsets := s.repository.Synsets()
	for _, id := range synsets.SortedSynsetIDs() {
		for _, lemma := range synsets[id]["en"] {
			if lemma == word {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// fuzzyEnglishMatch matches when word is a case-insensitive substring of an
// English lemma or vice versa.
func (s *Service) fuzzyEnglishMatch(word string) []string {
	lowered := strings.ToLower(word)
	// An empty needle is a substring of every lemma; it matches nothing.
	if lowered == "" {
		return nil
	}
	var ids []string
	synsets := s.repository.Synsets()
	for _, id := range synsets.SortedSynsetIDs() {
		for _, lemma := range synsets[id]["en"] {
			loweredLemma := strings.ToLower(lemma)
			if strings.Contains(loweredLemma, lowered) || strings.Contains(lowered, loweredLemma) {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// expandedEnglishMatch fetches related words from the synonym API and re-runs
// the exact match for each. Network failures are swallowed.
func (s *Service) expandedEnglishMatch(ctx context.Context, word string) []string {
	ctx, cancel := context.WithTimeout(ctx, expansionTimeout)
	defer cancel()

	entries, err := s.words.Synonyms(ctx, word, expansionFetchLimit)
	if err != nil {
		s.logger.Warn("synonym expansion failed",
			slog.String("word", word),
			slog.Any("error", err))
		return nil
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		for _, id := range s.exactEnglishMatch(entry.Word) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
