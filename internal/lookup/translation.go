package lookup

import (
	"github.com/keigo1110/wordtree/internal/language"
)

// maxTranslationsPerLanguage caps each language's lemma list.
const maxTranslationsPerLanguage = 5

// TranslationResult maps language codes to lemma lists. An empty mapping
// means no synset carried cross-lingual data; that is not an error.
type TranslationResult struct {
	Word         string              `json:"word"`
	Translations map[string][]string `json:"translations"`
}

// Translations unions per-language lemma lists across all given synsets,
// excludes the input's own language, and caps each list. It never fails.
func (s *Service) Translations(word string, lang language.Language, synsetIDs []string) *TranslationResult {
	result := &TranslationResult{
		Word:         word,
		Translations: map[string][]string{},
	}

	synsets := s.repository.Synsets()
	seen := make(map[string]map[string]struct{})
	for _, id := range synsetIDs {
		for code, lemmas := range synsets[id] {
			if code == lang.Code() {
				continue
			}
			if seen[code] == nil {
				seen[code] = make(map[string]struct{})
			}
			for _, lemma := range lemmas {
				if _, ok := seen[code][lemma]; ok {
					continue
				}
				if len(result.Translations[code]) >= maxTranslationsPerLanguage {
					continue
				}
				seen[code][lemma] = struct{}{}
				result.Translations[code] = append(result.Translations[code], lemma)
			}
		}
	}
	return result
}
