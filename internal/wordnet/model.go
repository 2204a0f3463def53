// Package wordnet holds the two offline lexical tables built from the
// Japanese WordNet and Open Multilingual Wordnet distributions, and the
// repository that loads them at startup.
package wordnet

import "sort"

// Confidence is the provenance tag of a Japanese WordNet sense row.
type Confidence string

const (
	ConfidenceHand Confidence = "hand"
	ConfidenceMono Confidence = "mono"
	ConfidenceAuto Confidence = "auto"
)

// HighConfidence reports whether a sense row survives the build-time filter.
func (c Confidence) HighConfidence() bool {
	return c == ConfidenceHand || c == ConfidenceMono
}

// SenseEntry is one word-sense pairing from the monolingual sense inventory.
type SenseEntry struct {
	SynsetID     string     `json:"synsetId"`
	Word         string     `json:"word"`
	Confidence   Confidence `json:"confidence"`
	PartOfSpeech string     `json:"partOfSpeech"`
	Definition   string     `json:"definition,omitempty"`
}

// PartOfSpeechOf derives the Japanese part-of-speech label from a synset
// identifier of the form "<8-digit-offset>-<pos-char>".
func PartOfSpeechOf(synsetID string) string {
	i := len(synsetID) - 1
	if i < 1 || synsetID[i-1] != '-' {
		return "その他"
	}
	switch synsetID[i] {
	case 'n':
		return "名詞"
	case 'v':
		return "動詞"
	case 'a':
		return "形容詞"
	case 'r':
		return "副詞"
	default:
		return "その他"
	}
}

// WordSenseTable maps a surface word to its senses in first-seen order.
type WordSenseTable map[string][]SenseEntry

// SortedWords returns the table keys in sorted order. Substring fallbacks
// iterate this so that first-match-wins is deterministic across runs.
func (t WordSenseTable) SortedWords() []string {
	words := make([]string, 0, len(t))
	for word := range t {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// SynsetIDsOf collects the distinct synset identifiers of a word, preserving
// the order senses appear in the table.
func (t WordSenseTable) SynsetIDsOf(word string) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, entry := range t[word] {
		if _, ok := seen[entry.SynsetID]; ok {
			continue
		}
		seen[entry.SynsetID] = struct{}{}
		ids = append(ids, entry.SynsetID)
	}
	return ids
}

// MultilingualSynset maps a synset identifier to per-language lemma lists.
// Lemmas are unique per language, in source-document order.
type MultilingualSynset map[string]map[string][]string

// SortedSynsetIDs returns the synset identifiers in sorted order for
// deterministic scans.
func (m MultilingualSynset) SortedSynsetIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
