// Package lookup implements the multi-source word lookup: synset resolution
// across the offline tables, dictionary/synonym/translation sub-lookups, and
// the fan-out orchestrator that merges them under partial failure.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/keigo1110/wordtree/internal/datamuse"
	"github.com/keigo1110/wordtree/internal/etymology"
	"github.com/keigo1110/wordtree/internal/language"
	"github.com/keigo1110/wordtree/internal/wordnet"
)

var (
	// ErrEmptyWord is returned for a missing or empty lookup word.
	ErrEmptyWord = errors.New("word is required")

	// ErrAllLookupsFailed is returned when every mandatory sub-lookup
	// rejected. Partial failure is not an error; total failure is.
	ErrAllLookupsFailed = errors.New("all lookups failed")
)

// Response is the assembled lookup result. Every field is optional: a nil
// field means that data source did not answer for this request.
type Response struct {
	Dictionary   *DictionaryResult  `json:"dictionary,omitempty"`
	Synonyms     *SynonymResult     `json:"synonyms,omitempty"`
	Translations *TranslationResult `json:"translations,omitempty"`
	Etymology    *etymology.Result  `json:"etymology,omitempty"`
}

// wordAPI is the slice of the Datamuse client the lookup paths use.
type wordAPI interface {
	Definitions(ctx context.Context, word string) ([]datamuse.Entry, error)
	Synonyms(ctx context.Context, word string, max int) ([]datamuse.Entry, error)
	Antonyms(ctx context.Context, word string, max int) ([]datamuse.Entry, error)
}

// etymologyLookup is the slice of the etymology service the orchestrator uses.
type etymologyLookup interface {
	Lookup(ctx context.Context, word string) (etymology.Result, error)
}

// readingProvider supplies katakana readings for Japanese headwords.
type readingProvider interface {
	Reading(word string) string
}

// Service orchestrates a word lookup across the offline tables and the
// external APIs.
type Service struct {
	repository  *wordnet.Repository
	words       wordAPI
	etymologies etymologyLookup
	readings    readingProvider
	logger      *slog.Logger
}

// NewService wires the lookup service. readings may be nil, in which case
// Japanese dictionary results carry no phonetic field.
func NewService(
	repository *wordnet.Repository,
	words wordAPI,
	etymologies etymologyLookup,
	readings readingProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		repository:  repository,
		words:       words,
		etymologies: etymologies,
		readings:    readings,
		logger:      logger,
	}
}

// outcome is the settled state of one sub-lookup: a value or an error,
// recorded without cancelling sibling sub-lookups.
type outcome[T any] struct {
	value T
	err   error
}

// settle runs fn and records its result, converting a panic into an error so
// one misbehaving sub-lookup cannot take the request down.
func settle[T any](fn func() (T, error)) (result outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			result.err = fmt.Errorf("panic: %v", r)
		}
	}()
	result.value, result.err = fn()
	return result
}

// Handle looks up word across all sub-lookups concurrently and merges
// whatever succeeded. It returns ErrEmptyWord for empty input and
// ErrAllLookupsFailed when none of the mandatory sub-lookups answered.
func (s *Service) Handle(ctx context.Context, word string, includeEtymology bool) (*Response, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	lang := language.Detect(word)
	synsetIDs := s.Resolve(ctx, word, lang)

	var (
		wg           sync.WaitGroup
		dictionary   outcome[*DictionaryResult]
		synonyms     outcome[*SynonymResult]
		translations outcome[*TranslationResult]
		ety          outcome[etymology.Result]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		dictionary = settle(func() (*DictionaryResult, error) {
			return s.Dictionary(ctx, word, lang)
		})
	}()
	go func() {
		defer wg.Done()
		synonyms = settle(func() (*SynonymResult, error) {
			return s.Synonyms(ctx, word, lang, synsetIDs)
		})
	}()
	go func() {
		defer wg.Done()
		translations = settle(func() (*TranslationResult, error) {
			return s.Translations(word, lang, synsetIDs), nil
		})
	}()
	if includeEtymology {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ety = settle(func() (etymology.Result, error) {
				return s.etymologies.Lookup(ctx, word)
			})
		}()
	}
	wg.Wait()

	// The Japanese dictionary path converts failures into a synthetic
	// "error" meaning instead of rejecting the whole section.
	if dictionary.err != nil && lang == language.Japanese {
		s.logger.Warn("japanese dictionary lookup failed",
			slog.String("word", word),
			slog.Any("error", dictionary.err))
		dictionary = outcome[*DictionaryResult]{value: errorDictionaryResult(word)}
	}

	response := &Response{}
	rejected := 0
	if dictionary.err != nil {
		rejected++
		s.logger.Warn("dictionary lookup rejected", slog.String("word", word), slog.Any("error", dictionary.err))
	} else {
		response.Dictionary = dictionary.value
	}
	if synonyms.err != nil {
		rejected++
		s.logger.Warn("synonym lookup rejected", slog.String("word", word), slog.Any("error", synonyms.err))
	} else {
		response.Synonyms = synonyms.value
	}
	if translations.err != nil {
		rejected++
		s.logger.Warn("translation lookup rejected", slog.String("word", word), slog.Any("error", translations.err))
	} else {
		response.Translations = translations.value
	}
	if rejected == 3 {
		return nil, ErrAllLookupsFailed
	}

	if includeEtymology {
		if ety.err != nil {
			// Etymology is best effort: failures never affect the response.
			s.logger.Warn("etymology lookup rejected", slog.String("word", word), slog.Any("error", ety.err))
		} else {
			result := ety.value
			response.Etymology = &result
		}
	}
	return response, nil
}
