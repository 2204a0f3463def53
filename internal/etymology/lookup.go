// Package etymology retrieves the etymology of English words from the DBnary
// knowledge graph, with a static fallback table for common words and a
// time-bounded cache in front of the network.
package etymology

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL             = 24 * time.Hour
	cacheCleanupInterval = time.Hour
)

var (
	strippedCharsPattern = regexp.MustCompile(`[^\w'-]`)
	validWordPattern     = regexp.MustCompile(`^[a-zA-Z0-9'-]+$`)
)

// Result is the outcome of an etymology lookup. Etymology is empty when
// nothing is known about the word; RetrievedAt is set regardless.
type Result struct {
	Word        string    `json:"word"`
	Etymology   string    `json:"etymology,omitempty"`
	Source      string    `json:"source"`
	RetrievedAt time.Time `json:"retrievedAt"`
}

// Fetcher retrieves etymology text from a remote knowledge graph.
type Fetcher interface {
	Etymology(ctx context.Context, word string) (string, error)
}

// Service answers etymology lookups. It never surfaces upstream failures:
// every path yields a well-formed Result whose Etymology may be empty.
type Service struct {
	fetcher Fetcher
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewService creates an etymology service backed by fetcher.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   gocache.New(cacheTTL, cacheCleanupInterval),
		logger:  logger,
	}
}

// Lookup returns the etymology of word. The word is normalized (lowercased,
// stripped of characters other than letters, digits, hyphen and apostrophe)
// before lookup; a word that normalizes to an invalid form is an input error.
func (s *Service) Lookup(ctx context.Context, word string) (Result, error) {
	normalized := Normalize(word)
	if !validWordPattern.MatchString(normalized) {
		return Result{}, fmt.Errorf("invalid word format: %q", word)
	}

	if etymology, ok := fallbackEtymologies[normalized]; ok {
		return s.result(normalized, etymology), nil
	}
	if cached, ok := s.cache.Get(normalized); ok {
		return s.result(normalized, cached.(string)), nil
	}

	etymology, err := s.fetcher.Etymology(ctx, normalized)
	if err != nil {
		s.logger.Warn("failed to fetch etymology",
			slog.String("word", normalized),
			slog.Any("error", err))
		// Fall through with no etymology: the result is still well formed.
		etymology = ""
	}
	if etymology != "" {
		s.cache.Set(normalized, etymology, gocache.DefaultExpiration)
	}
	return s.result(normalized, etymology), nil
}

func (s *Service) result(word, etymology string) Result {
	return Result{
		Word:        word,
		Etymology:   etymology,
		Source:      "dbnary",
		RetrievedAt: time.Now(),
	}
}

// Normalize lowercases word and strips every character that is not a letter,
// digit, hyphen or apostrophe.
func Normalize(word string) string {
	return strippedCharsPattern.ReplaceAllString(strings.ToLower(word), "")
}
