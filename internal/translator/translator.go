// Package translator implements the demonstration translation subsystem: a
// fixed language registry, a per-pair model cache with LRU eviction, and a
// toy phrase-table model standing in for real per-pair models.
package translator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/keigo1110/wordtree/internal/language"
)

// Result is the response of a translation request.
type Result struct {
	Query        string            `json:"query"`
	Source       string            `json:"source"`
	Translations map[string]string `json:"translations"`
	Errors       []string          `json:"errors,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Translator translates a phrase into every supported language but the
// source.
type Translator struct {
	registry *Registry
	cache    *ModelCache
	logger   *slog.Logger
}

// New creates a translator with a phrase-table model per language pair.
func New(logger *slog.Logger) (*Translator, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("NewRegistry > %w", err)
	}
	cache, err := NewModelCache(DefaultCacheCapacity, func(source, target string) (Model, error) {
		return NewPhraseTableModel(target), nil
	})
	if err != nil {
		return nil, fmt.Errorf("NewModelCache > %w", err)
	}
	return &Translator{
		registry: registry,
		cache:    cache,
		logger:   logger,
	}, nil
}

// Translate translates query into every supported language except the
// source. An empty source is detected from the query's script. A pair whose
// model fails to load gets a bracketed error placeholder and an entry in
// Errors instead of failing the request.
func (t *Translator) Translate(query, source string) (*Result, error) {
	if source == "" {
		source = language.Detect(query).Code()
	}
	if !t.registry.IsSupported(source) {
		return nil, fmt.Errorf("unsupported source language: %s", source)
	}

	result := &Result{
		Query:        query,
		Source:       source,
		Translations: map[string]string{},
		Timestamp:    time.Now(),
	}
	for _, target := range t.registry.Codes() {
		if target == source {
			continue
		}
		model, err := t.cache.Get(source, target)
		if err != nil {
			t.logger.Warn("failed to load translation model",
				slog.String("source", source),
				slog.String("target", target),
				slog.Any("error", err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s->%s", source, target))
			result.Translations[target] = fmt.Sprintf("[Error: %s->%s]", source, target)
			continue
		}
		result.Translations[target] = model.Translate(query)
	}
	return result, nil
}
