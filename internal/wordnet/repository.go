package wordnet

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Repository holds the two lookup tables, read-only after construction.
// Handlers receive it by injection so tests can substitute fixtures.
type Repository struct {
	senses  WordSenseTable
	synsets MultilingualSynset
}

// NewRepository builds a repository from in-memory tables.
func NewRepository(senses WordSenseTable, synsets MultilingualSynset) *Repository {
	if senses == nil {
		senses = WordSenseTable{}
	}
	if synsets == nil {
		synsets = MultilingualSynset{}
	}
	return &Repository{senses: senses, synsets: synsets}
}

// Load reads the two built JSON tables from disk. A missing or corrupt
// word-sense table falls back to the built-in seed so the process still
// starts; a missing synset table degrades translation to always-empty.
// Load never fails.
func Load(senseTablePath, synsetTablePath string) *Repository {
	senses := WordSenseTable{}
	if err := readJSONFile(senseTablePath, &senses); err != nil {
		slog.Warn("failed to load word sense table, using seed data",
			"path", senseTablePath,
			"error", err)
		senses = SeedSenses()
	} else {
		slog.Info("loaded word sense table", "path", senseTablePath, "words", len(senses))
	}

	synsets := MultilingualSynset{}
	if err := readJSONFile(synsetTablePath, &synsets); err != nil {
		slog.Warn("failed to load multilingual synset table, translations will be empty",
			"path", synsetTablePath,
			"error", err)
		synsets = MultilingualSynset{}
	} else {
		slog.Info("loaded multilingual synset table", "path", synsetTablePath, "synsets", len(synsets))
	}

	return NewRepository(senses, synsets)
}

func readJSONFile(path string, out any) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile > %w", err)
	}
	if err := json.Unmarshal(contents, out); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}

// Senses returns the word-sense table.
func (r *Repository) Senses() WordSenseTable {
	return r.senses
}

// Synsets returns the multilingual synset table.
func (r *Repository) Synsets() MultilingualSynset {
	return r.synsets
}
