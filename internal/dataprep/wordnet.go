// Package dataprep builds the offline lookup tables from the raw Japanese
// WordNet and Open Multilingual Wordnet distribution files. It runs once,
// offline, via the "wordtree data" commands; the server only reads its output.
package dataprep

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// BuildSenseTable parses the wnjpn-ok.tab word rows and the optional
// wnjpn-def.tab definition rows into a word-sense table. Only rows with
// high-confidence provenance (hand, mono) are retained; words left with no
// retained senses are dropped entirely.
func BuildSenseTable(wordPath, defPath string) (map[string][]SenseRow, error) {
	if _, err := os.Stat(wordPath); err != nil {
		slog.Error("word data file not found; download it first",
			"path", wordPath,
			"download", "curl -L https://github.com/bond-lab/wnja/releases/download/v1.1/wnjpn-ok.tab.gz -o data/wnjpn-ok.tab.gz",
			"extract", "gunzip data/wnjpn-ok.tab.gz")
		return nil, fmt.Errorf("os.Stat(%s) > %w", wordPath, err)
	}

	definitions, err := readDefinitions(defPath)
	if err != nil {
		return nil, fmt.Errorf("readDefinitions > %w", err)
	}

	// word -> senses in first-seen row order
	table := make(map[string][]SenseRow)
	var order []string

	if err := forEachRow(wordPath, func(fields []string) {
		if len(fields) < 3 {
			return
		}
		synsetID, word, confidence := fields[0], fields[1], fields[2]
		if _, ok := table[word]; !ok {
			order = append(order, word)
		}
		table[word] = append(table[word], SenseRow{
			SynsetID:     synsetID,
			Word:         word,
			Confidence:   confidence,
			PartOfSpeech: partOfSpeechLabel(synsetID),
			Definition:   definitions[synsetID],
		})
	}); err != nil {
		return nil, fmt.Errorf("forEachRow(%s) > %w", wordPath, err)
	}

	filtered := make(map[string][]SenseRow, len(table))
	for _, word := range order {
		var kept []SenseRow
		for _, row := range table[word] {
			if row.Confidence == "hand" || row.Confidence == "mono" {
				kept = append(kept, row)
			}
		}
		if len(kept) > 0 {
			filtered[word] = kept
		}
	}

	logSenseStats(filtered)
	return filtered, nil
}

// SenseRow mirrors the entry shape the server loads at startup.
type SenseRow struct {
	SynsetID     string `json:"synsetId"`
	Word         string `json:"word"`
	Confidence   string `json:"confidence"`
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition,omitempty"`
}

// readDefinitions builds the synsetId -> Japanese definition index. Duplicate
// synset rows are not expected, but the last writer wins if they appear.
func readDefinitions(defPath string) (map[string]string, error) {
	definitions := make(map[string]string)
	if defPath == "" {
		return definitions, nil
	}
	if _, err := os.Stat(defPath); err != nil {
		slog.Warn("definition file not found, senses will have no definitions", "path", defPath)
		return definitions, nil
	}

	if err := forEachRow(defPath, func(fields []string) {
		// synsetId \t senseNum \t englishDef \t japaneseDef
		if len(fields) < 4 {
			return
		}
		synsetID, japaneseDef := fields[0], strings.TrimSpace(fields[3])
		if synsetID != "" && japaneseDef != "" {
			definitions[synsetID] = japaneseDef
		}
	}); err != nil {
		return nil, fmt.Errorf("forEachRow(%s) > %w", defPath, err)
	}
	return definitions, nil
}

// forEachRow streams a tab-separated file line by line, skipping blank lines.
func forEachRow(path string, fn func(fields []string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err > %w", err)
	}
	return nil
}

func partOfSpeechLabel(synsetID string) string {
	parts := strings.Split(synsetID, "-")
	if len(parts) < 2 {
		return "その他"
	}
	switch parts[1] {
	case "n":
		return "名詞"
	case "v":
		return "動詞"
	case "a":
		return "形容詞"
	case "r":
		return "副詞"
	default:
		return "その他"
	}
}

func logSenseStats(table map[string][]SenseRow) {
	var entries int
	byPOS := make(map[string]int)
	for _, rows := range table {
		entries += len(rows)
		for _, row := range rows {
			byPOS[row.PartOfSpeech]++
		}
	}
	slog.Info("built word sense table",
		"words", len(table),
		"entries", entries,
		"byPartOfSpeech", byPOS)
}

// WriteTable serializes a built table as JSON, creating the parent directory
// if needed.
func WriteTable(path string, table any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	contents, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	slog.Info("wrote table", "path", path, "bytes", len(contents))
	return nil
}
