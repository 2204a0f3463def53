package dataprep

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TargetLanguages are the OMW document identifiers processed into the synset
// table. The built file stays small enough to load at startup by restricting
// the build to these.
var TargetLanguages = []string{
	"omw-en", "omw-ja", "omw-fr", "omw-es", "omw-de", "omw-it", "omw-pt", "omw-ru", "omw-cmn", "omw-ko",
	"omw-nl", "omw-sv", "omw-da", "omw-no", "omw-fi", "omw-pl", "omw-cs", "omw-sk", "omw-hu", "omw-ro",
	"omw-bg", "omw-hr", "omw-sr", "omw-sl", "omw-et", "omw-lv", "omw-lt", "omw-el", "omw-tr", "omw-ar",
}

const languagePrefix = "omw-"

var synsetPrefixPattern = regexp.MustCompile(`^omw-[a-z]+-`)

// BuildSynsetTable extracts (writtenForm, synset) pairs from each language's
// WN-LMF XML document under omwDir and merges them into one
// synsetId -> language -> lemmas table. A language whose document is missing
// or fails to parse is logged and skipped; it never fails the whole build.
func BuildSynsetTable(omwDir string) (map[string]map[string][]string, error) {
	if _, err := os.Stat(omwDir); err != nil {
		slog.Error("OMW data directory not found; download it first",
			"path", omwDir,
			"download", `curl -L "https://github.com/omwn/omw-data/releases/download/v1.4/omw-1.4.tar.xz" -o data/omw-1.4.tar.xz`,
			"extract", "tar -xf data/omw-1.4.tar.xz -C data/")
		return nil, fmt.Errorf("os.Stat(%s) > %w", omwDir, err)
	}

	synsetMap := make(map[string]map[string][]string)
	var mu sync.Mutex

	var group errgroup.Group
	group.SetLimit(4)
	for _, lang := range TargetLanguages {
		lang := lang
		group.Go(func() error {
			xmlPath := filepath.Join(omwDir, lang, lang+".xml")
			lemmas, err := extractLemmas(xmlPath)
			if err != nil {
				slog.Warn("skipping language", "language", lang, "error", err)
				return nil
			}

			shortCode := lang[len(languagePrefix):]
			var lemmaCount int
			mu.Lock()
			for synsetID, lemmaList := range lemmas {
				if synsetMap[synsetID] == nil {
					synsetMap[synsetID] = make(map[string][]string)
				}
				synsetMap[synsetID][shortCode] = lemmaList
				lemmaCount += len(lemmaList)
			}
			mu.Unlock()

			slog.Info("processed language", "language", lang, "synsets", len(lemmas), "lemmas", lemmaCount)
			return nil
		})
	}
	// Goroutines only ever return nil; the group is used for its bounded
	// fan-out and join.
	_ = group.Wait()

	slog.Info("built multilingual synset table", "synsets", len(synsetMap))
	return synsetMap, nil
}

type lexicalEntry struct {
	Lemma *struct {
		WrittenForm string `xml:"writtenForm,attr"`
	} `xml:"Lemma"`
	Senses []struct {
		Synset string `xml:"synset,attr"`
	} `xml:"Sense"`
}

// extractLemmas streams one language document, collecting lemmas per
// normalized synset identifier. The language-specific prefix is stripped
// (omw-en-08641944-n -> 08641944-n) and lemmas are deduplicated per synset.
func extractLemmas(xmlPath string) (map[string][]string, error) {
	file, err := os.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	lemmas := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	decoder := xml.NewDecoder(file)
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoder.Token > %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "LexicalEntry" {
			continue
		}

		var entry lexicalEntry
		if err := decoder.DecodeElement(&entry, &start); err != nil {
			return nil, fmt.Errorf("decoder.DecodeElement > %w", err)
		}
		if entry.Lemma == nil || entry.Lemma.WrittenForm == "" || len(entry.Senses) == 0 {
			continue
		}
		synset := entry.Senses[0].Synset
		if synset == "" {
			continue
		}

		synsetID := synsetPrefixPattern.ReplaceAllString(synset, "")
		if seen[synsetID] == nil {
			seen[synsetID] = make(map[string]struct{})
		}
		if _, dup := seen[synsetID][entry.Lemma.WrittenForm]; dup {
			continue
		}
		seen[synsetID][entry.Lemma.WrittenForm] = struct{}{}
		lemmas[synsetID] = append(lemmas[synsetID], entry.Lemma.WrittenForm)
	}

	return lemmas, nil
}
