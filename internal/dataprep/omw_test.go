package dataprep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexicon(t *testing.T, omwDir, lang, lemma1, lemma2 string) {
	t.Helper()
	dir := filepath.Join(omwDir, lang)
	require.NoError(t, os.MkdirAll(dir, 0755))
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<LexicalResource>
  <Lexicon id="` + lang + `">
    <LexicalEntry id="w1">
      <Lemma writtenForm="` + lemma1 + `" partOfSpeech="n"/>
      <Sense id="s1" synset="` + lang + `-08641944-n"/>
    </LexicalEntry>
    <LexicalEntry id="w2">
      <Lemma writtenForm="` + lemma2 + `" partOfSpeech="n"/>
      <Sense id="s2" synset="` + lang + `-08641944-n"/>
    </LexicalEntry>
    <LexicalEntry id="w2dup">
      <Lemma writtenForm="` + lemma2 + `" partOfSpeech="n"/>
      <Sense id="s3" synset="` + lang + `-08641944-n"/>
    </LexicalEntry>
    <LexicalEntry id="w3">
      <Lemma writtenForm="lemma-without-sense"/>
    </LexicalEntry>
  </Lexicon>
</LexicalResource>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".xml"), []byte(xml), 0644))
}

func TestBuildSynsetTable(t *testing.T) {
	omwDir := t.TempDir()
	writeLexicon(t, omwDir, "omw-en", "village", "hamlet")
	writeLexicon(t, omwDir, "omw-fr", "village", "hameau")
	// a broken document must not fail the whole build
	require.NoError(t, os.MkdirAll(filepath.Join(omwDir, "omw-de"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(omwDir, "omw-de", "omw-de.xml"), []byte("<not-closed"), 0644))

	table, err := BuildSynsetTable(omwDir)
	require.NoError(t, err)

	require.Contains(t, table, "08641944-n")
	synset := table["08641944-n"]
	assert.Equal(t, []string{"village", "hamlet"}, synset["en"])
	assert.Equal(t, []string{"village", "hameau"}, synset["fr"])
	assert.NotContains(t, synset, "de")
}

func TestBuildSynsetTable_missingDirectory(t *testing.T) {
	_, err := BuildSynsetTable(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestExtractLemmas_stripsLanguagePrefix(t *testing.T) {
	omwDir := t.TempDir()
	writeLexicon(t, omwDir, "omw-cmn", "村", "村庄")

	lemmas, err := extractLemmas(filepath.Join(omwDir, "omw-cmn", "omw-cmn.xml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"村", "村庄"}, lemmas["08641944-n"])
}
