package dataprep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestBuildSenseTable(t *testing.T) {
	tempDir := t.TempDir()

	wordData := "00217728-a\t美しい\thand\n" +
		"00217728-a\t綺麗\tmono\n" +
		"02084071-n\t犬\tauto\n" +
		"\n" +
		"01926311-v\t走る\thand\n"
	defData := "00217728-a\t1\tbeautiful def\t感覚を活気づけ、知的情緒的賞賛を喚起する\n" +
		"01926311-v\t1\trun def\t速く移動する\n"

	wordPath := writeTempFile(t, tempDir, "wnjpn-ok.tab", wordData)
	defPath := writeTempFile(t, tempDir, "wnjpn-def.tab", defData)

	table, err := BuildSenseTable(wordPath, defPath)
	require.NoError(t, err)

	// auto-confidence only word is dropped entirely
	assert.NotContains(t, table, "犬")
	assert.Len(t, table, 3)

	entries := table["美しい"]
	require.Len(t, entries, 1)
	assert.Equal(t, "00217728-a", entries[0].SynsetID)
	assert.Equal(t, "hand", entries[0].Confidence)
	assert.Equal(t, "形容詞", entries[0].PartOfSpeech)
	assert.Equal(t, "感覚を活気づけ、知的情緒的賞賛を喚起する", entries[0].Definition)

	runs := table["走る"]
	require.Len(t, runs, 1)
	assert.Equal(t, "動詞", runs[0].PartOfSpeech)
	assert.Equal(t, "速く移動する", runs[0].Definition)
}

func TestBuildSenseTable_missingWordFile(t *testing.T) {
	_, err := BuildSenseTable(filepath.Join(t.TempDir(), "missing.tab"), "")
	assert.Error(t, err)
}

func TestBuildSenseTable_missingDefinitionFileIsNotFatal(t *testing.T) {
	tempDir := t.TempDir()
	wordPath := writeTempFile(t, tempDir, "wnjpn-ok.tab", "00217728-a\t美しい\thand\n")

	table, err := BuildSenseTable(wordPath, filepath.Join(tempDir, "missing-def.tab"))
	require.NoError(t, err)
	require.Len(t, table["美しい"], 1)
	assert.Empty(t, table["美しい"][0].Definition)
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "table.json")
	require.NoError(t, WriteTable(path, map[string][]string{"a": {"b"}}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": ["b"]}`, string(contents))
}
