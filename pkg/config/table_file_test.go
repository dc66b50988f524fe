package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versiclehq/versicle/pkg/cipher"
)

const sampleTable = `
entries:
  - symbol: L
    reference: "Leviticus 19:18"
  - symbol: O
    reference: "Obadiah 1:4"
  - symbol: V
    reference: "Matthew 5:44"
  - symbol: E
    reference: "Ephesians 2:8"
  - symbol: space
    reference: "Psalms 46:10"
  - symbol: G
    reference: "Genesis 1:31"
  - symbol: D
    reference: "Deuteronomy 6:5"
`

func TestParseTableFile(t *testing.T) {
	entries, err := ParseTableFile([]byte(sampleTable))
	require.NoError(t, err)
	require.Len(t, entries, 7)

	assert.Equal(t, 'L', entries[0].Symbol)
	assert.Equal(t, cipher.Reference("Leviticus 19:18"), entries[0].Reference)
	assert.Equal(t, ' ', entries[4].Symbol)
}

func TestParseTableFile_BadSymbol(t *testing.T) {
	data := []byte("entries:\n  - symbol: AB\n    reference: \"Acts 2:38\"\n")
	_, err := ParseTableFile(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestParseTableFile_Empty(t *testing.T) {
	_, err := ParseTableFile([]byte("entries: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

func TestParseTableFile_NotYAML(t *testing.T) {
	_, err := ParseTableFile([]byte("{{nope"))
	require.Error(t, err)
}

func TestLoadTable_Default(t *testing.T) {
	table, err := LoadTable(TableConfig{})
	require.NoError(t, err)
	assert.Equal(t, 37, table.Len())
}

func TestLoadTable_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := LoadTable(TableConfig{File: path})
	require.NoError(t, err)
	assert.Equal(t, 7, table.Len())

	codec := cipher.NewCodec(table)
	refs, err := codec.Encode("LOVE GOD")
	require.NoError(t, err)
	assert.Len(t, refs, 8)
}

func TestLoadTable_StrictRejectsBadReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	data := "entries:\n  - symbol: A\n    reference: \"Nonexistent 9:99\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	// Lenient load accepts opaque references.
	_, err := LoadTable(TableConfig{File: path})
	require.NoError(t, err)

	// Strict load validates against the canon.
	_, err = LoadTable(TableConfig{File: path, Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown book")
}

func TestLoadTable_StrictAcceptsDefault(t *testing.T) {
	_, err := LoadTable(TableConfig{Strict: true})
	require.NoError(t, err)
}

func TestLoadTable_DuplicateReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	data := "entries:\n" +
		"  - symbol: A\n    reference: \"Acts 2:38\"\n" +
		"  - symbol: B\n    reference: \"Acts 2:38\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadTable(TableConfig{File: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrInvalidTable)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(TableConfig{File: "/nonexistent/table.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read table file")
}
