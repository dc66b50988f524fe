package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versiclehq/versicle/pkg/canon"
)

func TestNewTable_RejectsDuplicateSymbol(t *testing.T) {
	_, err := NewTable([]Entry{
		{'A', "Acts 2:38"},
		{'A', "Amos 5:24"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
	assert.Contains(t, err.Error(), "duplicate symbol")
}

func TestNewTable_RejectsCaseCollision(t *testing.T) {
	// 'g' canonicalises to 'G', so these collide.
	_, err := NewTable([]Entry{
		{'G', "Genesis 1:31"},
		{'g', "Galatians 5:22"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestNewTable_RejectsDuplicateReference(t *testing.T) {
	_, err := NewTable([]Entry{
		{'A', "Acts 2:38"},
		{'B', "Acts 2:38"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
	assert.Contains(t, err.Error(), "duplicate reference")
}

func TestNewTable_RejectsEmptyReference(t *testing.T) {
	_, err := NewTable([]Entry{{'A', "  "}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestNewTable_RejectsEmptyEntryList(t *testing.T) {
	_, err := NewTable(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestTable_LookupCaseInsensitive(t *testing.T) {
	table := DefaultTable()

	upper, ok := table.Lookup('G')
	require.True(t, ok)
	lower, ok := table.Lookup('g')
	require.True(t, ok)
	assert.Equal(t, upper, lower)
}

func TestTable_InvertExact(t *testing.T) {
	table := DefaultTable()

	sym, ok := table.Invert("Genesis 1:31")
	require.True(t, ok)
	assert.Equal(t, 'G', sym)

	_, ok = table.Invert("genesis 1:31")
	assert.False(t, ok)
}

func TestTable_EntriesSorted(t *testing.T) {
	table := DefaultTable()

	entries := table.Entries()
	require.Len(t, entries, table.Len())
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Symbol, entries[i].Symbol)
	}
}

func TestDefaultTable_Shape(t *testing.T) {
	table := DefaultTable()

	// A-Z, space, 0-9
	assert.Equal(t, 37, table.Len())

	for r := 'A'; r <= 'Z'; r++ {
		_, ok := table.Lookup(r)
		assert.True(t, ok, "missing letter %q", r)
	}
	for r := '0'; r <= '9'; r++ {
		_, ok := table.Lookup(r)
		assert.True(t, ok, "missing digit %q", r)
	}
	_, ok := table.Lookup(' ')
	assert.True(t, ok, "missing space")

	_, ok = table.Lookup('!')
	assert.False(t, ok, "punctuation should not be mapped")
}

func TestDefaultTable_CanonicallyValid(t *testing.T) {
	for _, e := range DefaultEntries() {
		assert.NoError(t, canon.ValidateString(string(e.Reference)),
			"reference %q for symbol %q", e.Reference, e.Symbol)
	}
}
