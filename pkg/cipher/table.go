package cipher

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Reference names a book, chapter, and verse, e.g. "Genesis 1:1". The codec
// treats references as opaque strings; canonical validation lives in pkg/canon.
type Reference string

// Entry pairs one plaintext symbol with its reference.
type Entry struct {
	Symbol    rune
	Reference Reference
}

// Table is the validated bijection between symbols and references.
//
// Symbols are stored in uppercase canonical form. Lookups are case
// insensitive for letters. The zero value is not usable; construct with
// NewTable or DefaultTable.
type Table struct {
	forward map[rune]Reference
	inverse map[Reference]rune
}

// NewTable builds a table from entries, enforcing the bijection invariants:
// no duplicate symbols, no duplicate references, no empty references.
// Lowercase letters are canonicalised to uppercase before insertion, so an
// entry for 'g' and an entry for 'G' collide.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, &TableError{Reason: "no entries"}
	}

	t := &Table{
		forward: make(map[rune]Reference, len(entries)),
		inverse: make(map[Reference]rune, len(entries)),
	}

	for _, e := range entries {
		sym := unicode.ToUpper(e.Symbol)
		ref := Reference(strings.TrimSpace(string(e.Reference)))

		if ref == "" {
			return nil, &TableError{Reason: fmt.Sprintf("empty reference for symbol %q", sym)}
		}
		if prev, ok := t.forward[sym]; ok {
			return nil, &TableError{Reason: fmt.Sprintf("duplicate symbol %q (already mapped to %q)", sym, prev)}
		}
		if prev, ok := t.inverse[ref]; ok {
			return nil, &TableError{Reason: fmt.Sprintf("duplicate reference %q (already mapped from %q)", ref, prev)}
		}

		t.forward[sym] = ref
		t.inverse[ref] = sym
	}

	return t, nil
}

// Lookup returns the reference for a symbol. Letters match case
// insensitively.
func (t *Table) Lookup(sym rune) (Reference, bool) {
	ref, ok := t.forward[unicode.ToUpper(sym)]
	return ref, ok
}

// Invert returns the canonical uppercase symbol for a reference. The match is
// exact, including book name, chapter, and verse.
func (t *Table) Invert(ref Reference) (rune, bool) {
	sym, ok := t.inverse[ref]
	return sym, ok
}

// Len returns the number of symbols in the alphabet.
func (t *Table) Len() int {
	return len(t.forward)
}

// Entries returns the table contents sorted by symbol. The slice is a copy;
// mutating it does not affect the table.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.forward))
	for sym, ref := range t.forward {
		entries = append(entries, Entry{Symbol: sym, Reference: ref})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Symbol < entries[j].Symbol })
	return entries
}

// Alphabet returns the supported symbols in sorted order.
func (t *Table) Alphabet() []rune {
	syms := make([]rune, 0, len(t.forward))
	for sym := range t.forward {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
