package cipher

import "strings"

// Codec applies a table in both directions. It holds no state beyond the
// immutable table and is safe for concurrent use.
type Codec struct {
	table *Table
}

// NewCodec creates a codec over a validated table.
func NewCodec(table *Table) *Codec {
	return &Codec{table: table}
}

// Table returns the codec's table.
func (c *Codec) Table() *Table {
	return c.table
}

// Encode translates text into one reference per input character, in order.
// Letter lookup is case insensitive. The first character without a table
// entry aborts the encode with an UnsupportedSymbolError carrying the rune
// and its index; no partial result is returned.
func (c *Codec) Encode(text string) ([]Reference, error) {
	runes := []rune(text)
	refs := make([]Reference, 0, len(runes))
	for i, r := range runes {
		ref, ok := c.table.Lookup(r)
		if !ok {
			return nil, &UnsupportedSymbolError{Symbol: r, Position: i}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Decode inverts the lookup for each reference, in order, and returns the
// uppercase canonical text. Matching is exact, including book name, chapter,
// and verse. The first unrecognized reference aborts the decode with an
// UnknownReferenceError carrying the string and its index.
//
// Case information is lost by Encode, so Decode(Encode(x)) equals the
// uppercase form of x, not x itself.
func (c *Codec) Decode(refs []Reference) (string, error) {
	var sb strings.Builder
	sb.Grow(len(refs))
	for i, ref := range refs {
		sym, ok := c.table.Invert(ref)
		if !ok {
			return "", &UnknownReferenceError{Reference: ref, Position: i}
		}
		sb.WriteRune(sym)
	}
	return sb.String(), nil
}
