// Package wire implements the illustrated message framing for encoded
// sequences: references joined by " | " between letters within a word and
// " || " between words. The space symbol's reference never appears on the
// wire; the word separator stands in for it and Unmarshal restores it.
package wire
