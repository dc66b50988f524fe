package cipher

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec failures
var (
	// ErrUnsupportedSymbol indicates an input character has no table entry
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrUnknownReference indicates a reference string has no inverse entry
	ErrUnknownReference = errors.New("unknown reference")

	// ErrInvalidTable indicates a table definition violates the bijection rules
	ErrInvalidTable = errors.New("invalid table")
)

// UnsupportedSymbolError reports the offending character and its position in
// the input text.
type UnsupportedSymbolError struct {
	Symbol   rune
	Position int
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("unsupported symbol %q at index %d", e.Symbol, e.Position)
}

func (e *UnsupportedSymbolError) Is(target error) bool {
	return target == ErrUnsupportedSymbol
}

// UnknownReferenceError reports the offending reference and its position in
// the input sequence.
type UnknownReferenceError struct {
	Reference Reference
	Position  int
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown reference %q at index %d", e.Reference, e.Position)
}

func (e *UnknownReferenceError) Is(target error) bool {
	return target == ErrUnknownReference
}

// TableError reports why a table definition could not be constructed.
type TableError struct {
	Reason string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("invalid table: %s", e.Reason)
}

func (e *TableError) Is(target error) bool {
	return target == ErrInvalidTable
}

// IsUnsupportedSymbol checks if the error indicates an unsupported input symbol
func IsUnsupportedSymbol(err error) bool {
	return errors.Is(err, ErrUnsupportedSymbol)
}

// IsUnknownReference checks if the error indicates an unrecognized reference
func IsUnknownReference(err error) bool {
	return errors.Is(err, ErrUnknownReference)
}
