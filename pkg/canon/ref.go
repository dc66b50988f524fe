package canon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for reference validation
var (
	// ErrMalformedReference indicates the string does not have "Book C:V" shape
	ErrMalformedReference = errors.New("malformed reference")

	// ErrUnknownBook indicates the book name is not in the canon
	ErrUnknownBook = errors.New("unknown book")

	// ErrOutOfRange indicates the chapter or verse exceeds the book's bounds
	ErrOutOfRange = errors.New("chapter or verse out of range")
)

// Ref is a parsed scripture reference.
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// String renders the reference in the canonical "Book C:V" form.
func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// ParseReference parses a "Book Chapter:Verse" string. Book names may contain
// spaces and leading ordinals ("1 Samuel 3:4", "Song of Solomon 2:1"); the
// chapter:verse pair is always the final whitespace-separated token.
func ParseReference(s string) (Ref, error) {
	trimmed := strings.TrimSpace(s)
	idx := strings.LastIndexByte(trimmed, ' ')
	if idx < 0 {
		return Ref{}, fmt.Errorf("%w: %q has no chapter:verse part", ErrMalformedReference, s)
	}

	book := strings.TrimSpace(trimmed[:idx])
	cv := trimmed[idx+1:]

	chapStr, verseStr, ok := strings.Cut(cv, ":")
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q is not chapter:verse", ErrMalformedReference, cv)
	}

	chapter, err := strconv.Atoi(chapStr)
	if err != nil || chapter < 1 {
		return Ref{}, fmt.Errorf("%w: bad chapter %q", ErrMalformedReference, chapStr)
	}
	verse, err := strconv.Atoi(verseStr)
	if err != nil || verse < 1 {
		return Ref{}, fmt.Errorf("%w: bad verse %q", ErrMalformedReference, verseStr)
	}

	if book == "" {
		return Ref{}, fmt.Errorf("%w: empty book name in %q", ErrMalformedReference, s)
	}

	return Ref{Book: book, Chapter: chapter, Verse: verse}, nil
}

// Validate checks the reference against the canon: the book must exist and
// the chapter and verse must fall within its KJV bounds.
func Validate(r Ref) error {
	b, ok := Lookup(r.Book)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBook, r.Book)
	}
	if r.Chapter > b.Chapters() {
		return fmt.Errorf("%w: %s has %d chapters, got chapter %d", ErrOutOfRange, b.Name, b.Chapters(), r.Chapter)
	}
	if r.Verse > b.Verses[r.Chapter-1] {
		return fmt.Errorf("%w: %s %d has %d verses, got verse %d", ErrOutOfRange, b.Name, r.Chapter, b.Verses[r.Chapter-1], r.Verse)
	}
	return nil
}

// ValidateString parses and validates a reference string in one step.
func ValidateString(s string) error {
	r, err := ParseReference(s)
	if err != nil {
		return err
	}
	return Validate(r)
}
