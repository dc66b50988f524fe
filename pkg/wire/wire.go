package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/versiclehq/versicle/pkg/cipher"
)

// Default separators as illustrated in the worked example.
const (
	DefaultLetterSep = " | "
	DefaultWordSep   = " || "
)

// ErrMalformedMessage indicates a wire message contains an empty or
// unparseable segment.
var ErrMalformedMessage = errors.New("malformed wire message")

// MalformedMessageError reports the offending word and segment indices.
type MalformedMessageError struct {
	Word    int
	Segment int
}

func (e *MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed wire message: empty segment %d in word %d", e.Segment, e.Word)
}

func (e *MalformedMessageError) Is(target error) bool {
	return target == ErrMalformedMessage
}

// Format holds the separator convention. The zero value uses the illustrated
// defaults.
type Format struct {
	LetterSep string
	WordSep   string
}

func (f Format) letterSep() string {
	if f.LetterSep == "" {
		return DefaultLetterSep
	}
	return f.LetterSep
}

func (f Format) wordSep() string {
	if f.WordSep == "" {
		return DefaultWordSep
	}
	return f.WordSep
}

// Marshal renders an encoded sequence as wire text. Elements equal to
// spaceRef become word boundaries; all other references are joined with the
// letter separator inside their word. Order is preserved. An empty sequence
// marshals to "".
func (f Format) Marshal(refs []cipher.Reference, spaceRef cipher.Reference) string {
	if len(refs) == 0 {
		return ""
	}

	var words []string
	var current []string
	for _, ref := range refs {
		if ref == spaceRef && spaceRef != "" {
			words = append(words, strings.Join(current, f.letterSep()))
			current = current[:0]
			continue
		}
		current = append(current, string(ref))
	}
	words = append(words, strings.Join(current, f.letterSep()))

	return strings.Join(words, f.wordSep())
}

// Unmarshal parses wire text back into the encoded sequence, re-inserting
// spaceRef at each word boundary. "" unmarshals to an empty sequence. A word
// with an empty letter segment is malformed; a fully empty word is legal and
// contributes no letters (consecutive spaces in the plaintext produce it).
func (f Format) Unmarshal(s string, spaceRef cipher.Reference) ([]cipher.Reference, error) {
	if s == "" {
		return []cipher.Reference{}, nil
	}

	words := strings.Split(s, f.wordSep())
	var refs []cipher.Reference
	for wi, word := range words {
		if wi > 0 {
			refs = append(refs, spaceRef)
		}
		if word == "" {
			continue
		}
		for si, seg := range strings.Split(word, f.letterSep()) {
			if strings.TrimSpace(seg) == "" {
				return nil, &MalformedMessageError{Word: wi, Segment: si}
			}
			refs = append(refs, cipher.Reference(seg))
		}
	}
	return refs, nil
}

// Marshal applies the default format.
func Marshal(refs []cipher.Reference, spaceRef cipher.Reference) string {
	return Format{}.Marshal(refs, spaceRef)
}

// Unmarshal applies the default format.
func Unmarshal(s string, spaceRef cipher.Reference) ([]cipher.Reference, error) {
	return Format{}.Unmarshal(s, spaceRef)
}
