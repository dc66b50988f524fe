package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/versiclehq/versicle/pkg/cipher"
)

const spaceRef = cipher.Reference("Psalms 46:10")

func TestMarshal_WorkedExample(t *testing.T) {
	refs := []cipher.Reference{
		"Leviticus 19:18",
		"Obadiah 1:4",
		"Matthew 5:44",
		"Ephesians 2:8",
		"Psalms 46:10",
		"Genesis 1:31",
		"Obadiah 1:4",
		"Deuteronomy 6:5",
	}

	msg := Marshal(refs, spaceRef)
	expected := "Leviticus 19:18 | Obadiah 1:4 | Matthew 5:44 | Ephesians 2:8 || Genesis 1:31 | Obadiah 1:4 | Deuteronomy 6:5"
	assert.Equal(t, expected, msg)

	parsed, err := Unmarshal(msg, spaceRef)
	require.NoError(t, err)
	assert.Equal(t, refs, parsed)
}

func TestMarshal_SingleWord(t *testing.T) {
	refs := []cipher.Reference{"Genesis 1:31", "Obadiah 1:4", "Deuteronomy 6:5"}

	msg := Marshal(refs, spaceRef)
	assert.Equal(t, "Genesis 1:31 | Obadiah 1:4 | Deuteronomy 6:5", msg)
	assert.NotContains(t, msg, DefaultWordSep)
}

func TestMarshal_Empty(t *testing.T) {
	assert.Equal(t, "", Marshal(nil, spaceRef))

	parsed, err := Unmarshal("", spaceRef)
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestMarshal_ConsecutiveSpaces(t *testing.T) {
	refs := []cipher.Reference{"Genesis 1:31", spaceRef, spaceRef, "Deuteronomy 6:5"}

	msg := Marshal(refs, spaceRef)
	parsed, err := Unmarshal(msg, spaceRef)
	require.NoError(t, err)
	assert.Equal(t, refs, parsed)
}

func TestMarshal_LeadingTrailingSpace(t *testing.T) {
	refs := []cipher.Reference{spaceRef, "Genesis 1:31", spaceRef}

	msg := Marshal(refs, spaceRef)
	parsed, err := Unmarshal(msg, spaceRef)
	require.NoError(t, err)
	assert.Equal(t, refs, parsed)
}

func TestUnmarshal_MalformedSegment(t *testing.T) {
	_, err := Unmarshal("Genesis 1:31 |  | Deuteronomy 6:5", spaceRef)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedMessage)

	var msgErr *MalformedMessageError
	require.ErrorAs(t, err, &msgErr)
	assert.Equal(t, 0, msgErr.Word)
	assert.Equal(t, 1, msgErr.Segment)
}

func TestFormat_CustomSeparators(t *testing.T) {
	f := Format{LetterSep: " + ", WordSep: " / "}
	refs := []cipher.Reference{"Genesis 1:31", spaceRef, "Deuteronomy 6:5"}

	msg := f.Marshal(refs, spaceRef)
	assert.Equal(t, "Genesis 1:31 / Deuteronomy 6:5", msg)

	parsed, err := f.Unmarshal(msg, spaceRef)
	require.NoError(t, err)
	assert.Equal(t, refs, parsed)
}

func TestWireProperties(t *testing.T) {
	table := cipher.DefaultTable()
	codec := cipher.NewCodec(table)
	space, _ := table.Lookup(' ')
	alphabet := table.Alphabet()

	// Round trip through encode -> marshal -> unmarshal -> decode for any
	// supported text.
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 48).Draw(t, "len")
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteRune(rapid.SampledFrom(alphabet).Draw(t, "sym"))
		}
		text := sb.String()

		refs, err := codec.Encode(text)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}

		msg := Marshal(refs, space)
		parsed, err := Unmarshal(msg, space)
		if err != nil {
			t.Fatalf("Unmarshal error: %v", err)
		}

		if len(parsed) != len(refs) {
			t.Fatalf("length mismatch: got %d, want %d", len(parsed), len(refs))
		}
		for i := range refs {
			if parsed[i] != refs[i] {
				t.Fatalf("position %d: got %q, want %q", i, parsed[i], refs[i])
			}
		}

		decoded, err := codec.Decode(parsed)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if decoded != strings.ToUpper(text) {
			t.Fatalf("round trip mismatch: got %q, want %q", decoded, strings.ToUpper(text))
		}
	})
}
