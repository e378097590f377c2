package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reference
	}{
		{"korean abbreviation with verse", "요 3:16", Reference{Book: "JHN", Chapter: 3, Verse: 16}},
		{"english name", "John 3:16", Reference{Book: "JHN", Chapter: 3, Verse: 16}},
		{"korean chapter and verse markers", "창세기 1장 1절", Reference{Book: "GEN", Chapter: 1, Verse: 1}},
		{"chapter only", "롬 8", Reference{Book: "ROM", Chapter: 8}},
		{"korean chapter marker only", "창세기 1장", Reference{Book: "GEN", Chapter: 1}},
		{"english abbreviation", "Gen 1:1", Reference{Book: "GEN", Chapter: 1, Verse: 1}},
		{"raw book id", "JHN 3:16", Reference{Book: "JHN", Chapter: 3, Verse: 16}},
		{"space separated", "요 3 16", Reference{Book: "JHN", Chapter: 3, Verse: 16}},
		{"no space after name", "요한복음3:16", Reference{Book: "JHN", Chapter: 3, Verse: 16}},
		{"longest korean abbreviation wins", "요일 4:8", Reference{Book: "1JN", Chapter: 4, Verse: 8}},
		{"numbered english book", "1 John 4:8", Reference{Book: "1JN", Chapter: 4, Verse: 8}},
		{"compact numbered abbreviation", "1cor 13:4", Reference{Book: "1CO", Chapter: 13, Verse: 4}},
		{"multi word english name", "Song of Songs 2", Reference{Book: "SNG", Chapter: 2}},
		{"singular psalm", "psalm 23", Reference{Book: "PSA", Chapter: 23}},
		{"trailing colon", "롬 8:", Reference{Book: "ROM", Chapter: 8}},
		{"surrounding whitespace", "   Rev 22:13  ", Reference{Book: "REV", Chapter: 22, Verse: 13}},
		{"last chapter of a book", "창 50", Reference{Book: "GEN", Chapter: 50}},
		{"verse has no upper bound", "요 3:999", Reference{Book: "JHN", Chapter: 3, Verse: 999}},
		{"single chapter book", "유 1:3", Reference{Book: "JUD", Chapter: 1, Verse: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReference(tt.input)
			require.True(t, ok, "expected %q to parse", tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReference_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"XYZ 1:1",
		"창 51",
		"창 0",
		"요 3:0",
		"요",
		"John",
		"요 3:16:1",
		"요 abc",
		"유 2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseReference(input)
			assert.False(t, ok, "expected %q to be rejected", input)
		})
	}
}

func TestParseReference_DecomposedHangul(t *testing.T) {
	input := norm.NFD.String("요한복음 3:16")
	require.NotEqual(t, "요한복음 3:16", input)

	got, ok := ParseReference(input)
	require.True(t, ok)
	assert.Equal(t, Reference{Book: "JHN", Chapter: 3, Verse: 16}, got)
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "JHN 3:16", Reference{Book: "JHN", Chapter: 3, Verse: 16}.String())
	assert.Equal(t, "ROM 8", Reference{Book: "ROM", Chapter: 8}.String())
}

func TestNameEntries_SortedLongestFirst(t *testing.T) {
	for i := 1; i < len(nameEntries); i++ {
		prev := []rune(nameEntries[i-1].name)
		cur := []rune(nameEntries[i].name)
		require.GreaterOrEqual(t, len(prev), len(cur), "entry %d (%s) precedes longer %s", i, nameEntries[i-1].name, nameEntries[i].name)
	}
}

func TestSuggestBooks(t *testing.T) {
	t.Run("misspelled english name", func(t *testing.T) {
		got := SuggestBooks("Genisis 1:1", 3)
		require.NotEmpty(t, got)
		assert.Equal(t, "GEN", got[0].Book.ID)
	})

	t.Run("transposed letters", func(t *testing.T) {
		got := SuggestBooks("Jhon 3:16", 3)
		require.NotEmpty(t, got)
		assert.Equal(t, "JHN", got[0].Book.ID)
	})

	t.Run("respects limit and uniqueness", func(t *testing.T) {
		got := SuggestBooks("jo", 2)
		assert.LessOrEqual(t, len(got), 2)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s.Book.ID])
			seen[s.Book.ID] = true
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SuggestBooks("", 3))
	})
}
