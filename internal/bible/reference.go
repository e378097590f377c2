package bible

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Reference is a parsed (book, chapter, verse?) tuple. Verse is zero when
// the input named a whole chapter.
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse,omitempty"`
}

func (r Reference) HasVerse() bool { return r.Verse > 0 }

func (r Reference) String() string {
	if r.HasVerse() {
		return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
	}
	return fmt.Sprintf("%s %d", r.Book, r.Chapter)
}

type alias struct {
	name string
	id   string
}

// English names and abbreviations, matched against lowercased input.
var englishAliases = []alias{
	{"genesis", "GEN"}, {"exodus", "EXO"}, {"leviticus", "LEV"}, {"numbers", "NUM"},
	{"deuteronomy", "DEU"}, {"joshua", "JOS"}, {"judges", "JDG"}, {"ruth", "RUT"},
	{"1 samuel", "1SA"}, {"2 samuel", "2SA"}, {"1 kings", "1KI"}, {"2 kings", "2KI"},
	{"1 chronicles", "1CH"}, {"2 chronicles", "2CH"}, {"ezra", "EZR"}, {"nehemiah", "NEH"},
	{"esther", "EST"}, {"job", "JOB"}, {"psalms", "PSA"}, {"psalm", "PSA"},
	{"proverbs", "PRO"}, {"ecclesiastes", "ECC"}, {"song of solomon", "SNG"},
	{"song of songs", "SNG"}, {"isaiah", "ISA"}, {"jeremiah", "JER"},
	{"lamentations", "LAM"}, {"ezekiel", "EZK"}, {"daniel", "DAN"}, {"hosea", "HOS"},
	{"joel", "JOL"}, {"amos", "AMO"}, {"obadiah", "OBA"}, {"jonah", "JON"},
	{"micah", "MIC"}, {"nahum", "NAM"}, {"habakkuk", "HAB"}, {"zephaniah", "ZEP"},
	{"haggai", "HAG"}, {"zechariah", "ZEC"}, {"malachi", "MAL"},
	{"matthew", "MAT"}, {"mark", "MRK"}, {"luke", "LUK"}, {"john", "JHN"},
	{"acts", "ACT"}, {"romans", "ROM"}, {"1 corinthians", "1CO"}, {"2 corinthians", "2CO"},
	{"galatians", "GAL"}, {"ephesians", "EPH"}, {"philippians", "PHP"}, {"colossians", "COL"},
	{"1 thessalonians", "1TH"}, {"2 thessalonians", "2TH"}, {"1 timothy", "1TI"},
	{"2 timothy", "2TI"}, {"titus", "TIT"}, {"philemon", "PHM"}, {"hebrews", "HEB"},
	{"james", "JAS"}, {"1 peter", "1PE"}, {"2 peter", "2PE"},
	{"1 john", "1JN"}, {"2 john", "2JN"}, {"3 john", "3JN"},
	{"jude", "JUD"}, {"revelation", "REV"}, {"revelations", "REV"},

	{"gen", "GEN"}, {"exo", "EXO"}, {"exod", "EXO"}, {"lev", "LEV"}, {"num", "NUM"},
	{"deu", "DEU"}, {"deut", "DEU"}, {"jos", "JOS"}, {"josh", "JOS"}, {"jdg", "JDG"},
	{"judg", "JDG"}, {"rut", "RUT"}, {"1sa", "1SA"}, {"1sam", "1SA"}, {"2sa", "2SA"},
	{"2sam", "2SA"}, {"1ki", "1KI"}, {"1kgs", "1KI"}, {"2ki", "2KI"}, {"2kgs", "2KI"},
	{"1ch", "1CH"}, {"1chr", "1CH"}, {"2ch", "2CH"}, {"2chr", "2CH"}, {"ezr", "EZR"},
	{"neh", "NEH"}, {"est", "EST"}, {"psa", "PSA"}, {"pro", "PRO"}, {"prov", "PRO"},
	{"ecc", "ECC"}, {"eccl", "ECC"}, {"sng", "SNG"}, {"sos", "SNG"}, {"isa", "ISA"},
	{"jer", "JER"}, {"lam", "LAM"}, {"ezk", "EZK"}, {"eze", "EZK"}, {"dan", "DAN"},
	{"hos", "HOS"}, {"jol", "JOL"}, {"amo", "AMO"}, {"oba", "OBA"}, {"jon", "JON"},
	{"mic", "MIC"}, {"nam", "NAM"}, {"nah", "NAM"}, {"hab", "HAB"}, {"zep", "ZEP"},
	{"zeph", "ZEP"}, {"hag", "HAG"}, {"zec", "ZEC"}, {"zech", "ZEC"}, {"mal", "MAL"},
	{"mat", "MAT"}, {"matt", "MAT"}, {"mrk", "MRK"}, {"luk", "LUK"}, {"jhn", "JHN"},
	{"jn", "JHN"}, {"act", "ACT"}, {"rom", "ROM"}, {"1co", "1CO"}, {"1cor", "1CO"},
	{"2co", "2CO"}, {"2cor", "2CO"}, {"gal", "GAL"}, {"eph", "EPH"}, {"php", "PHP"},
	{"phil", "PHP"}, {"col", "COL"}, {"1th", "1TH"}, {"1thes", "1TH"}, {"2th", "2TH"},
	{"2thes", "2TH"}, {"1ti", "1TI"}, {"1tim", "1TI"}, {"2ti", "2TI"}, {"2tim", "2TI"},
	{"tit", "TIT"}, {"phm", "PHM"}, {"phlm", "PHM"}, {"heb", "HEB"}, {"jas", "JAS"},
	{"1pe", "1PE"}, {"1pet", "1PE"}, {"2pe", "2PE"}, {"2pet", "2PE"},
	{"1jn", "1JN"}, {"2jn", "2JN"}, {"3jn", "3JN"}, {"jud", "JUD"}, {"rev", "REV"},
}

// nameEntries holds every alias sorted longest first so that "요한복음"
// wins over "요" and "1 john" over "jn". Ties keep vocabulary order:
// Korean full names, Korean abbreviations, English, then raw ids.
var nameEntries = buildNameEntries()

func buildNameEntries() []alias {
	entries := make([]alias, 0, len(books)*3+len(englishAliases))
	for _, b := range books {
		entries = append(entries, alias{name: b.Name, id: b.ID})
	}
	for _, b := range books {
		entries = append(entries, alias{name: b.ShortName, id: b.ID})
	}
	entries = append(entries, englishAliases...)
	for _, b := range books {
		entries = append(entries, alias{name: strings.ToLower(b.ID), id: b.ID})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].name) > utf8.RuneCountInString(entries[j].name)
	})
	return entries
}

var (
	chapterMarker = regexp.MustCompile(`장\s*`)
	spacedPair    = regexp.MustCompile(`^\d+\s+\d+$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// ParseReference resolves free text such as "요 3:16", "John 3:16",
// "창세기 1장 1절" or "롬 8". It reports false when no book matches, the
// suffix has an unsupported shape, the chapter is outside the book's range,
// or the verse is not positive. Verse numbers are not checked against
// per-chapter verse counts.
func ParseReference(input string) (Reference, bool) {
	trimmed := strings.TrimSpace(norm.NFC.String(input))
	if trimmed == "" {
		return Reference{}, false
	}
	lower := strings.ToLower(trimmed)

	var (
		bookID    string
		remainder string
	)
	for _, e := range nameEntries {
		if strings.HasPrefix(lower, e.name) {
			bookID = e.id
			remainder = strings.TrimSpace(lower[len(e.name):])
			break
		}
	}
	if bookID == "" || remainder == "" {
		return Reference{}, false
	}
	book := booksByID[bookID]

	normalized := chapterMarker.ReplaceAllString(remainder, ":")
	normalized = strings.TrimSpace(strings.ReplaceAll(normalized, "절", ""))
	normalized = strings.TrimSuffix(normalized, ":")

	var (
		chapter int
		verse   int
		ok      bool
	)
	switch {
	case strings.Contains(normalized, ":"):
		parts := strings.Split(normalized, ":")
		if len(parts) != 2 {
			return Reference{}, false
		}
		if chapter, ok = leadingInt(strings.TrimSpace(parts[0])); !ok {
			return Reference{}, false
		}
		if versePart := strings.TrimSpace(parts[1]); versePart != "" {
			if verse, ok = leadingInt(versePart); !ok || verse < 1 {
				return Reference{}, false
			}
		}
	case spacedPair.MatchString(normalized):
		parts := whitespace.Split(normalized, -1)
		chapter, _ = strconv.Atoi(parts[0])
		verse, _ = strconv.Atoi(parts[1])
		if verse < 1 {
			return Reference{}, false
		}
	case digitsOnly.MatchString(normalized):
		chapter, _ = strconv.Atoi(normalized)
	default:
		return Reference{}, false
	}

	if chapter < 1 || chapter > book.Chapters {
		return Reference{}, false
	}
	return Reference{Book: bookID, Chapter: chapter, Verse: verse}, true
}

// leadingInt reads the run of ASCII digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// bookToken returns the leading part of the input before any digit that
// follows the book name, for use in suggestions.
func bookToken(input string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFC.String(input)))
	for i, r := range s {
		if i > 0 && r >= '0' && r <= '9' {
			return strings.TrimSpace(s[:i])
		}
	}
	return s
}
