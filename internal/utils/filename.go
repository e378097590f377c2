package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxFilenameRunes = 120

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a note title safe to use as a markdown file name.
// Length is capped in runes so Hangul titles are never cut mid-character.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = whitespaceChars.ReplaceAllString(filename, " ")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	// Characters markdown vaults treat as links or tags
	filename = strings.ReplaceAll(filename, "#", "")
	filename = strings.ReplaceAll(filename, "[", "(")
	filename = strings.ReplaceAll(filename, "]", ")")

	if utf8.RuneCountInString(filename) > maxFilenameRunes {
		filename = strings.TrimSpace(string([]rune(filename)[:maxFilenameRunes]))
	}

	if filename == "" {
		filename = "Untitled"
	}

	return filename
}
