// Package search implements ranked keyword search over verses of one
// version, reading persisted verses first and falling back to the chapters
// held in the retrieval cache.
package search

import (
	"context"
	"log"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mrlokans/mybible/internal/bible"
)

const (
	DefaultLimit = 50

	minTokenRunes = 2

	scorePresent     = 10
	scoreEarly       = 5
	earlyOffset      = 20
	scoreWordStart   = 8
	scoreWordEnd     = 3
	scoreRepeat      = 2
	scoreShortVerse  = 4
	shortVerseRunes  = 60
	scoreMediumVerse = 2
	mediumVerseRunes = 120
)

// VerseSource lists persisted verses of a version. A nil books slice means
// every book.
type VerseSource interface {
	HasVersion(version string) (bool, error)
	VersesByVersion(version string, books []string) ([]bible.Verse, error)
}

// ChapterSource exposes chapters currently held in memory.
type ChapterSource interface {
	CachedChapters(version string) []*bible.Chapter
}

type Query struct {
	Version string
	Text    string
	Scope   bible.Scope
	Limit   int
}

type ScoredVerse struct {
	bible.Verse
	Score int `json:"score"`
}

type Result struct {
	Verses     []ScoredVerse `json:"verses"`
	TotalFound int           `json:"totalFound"`
}

type Engine struct {
	store  VerseSource
	cached ChapterSource
}

// NewEngine creates a search engine. Either source may be nil.
func NewEngine(store VerseSource, cached ChapterSource) *Engine {
	return &Engine{store: store, cached: cached}
}

// Search ranks matching verses. Store errors fall back to cached chapters;
// only cancellation is reported as an error.
func (e *Engine) Search(ctx context.Context, q Query) (*Result, error) {
	tokens := Tokenize(q.Text)
	if len(tokens) == 0 {
		return &Result{Verses: []ScoredVerse{}}, nil
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if q.Scope == "" {
		q.Scope = bible.ScopeAll
	}

	var matches []ScoredVerse
	for _, v := range e.candidates(q) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !q.Scope.Includes(v.Book) {
			continue
		}
		if score, ok := Score(v.Text, tokens); ok {
			matches = append(matches, ScoredVerse{Verse: v, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse.Verse < b.Verse.Verse
	})

	total := len(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []ScoredVerse{}
	}
	return &Result{Verses: matches, TotalFound: total}, nil
}

// candidates reads the store unless it holds nothing for the version at
// all. A version that is only partly downloaded is searched from the store
// even when the scope matches none of its rows.
func (e *Engine) candidates(q Query) []bible.Verse {
	if e.store != nil {
		if verses, ok := e.persisted(q); ok {
			return verses
		}
	}
	if e.cached == nil {
		return nil
	}
	var out []bible.Verse
	for _, ch := range e.cached.CachedChapters(q.Version) {
		out = append(out, ch.Verses...)
	}
	return out
}

func (e *Engine) persisted(q Query) ([]bible.Verse, bool) {
	stored, err := e.store.HasVersion(q.Version)
	if err != nil {
		log.Printf("[SEARCH] Store unavailable for %s, using cached chapters: %v", q.Version, err)
		return nil, false
	}
	if !stored {
		return nil, false
	}
	verses, err := e.store.VersesByVersion(q.Version, q.Scope.BookIDs())
	if err != nil {
		log.Printf("[SEARCH] Store unavailable for %s, using cached chapters: %v", q.Version, err)
		return nil, false
	}
	return verses, true
}

// Tokenize lowercases and splits on whitespace, dropping tokens shorter
// than two characters.
func Tokenize(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Score returns the relevance of text for tokens, or false if any token is
// absent.
func Score(text string, tokens []string) (int, bool) {
	lower := []rune(strings.ToLower(text))
	total := 0
	for _, token := range tokens {
		t := []rune(token)
		first := indexRunes(lower, t, 0)
		if first < 0 {
			return 0, false
		}

		total += scorePresent
		if first < earlyOffset {
			total += scoreEarly
		}
		if first == 0 || unicode.IsSpace(lower[first-1]) {
			total += scoreWordStart
		}
		end := first + len(t)
		if end == len(lower) || unicode.IsPunct(lower[end]) || unicode.IsSpace(lower[end]) {
			total += scoreWordEnd
		}

		count := 0
		for i := first; i >= 0; i = indexRunes(lower, t, i+len(t)) {
			count++
		}
		total += scoreRepeat * (count - 1)
	}

	switch n := len(lower); {
	case n < shortVerseRunes:
		total += scoreShortVerse
	case n < mediumVerseRunes:
		total += scoreMediumVerse
	}
	return total, true
}

func indexRunes(s, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
