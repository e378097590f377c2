// Package bible holds the static book and version registry, reference
// parsing and formatting, and the core verse/chapter types shared by the
// retrieval, search and prefetch layers.
package bible

import (
	"fmt"
	"strings"
)

type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Book describes one of the 66 canonical books.
type Book struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	EnglishName string    `json:"englishName"`
	ShortName   string    `json:"shortName"`
	Testament   Testament `json:"testament"`
	Chapters    int       `json:"chapters"`
	Order       int       `json:"order"`
}

var books = []Book{
	{ID: "GEN", Name: "창세기", EnglishName: "Genesis", ShortName: "창", Testament: TestamentOld, Chapters: 50, Order: 1},
	{ID: "EXO", Name: "출애굽기", EnglishName: "Exodus", ShortName: "출", Testament: TestamentOld, Chapters: 40, Order: 2},
	{ID: "LEV", Name: "레위기", EnglishName: "Leviticus", ShortName: "레", Testament: TestamentOld, Chapters: 27, Order: 3},
	{ID: "NUM", Name: "민수기", EnglishName: "Numbers", ShortName: "민", Testament: TestamentOld, Chapters: 36, Order: 4},
	{ID: "DEU", Name: "신명기", EnglishName: "Deuteronomy", ShortName: "신", Testament: TestamentOld, Chapters: 34, Order: 5},
	{ID: "JOS", Name: "여호수아", EnglishName: "Joshua", ShortName: "수", Testament: TestamentOld, Chapters: 24, Order: 6},
	{ID: "JDG", Name: "사사기", EnglishName: "Judges", ShortName: "삿", Testament: TestamentOld, Chapters: 21, Order: 7},
	{ID: "RUT", Name: "룻기", EnglishName: "Ruth", ShortName: "룻", Testament: TestamentOld, Chapters: 4, Order: 8},
	{ID: "1SA", Name: "사무엘상", EnglishName: "1 Samuel", ShortName: "삼상", Testament: TestamentOld, Chapters: 31, Order: 9},
	{ID: "2SA", Name: "사무엘하", EnglishName: "2 Samuel", ShortName: "삼하", Testament: TestamentOld, Chapters: 24, Order: 10},
	{ID: "1KI", Name: "열왕기상", EnglishName: "1 Kings", ShortName: "왕상", Testament: TestamentOld, Chapters: 22, Order: 11},
	{ID: "2KI", Name: "열왕기하", EnglishName: "2 Kings", ShortName: "왕하", Testament: TestamentOld, Chapters: 25, Order: 12},
	{ID: "1CH", Name: "역대상", EnglishName: "1 Chronicles", ShortName: "대상", Testament: TestamentOld, Chapters: 29, Order: 13},
	{ID: "2CH", Name: "역대하", EnglishName: "2 Chronicles", ShortName: "대하", Testament: TestamentOld, Chapters: 36, Order: 14},
	{ID: "EZR", Name: "에스라", EnglishName: "Ezra", ShortName: "스", Testament: TestamentOld, Chapters: 10, Order: 15},
	{ID: "NEH", Name: "느헤미야", EnglishName: "Nehemiah", ShortName: "느", Testament: TestamentOld, Chapters: 13, Order: 16},
	{ID: "EST", Name: "에스더", EnglishName: "Esther", ShortName: "에", Testament: TestamentOld, Chapters: 10, Order: 17},
	{ID: "JOB", Name: "욥기", EnglishName: "Job", ShortName: "욥", Testament: TestamentOld, Chapters: 42, Order: 18},
	{ID: "PSA", Name: "시편", EnglishName: "Psalms", ShortName: "시", Testament: TestamentOld, Chapters: 150, Order: 19},
	{ID: "PRO", Name: "잠언", EnglishName: "Proverbs", ShortName: "잠", Testament: TestamentOld, Chapters: 31, Order: 20},
	{ID: "ECC", Name: "전도서", EnglishName: "Ecclesiastes", ShortName: "전", Testament: TestamentOld, Chapters: 12, Order: 21},
	{ID: "SNG", Name: "아가", EnglishName: "Song of Solomon", ShortName: "아", Testament: TestamentOld, Chapters: 8, Order: 22},
	{ID: "ISA", Name: "이사야", EnglishName: "Isaiah", ShortName: "사", Testament: TestamentOld, Chapters: 66, Order: 23},
	{ID: "JER", Name: "예레미야", EnglishName: "Jeremiah", ShortName: "렘", Testament: TestamentOld, Chapters: 52, Order: 24},
	{ID: "LAM", Name: "예레미야애가", EnglishName: "Lamentations", ShortName: "애", Testament: TestamentOld, Chapters: 5, Order: 25},
	{ID: "EZK", Name: "에스겔", EnglishName: "Ezekiel", ShortName: "겔", Testament: TestamentOld, Chapters: 48, Order: 26},
	{ID: "DAN", Name: "다니엘", EnglishName: "Daniel", ShortName: "단", Testament: TestamentOld, Chapters: 12, Order: 27},
	{ID: "HOS", Name: "호세아", EnglishName: "Hosea", ShortName: "호", Testament: TestamentOld, Chapters: 14, Order: 28},
	{ID: "JOL", Name: "요엘", EnglishName: "Joel", ShortName: "욜", Testament: TestamentOld, Chapters: 3, Order: 29},
	{ID: "AMO", Name: "아모스", EnglishName: "Amos", ShortName: "암", Testament: TestamentOld, Chapters: 9, Order: 30},
	{ID: "OBA", Name: "오바댜", EnglishName: "Obadiah", ShortName: "옵", Testament: TestamentOld, Chapters: 1, Order: 31},
	{ID: "JON", Name: "요나", EnglishName: "Jonah", ShortName: "욘", Testament: TestamentOld, Chapters: 4, Order: 32},
	{ID: "MIC", Name: "미가", EnglishName: "Micah", ShortName: "미", Testament: TestamentOld, Chapters: 7, Order: 33},
	{ID: "NAM", Name: "나훔", EnglishName: "Nahum", ShortName: "나", Testament: TestamentOld, Chapters: 3, Order: 34},
	{ID: "HAB", Name: "하박국", EnglishName: "Habakkuk", ShortName: "합", Testament: TestamentOld, Chapters: 3, Order: 35},
	{ID: "ZEP", Name: "스바냐", EnglishName: "Zephaniah", ShortName: "습", Testament: TestamentOld, Chapters: 3, Order: 36},
	{ID: "HAG", Name: "학개", EnglishName: "Haggai", ShortName: "학", Testament: TestamentOld, Chapters: 2, Order: 37},
	{ID: "ZEC", Name: "스가랴", EnglishName: "Zechariah", ShortName: "슥", Testament: TestamentOld, Chapters: 14, Order: 38},
	{ID: "MAL", Name: "말라기", EnglishName: "Malachi", ShortName: "말", Testament: TestamentOld, Chapters: 4, Order: 39},

	{ID: "MAT", Name: "마태복음", EnglishName: "Matthew", ShortName: "마", Testament: TestamentNew, Chapters: 28, Order: 40},
	{ID: "MRK", Name: "마가복음", EnglishName: "Mark", ShortName: "막", Testament: TestamentNew, Chapters: 16, Order: 41},
	{ID: "LUK", Name: "누가복음", EnglishName: "Luke", ShortName: "눅", Testament: TestamentNew, Chapters: 24, Order: 42},
	{ID: "JHN", Name: "요한복음", EnglishName: "John", ShortName: "요", Testament: TestamentNew, Chapters: 21, Order: 43},
	{ID: "ACT", Name: "사도행전", EnglishName: "Acts", ShortName: "행", Testament: TestamentNew, Chapters: 28, Order: 44},
	{ID: "ROM", Name: "로마서", EnglishName: "Romans", ShortName: "롬", Testament: TestamentNew, Chapters: 16, Order: 45},
	{ID: "1CO", Name: "고린도전서", EnglishName: "1 Corinthians", ShortName: "고전", Testament: TestamentNew, Chapters: 16, Order: 46},
	{ID: "2CO", Name: "고린도후서", EnglishName: "2 Corinthians", ShortName: "고후", Testament: TestamentNew, Chapters: 13, Order: 47},
	{ID: "GAL", Name: "갈라디아서", EnglishName: "Galatians", ShortName: "갈", Testament: TestamentNew, Chapters: 6, Order: 48},
	{ID: "EPH", Name: "에베소서", EnglishName: "Ephesians", ShortName: "엡", Testament: TestamentNew, Chapters: 6, Order: 49},
	{ID: "PHP", Name: "빌립보서", EnglishName: "Philippians", ShortName: "빌", Testament: TestamentNew, Chapters: 4, Order: 50},
	{ID: "COL", Name: "골로새서", EnglishName: "Colossians", ShortName: "골", Testament: TestamentNew, Chapters: 4, Order: 51},
	{ID: "1TH", Name: "데살로니가전서", EnglishName: "1 Thessalonians", ShortName: "살전", Testament: TestamentNew, Chapters: 5, Order: 52},
	{ID: "2TH", Name: "데살로니가후서", EnglishName: "2 Thessalonians", ShortName: "살후", Testament: TestamentNew, Chapters: 3, Order: 53},
	{ID: "1TI", Name: "디모데전서", EnglishName: "1 Timothy", ShortName: "딤전", Testament: TestamentNew, Chapters: 6, Order: 54},
	{ID: "2TI", Name: "디모데후서", EnglishName: "2 Timothy", ShortName: "딤후", Testament: TestamentNew, Chapters: 4, Order: 55},
	{ID: "TIT", Name: "디도서", EnglishName: "Titus", ShortName: "딛", Testament: TestamentNew, Chapters: 3, Order: 56},
	{ID: "PHM", Name: "빌레몬서", EnglishName: "Philemon", ShortName: "몬", Testament: TestamentNew, Chapters: 1, Order: 57},
	{ID: "HEB", Name: "히브리서", EnglishName: "Hebrews", ShortName: "히", Testament: TestamentNew, Chapters: 13, Order: 58},
	{ID: "JAS", Name: "야고보서", EnglishName: "James", ShortName: "약", Testament: TestamentNew, Chapters: 5, Order: 59},
	{ID: "1PE", Name: "베드로전서", EnglishName: "1 Peter", ShortName: "벧전", Testament: TestamentNew, Chapters: 5, Order: 60},
	{ID: "2PE", Name: "베드로후서", EnglishName: "2 Peter", ShortName: "벧후", Testament: TestamentNew, Chapters: 3, Order: 61},
	{ID: "1JN", Name: "요한일서", EnglishName: "1 John", ShortName: "요일", Testament: TestamentNew, Chapters: 5, Order: 62},
	{ID: "2JN", Name: "요한이서", EnglishName: "2 John", ShortName: "요이", Testament: TestamentNew, Chapters: 1, Order: 63},
	{ID: "3JN", Name: "요한삼서", EnglishName: "3 John", ShortName: "요삼", Testament: TestamentNew, Chapters: 1, Order: 64},
	{ID: "JUD", Name: "유다서", EnglishName: "Jude", ShortName: "유", Testament: TestamentNew, Chapters: 1, Order: 65},
	{ID: "REV", Name: "요한계시록", EnglishName: "Revelation", ShortName: "계", Testament: TestamentNew, Chapters: 22, Order: 66},
}

var booksByID = func() map[string]*Book {
	m := make(map[string]*Book, len(books))
	for i := range books {
		m[books[i].ID] = &books[i]
	}
	return m
}()

// TotalChapters is the number of chapters across all 66 books.
var TotalChapters = func() int {
	total := 0
	for _, b := range books {
		total += b.Chapters
	}
	return total
}()

// Books returns all books in canonical order.
func Books() []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}

// BookByID looks up a book by its three-character identifier.
func BookByID(id string) (Book, bool) {
	b, ok := booksByID[id]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

func OldTestamentBooks() []Book { return booksIn(TestamentOld) }

func NewTestamentBooks() []Book { return booksIn(TestamentNew) }

func booksIn(t Testament) []Book {
	var out []Book
	for _, b := range books {
		if b.Testament == t {
			out = append(out, b)
		}
	}
	return out
}

// ChapterRef addresses one chapter of one book, independent of version.
type ChapterRef struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

func (r ChapterRef) String() string {
	return fmt.Sprintf("%s:%d", r.Book, r.Chapter)
}

// AllChapters enumerates every canonical (book, chapter) pair in book order.
func AllChapters() []ChapterRef {
	refs := make([]ChapterRef, 0, TotalChapters)
	for _, b := range books {
		for ch := 1; ch <= b.Chapters; ch++ {
			refs = append(refs, ChapterRef{Book: b.ID, Chapter: ch})
		}
	}
	return refs
}

// Scope restricts a search to part of the canon.
type Scope string

const (
	ScopeAll Scope = "all"
	ScopeOld Scope = "old"
	ScopeNew Scope = "new"
)

// ParseScope accepts "", "all", "old" and "new" (case-insensitive).
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeOld:
		return ScopeOld, nil
	case ScopeNew:
		return ScopeNew, nil
	default:
		return "", fmt.Errorf("invalid scope %q: expected all, old or new", s)
	}
}

// BookIDs returns the ids covered by the scope, or nil for ScopeAll.
func (s Scope) BookIDs() []string {
	var t Testament
	switch s {
	case ScopeOld:
		t = TestamentOld
	case ScopeNew:
		t = TestamentNew
	default:
		return nil
	}
	ids := make([]string, 0, 39)
	for _, b := range books {
		if b.Testament == t {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// Includes reports whether the given book id falls inside the scope.
func (s Scope) Includes(bookID string) bool {
	if s == ScopeAll || s == "" {
		return true
	}
	b, ok := booksByID[bookID]
	if !ok {
		return false
	}
	switch s {
	case ScopeOld:
		return b.Testament == TestamentOld
	case ScopeNew:
		return b.Testament == TestamentNew
	}
	return false
}
