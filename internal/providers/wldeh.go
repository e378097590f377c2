package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mrlokans/mybible/internal/bible"
)

const DefaultWldehBaseURL = "https://raw.githubusercontent.com/wldeh/bible-api/refs/heads/main/bibles"

// WldehClient reads static chapter files from the wldeh/bible-api repository.
// It serves the English translations.
type WldehClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewWldehClient(baseURL string, timeout time.Duration) *WldehClient {
	if baseURL == "" {
		baseURL = DefaultWldehBaseURL
	}
	return &WldehClient{
		httpClient: newHTTPClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *WldehClient) Name() bible.SourceAPI {
	return bible.SourceWldeh
}

type wldehVerse struct {
	Book    string      `json:"book"`
	Chapter verseNumber `json:"chapter"`
	Verse   verseNumber `json:"verse"`
	Text    string      `json:"text"`
}

type wldehResponse struct {
	Data []wldehVerse `json:"data"`
}

func (c *WldehClient) chapterURL(version, book string, chapter int) (string, error) {
	versionPath, err := wldehVersionPath(version)
	if err != nil {
		return "", err
	}
	bookName, err := wldehBookName(book)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/books/%s/chapters/%d.json", c.baseURL, versionPath, bookName, chapter), nil
}

// FetchChapter retrieves and normalizes a chapter. Mapping failures are
// returned before any request is made.
func (c *WldehClient) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error) {
	url, err := c.chapterURL(version, book, chapter)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: "wldeh", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Provider: "wldeh", URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var payload wldehResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Provider: "wldeh", URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload.Data == nil {
		return nil, &FetchError{Provider: "wldeh", URL: url, Err: errUnexpectedFormat}
	}

	verses := make([]bible.Verse, 0, len(payload.Data))
	for _, item := range payload.Data {
		// Text is passed through untouched; only unnumbered entries are dropped.
		if item.Verse <= 0 {
			continue
		}
		verses = append(verses, bible.Verse{
			Book:    book,
			Chapter: chapter,
			Verse:   int(item.Verse),
			Text:    item.Text,
			Version: version,
		})
	}
	verses = normalizeVerses(verses)

	if len(verses) == 0 {
		log.Printf("wldeh: %s %s %d returned no verses", version, book, chapter)
	}

	return &bible.Chapter{Book: book, Chapter: chapter, Version: version, Verses: verses}, nil
}
