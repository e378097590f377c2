package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mrlokans/mybible/internal/bible"
)

const DefaultHelloaoBaseURL = "https://bible.helloao.org/api"

// HelloaoClient reads chapters from the Free Use Bible API (bible.helloao.org).
// It serves the Korean translation.
type HelloaoClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewHelloaoClient(baseURL string, timeout time.Duration) *HelloaoClient {
	if baseURL == "" {
		baseURL = DefaultHelloaoBaseURL
	}
	return &HelloaoClient{
		httpClient: newHTTPClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *HelloaoClient) Name() bible.SourceAPI {
	return bible.SourceHelloao
}

type helloaoContentItem struct {
	Type    string            `json:"type"`
	Number  *verseNumber      `json:"number"`
	Content []json.RawMessage `json:"content"`
}

type helloaoChapter struct {
	Number  verseNumber          `json:"number"`
	Content []helloaoContentItem `json:"content"`
}

type helloaoResponse struct {
	Chapter *helloaoChapter `json:"chapter"`
}

type helloaoFormatted struct {
	Text      *string `json:"text"`
	LineBreak bool    `json:"lineBreak"`
}

func (c *HelloaoClient) chapterURL(version, book string, chapter int) (string, error) {
	translation, err := helloaoTranslation(version)
	if err != nil {
		return "", err
	}
	bookID, err := helloaoBookID(book)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s/%d.json", c.baseURL, translation, bookID, chapter), nil
}

func (c *HelloaoClient) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error) {
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
		return nil, &FetchError{Provider: "helloao", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Provider: "helloao", URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var payload helloaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Provider: "helloao", URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload.Chapter == nil || payload.Chapter.Content == nil {
		return nil, &FetchError{Provider: "helloao", URL: url, Err: errUnexpectedFormat}
	}

	verses := make([]bible.Verse, 0, len(payload.Chapter.Content))
	for _, item := range payload.Chapter.Content {
		if item.Type != "verse" || item.Number == nil || *item.Number <= 0 {
			continue
		}
		text := strings.TrimSpace(joinContent(item.Content))
		if text == "" {
			continue
		}
		verses = append(verses, bible.Verse{
			Book:    book,
			Chapter: chapter,
			Verse:   int(*item.Number),
			Text:    text,
			Version: version,
		})
	}

	return &bible.Chapter{
		Book:    book,
		Chapter: chapter,
		Version: version,
		Verses:  normalizeVerses(verses),
	}, nil
}

// joinContent flattens a verse's mixed content list. Plain strings and
// formatted text are appended, line breaks become a space, and footnote
// references or other markers are skipped.
func joinContent(parts []json.RawMessage) string {
	var b strings.Builder
	for _, raw := range parts {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			b.WriteString(s)
			continue
		}
		var f helloaoFormatted
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		switch {
		case f.Text != nil:
			b.WriteString(*f.Text)
		case f.LineBreak:
			b.WriteString(" ")
		}
	}
	return b.String()
}
