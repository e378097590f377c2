// Package providers translates (version, book, chapter) requests into calls
// against the upstream Bible text services and normalizes their responses
// into bible.Chapter values.
package providers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/mrlokans/mybible/internal/bible"
)

const (
	userAgent      = "MyBible/1.0 (https://github.com/mrlokans/mybible)"
	defaultTimeout = 15 * time.Second
)

// Provider fetches one chapter from an upstream service.
type Provider interface {
	Name() bible.SourceAPI
	FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error)
}

// Registry maps source APIs to providers.
type Registry struct {
	providers map[bible.SourceAPI]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[bible.SourceAPI]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(api bible.SourceAPI) (Provider, bool) {
	p, ok := r.providers[api]
	return p, ok
}

// Alternate returns the provider other than api, if registered.
func (r *Registry) Alternate(api bible.SourceAPI) (Provider, bool) {
	return r.Get(api.Alternate())
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// normalizeVerses drops repeated verse numbers, keeping the first, and
// sorts ascending.
func normalizeVerses(verses []bible.Verse) []bible.Verse {
	seen := make(map[int]struct{}, len(verses))
	out := make([]bible.Verse, 0, len(verses))
	for _, v := range verses {
		if _, dup := seen[v.Verse]; dup {
			continue
		}
		seen[v.Verse] = struct{}{}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Verse < out[j].Verse })
	return out
}
