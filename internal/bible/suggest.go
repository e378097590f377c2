package bible

import (
	"sort"

	"github.com/xrash/smetrics"
)

const (
	suggestThreshold  = 0.75
	suggestBoost      = 0.7
	suggestPrefixSize = 4
)

// Suggestion is a candidate book for input that failed to parse.
type Suggestion struct {
	Book  Book    `json:"book"`
	Alias string  `json:"alias"`
	Score float64 `json:"score"`
}

// SuggestBooks ranks books whose aliases resemble the book part of input
// by Jaro-Winkler similarity. At most limit suggestions are returned, one
// per book.
func SuggestBooks(input string, limit int) []Suggestion {
	token := bookToken(input)
	if token == "" || limit <= 0 {
		return nil
	}

	best := make(map[string]Suggestion)
	for _, e := range nameEntries {
		score := smetrics.JaroWinkler(token, e.name, suggestBoost, suggestPrefixSize)
		if score < suggestThreshold {
			continue
		}
		if cur, ok := best[e.id]; !ok || score > cur.Score {
			best[e.id] = Suggestion{Book: *booksByID[e.id], Alias: e.name, Score: score}
		}
	}

	out := make([]Suggestion, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Book.Order < out[j].Book.Order
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
