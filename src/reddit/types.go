package reddit

import (
	"strings"
	"time"
)

// ActivityKind distinguishes top-level posts from replies.
type ActivityKind string

const (
	KindSubmission ActivityKind = "submission"
	KindComment    ActivityKind = "comment"
)

// ActivityItem is one fragment of a user's public activity. Items are
// immutable once fetched; the synthesizer only reads them.
type ActivityItem struct {
	Kind      ActivityKind
	Title     string // submissions only
	Text      string // selftext or comment body
	Permalink string // absolute URL, used for citations in the prompt
	CreatedAt time.Time
}

// ExtractUsername accepts either a bare username or a full profile URL
// such as https://www.reddit.com/user/spez and returns the username.
func ExtractUsername(s string) string {
	s = strings.TrimSpace(strings.TrimRight(s, "/"))
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimPrefix(s, "u/")
}

// Listing envelope as returned by the Reddit API. Only the fields the
// collector reads are declared.
type listing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data thing `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type thing struct {
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

func (t thing) item(kind ActivityKind) ActivityItem {
	return ActivityItem{
		Kind:      kind,
		Title:     t.Title,
		Text:      t.text(kind),
		Permalink: "https://reddit.com" + t.Permalink,
		CreatedAt: time.Unix(int64(t.CreatedUTC), 0).UTC(),
	}
}

func (t thing) text(kind ActivityKind) string {
	if kind == KindComment {
		return t.Body
	}
	return t.Selftext
}

// empty reports whether the thing carries no usable text and should be
// skipped, matching the collector's "ensure there's some content" rule.
func (t thing) empty(kind ActivityKind) bool {
	if kind == KindComment {
		return t.Body == ""
	}
	return t.Title == "" && t.Selftext == ""
}
