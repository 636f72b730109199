package models

import "math"

// ContentKind identifies a catalog whose items carry view and feedback counters.
type ContentKind string

const (
	KindBlogPost ContentKind = "blog"
	KindFAQ      ContentKind = "faq"
	KindReview   ContentKind = "review"
)

func (k ContentKind) Valid() bool {
	switch k {
	case KindBlogPost, KindFAQ, KindReview:
		return true
	}
	return false
}

// Label is the user-facing noun for the kind.
func (k ContentKind) Label() string {
	switch k {
	case KindBlogPost:
		return "blog post"
	case KindFAQ:
		return "FAQ"
	case KindReview:
		return "review"
	}
	return "item"
}

// Counters are the aggregate view and vote counts kept on every content item.
type Counters struct {
	Views           int64 `db:"views" json:"views"`
	HelpfulCount    int64 `db:"helpful_count" json:"helpful_count"`
	NotHelpfulCount int64 `db:"not_helpful_count" json:"not_helpful_count"`
}

// HelpfulnessPercentage is helpful votes over all votes, rounded to one decimal.
// It is 0 when nobody has voted.
func (c Counters) HelpfulnessPercentage() float64 {
	total := c.HelpfulCount + c.NotHelpfulCount
	if total <= 0 {
		return 0
	}

	return math.Round(float64(c.HelpfulCount)/float64(total)*1000) / 10
}
