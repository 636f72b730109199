package services

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips scripts, handlers and unknown markup from admin-written
// rich text while keeping ordinary formatting.
func SanitizeHTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Slugify builds a URL slug of at most maxLen characters. maxLen <= 0 means unlimited.
func Slugify(s string, maxLen int) string {
	out := slug.Make(s)
	if maxLen > 0 && len(out) > maxLen {
		out = strings.TrimRight(out[:maxLen], "-")
	}
	return out
}

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Paginate clamps page and perPage to the supported range.
func Paginate(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	return page, perPage
}
