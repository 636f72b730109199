package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const DefaultNavGroup = "Company"

// NavSurface is a menu that static pages can be placed on.
type NavSurface string

const (
	SurfaceNavbar NavSurface = "navbar"
	SurfaceFooter NavSurface = "footer"
)

func (s NavSurface) Valid() bool {
	return s == SurfaceNavbar || s == SurfaceFooter
}

type StaticPage struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PageType        string    `db:"page_type" json:"page_type"`
	Title           string    `db:"title" json:"title"`
	Content         string    `db:"content" json:"content"`
	MenuLabel       string    `db:"menu_label" json:"menu_label"`
	NavGroup        string    `db:"nav_group" json:"nav_group"`
	MetaTitle       string    `db:"meta_title" json:"meta_title"`
	MetaDescription string    `db:"meta_description" json:"meta_description"`
	MetaKeywords    string    `db:"meta_keywords" json:"meta_keywords"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	ShowInNavbar    bool      `db:"show_in_navbar" json:"show_in_navbar"`
	NavOrder        int       `db:"nav_order" json:"nav_order"`
	ShowInFooter    bool      `db:"show_in_footer" json:"show_in_footer"`
	FooterOrder     int       `db:"footer_order" json:"footer_order"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Order returns the sort key of the page on the given surface.
func (p StaticPage) Order(s NavSurface) int {
	if s == SurfaceFooter {
		return p.FooterOrder
	}
	return p.NavOrder
}

func (p *StaticPage) SetOrder(s NavSurface, order int) {
	if s == SurfaceFooter {
		p.FooterOrder = order
		return
	}
	p.NavOrder = order
}

// Visible reports whether the surface flag is set.
func (p StaticPage) Visible(s NavSurface) bool {
	if s == SurfaceFooter {
		return p.ShowInFooter
	}
	return p.ShowInNavbar
}

func (p *StaticPage) SetVisible(s NavSurface, v bool) {
	if s == SurfaceFooter {
		p.ShowInFooter = v
		return
	}
	p.ShowInNavbar = v
}

// InGroup reports whether the page currently belongs to the surface group.
// The footer is a single group, so group is ignored there.
func (p StaticPage) InGroup(s NavSurface, group string) bool {
	if !p.Visible(s) {
		return false
	}
	if s == SurfaceFooter {
		return true
	}
	return p.NavGroup == group
}

func (p StaticPage) Label() string {
	if p.MenuLabel != "" {
		return p.MenuLabel
	}
	return p.Title
}

// NavLess orders pages by (order, title) ascending.
func NavLess(s NavSurface, a, b StaticPage) bool {
	if oa, ob := a.Order(s), b.Order(s); oa != ob {
		return oa < ob
	}
	return a.Title < b.Title
}

func SortNav(s NavSurface, pages []StaticPage) {
	sort.SliceStable(pages, func(i, j int) bool {
		return NavLess(s, pages[i], pages[j])
	})
}

// NavEntry is one resolved menu link.
type NavEntry struct {
	Title    string `json:"title"`
	Label    string `json:"label"`
	Group    string `json:"group,omitempty"`
	PageType string `json:"page_type"`
	URL      string `json:"url"`
}

var pageURLs = map[string]string{
	"about":                    "/about",
	"contact":                  "/contact",
	"privacy":                  "/privacy",
	"terms":                    "/terms",
	"california_privacy":       "/privacy-california",
	"disclosure":               "/disclosure",
	"team":                     "/team",
	"how_to_use":               "/how-to-use",
	"high_risk_auto_insurance": "/high-risk-auto-insurance",
}

// PageURL resolves the public path of a page type. Types without a dedicated
// route are served under /pages/<page_type>.
func PageURL(pageType string) string {
	if u, ok := pageURLs[pageType]; ok {
		return u
	}
	return "/pages/" + pageType
}

// NewNavEntry builds the menu entry for a page on a surface.
func NewNavEntry(s NavSurface, p StaticPage) NavEntry {
	e := NavEntry{
		Title:    p.Title,
		Label:    p.Label(),
		PageType: p.PageType,
		URL:      PageURL(p.PageType),
	}
	if s == SurfaceNavbar {
		e.Group = p.NavGroup
		if e.Group == "" {
			e.Group = DefaultNavGroup
		}
	}
	return e
}
