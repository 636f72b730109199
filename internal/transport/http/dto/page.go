package dto

import "github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

type StaticPageResponse struct {
	models.StaticPage
	URL string `json:"url"`
}

func NewStaticPageResponse(p models.StaticPage) StaticPageResponse {
	return StaticPageResponse{StaticPage: p, URL: models.PageURL(p.PageType)}
}

type NavAction string

const (
	NavAdd        NavAction = "add"
	NavRemove     NavAction = "remove"
	NavResequence NavAction = "resequence"
)

// NavActionRequest is a bulk menu operation. Group is ignored for the footer
// and defaults to the standard navbar group.
type NavActionRequest struct {
	Action    NavAction         `json:"action" validate:"required,oneof=add remove resequence"`
	Surface   models.NavSurface `json:"surface" validate:"required,oneof=navbar footer"`
	Group     string            `json:"group,omitempty" validate:"max=100"`
	PageTypes []string          `json:"page_types" validate:"required_unless=Action resequence,dive,required"`
}

type NavActionResponse struct {
	Updated int `json:"updated"`
}

type CreatePageRequest struct {
	PageType        string `json:"page_type" validate:"required,max=100"`
	Title           string `json:"title" validate:"required,max=200"`
	Content         string `json:"content"`
	MenuLabel       string `json:"menu_label,omitempty" validate:"max=100"`
	NavGroup        string `json:"nav_group,omitempty" validate:"max=100"`
	MetaTitle       string `json:"meta_title,omitempty" validate:"max=200"`
	MetaDescription string `json:"meta_description,omitempty" validate:"max=300"`
	MetaKeywords    string `json:"meta_keywords,omitempty" validate:"max=300"`
	ShowInNavbar    bool   `json:"show_in_navbar"`
	NavOrder        int    `json:"nav_order" validate:"min=0"`
	ShowInFooter    bool   `json:"show_in_footer"`
	FooterOrder     int    `json:"footer_order" validate:"min=0"`
}
