package models

import (
	"time"

	"github.com/google/uuid"
)

type CompanyInfo struct {
	ID               uuid.UUID `db:"id" json:"id"`
	CompanyName      string    `db:"company_name" json:"company_name"`
	Tagline          string    `db:"tagline" json:"tagline"`
	Description      string    `db:"description" json:"description"`
	Address          string    `db:"address" json:"address"`
	Phone            string    `db:"phone" json:"phone"`
	Email            string    `db:"email" json:"email"`
	Website          string    `db:"website" json:"website"`
	NavbarLogo       string    `db:"navbar_logo" json:"navbar_logo,omitempty"`
	NavbarLogoAlt    string    `db:"navbar_logo_alt" json:"navbar_logo_alt"`
	FooterLogo       string    `db:"footer_logo" json:"footer_logo,omitempty"`
	FooterLogoAlt    string    `db:"footer_logo_alt" json:"footer_logo_alt"`
	Favicon          string    `db:"favicon" json:"favicon,omitempty"`
	FacebookURL      string    `db:"facebook_url" json:"facebook_url"`
	TwitterURL       string    `db:"twitter_url" json:"twitter_url"`
	LinkedinURL      string    `db:"linkedin_url" json:"linkedin_url"`
	InstagramURL     string    `db:"instagram_url" json:"instagram_url"`
	FooterDisclaimer string    `db:"footer_disclaimer" json:"footer_disclaimer"`
	BusinessHours    string    `db:"business_hours" json:"business_hours"`
	MetaTitle        string    `db:"meta_title" json:"meta_title"`
	MetaDescription  string    `db:"meta_description" json:"meta_description"`
	MetaImage        string    `db:"meta_image" json:"meta_image,omitempty"`
	MetaImageAlt     string    `db:"meta_image_alt" json:"meta_image_alt"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type TeamMember struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Position    string    `db:"position" json:"position"`
	Bio         string    `db:"bio" json:"bio"`
	Image       string    `db:"image" json:"image,omitempty"`
	Email       string    `db:"email" json:"email"`
	LinkedinURL string    `db:"linkedin_url" json:"linkedin_url"`
	TwitterURL  string    `db:"twitter_url" json:"twitter_url"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

type InquiryType string

const (
	InquiryGeneral     InquiryType = "general"
	InquirySupport     InquiryType = "support"
	InquiryPartnership InquiryType = "partnership"
	InquiryMedia       InquiryType = "media"
	InquiryFeedback    InquiryType = "feedback"
	InquiryOther       InquiryType = "other"
)

type ContactSubmission struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Email       string      `db:"email" json:"email"`
	Phone       string      `db:"phone" json:"phone"`
	InquiryType InquiryType `db:"inquiry_type" json:"inquiry_type"`
	Subject     string      `db:"subject" json:"subject"`
	Message     string      `db:"message" json:"message"`
	IsRead      bool        `db:"is_read" json:"-"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

type StateRate struct {
	State    string `json:"state"`
	Reqs     string `json:"reqs"`
	MinRate  int    `json:"minRate"`
	FullRate int    `json:"fullRate"`
}

type QuoteFAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TocItem struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

// CarInsuranceQuotesPage is a hand-curated article whose blocks are kept as
// ordered lists in a single document.
type CarInsuranceQuotesPage struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	Title              string      `db:"title" json:"title"`
	LastUpdated        *time.Time  `db:"last_updated" json:"last_updated,omitempty"`
	MetaTitle          string      `db:"meta_title" json:"meta_title"`
	MetaDescription    string      `db:"meta_description" json:"meta_description"`
	MetaKeywords       string      `db:"meta_keywords" json:"meta_keywords"`
	IntroParagraphs    []string    `db:"intro_paragraphs" json:"intro_paragraphs"`
	Takeaways          []string    `db:"takeaways" json:"takeaways"`
	StateInsuranceData []StateRate `db:"state_insurance_data" json:"state_insurance_data"`
	FAQs               []QuoteFAQ  `db:"faqs" json:"faqs"`
	BodyHTML           string      `db:"body_html" json:"body_html"`
	TocItems           []TocItem   `db:"toc_items" json:"toc_items"`
	VideoURL           string      `db:"video_url" json:"video_url"`
	AuthorName         string      `db:"author_name" json:"author_name"`
	AuthorBio          string      `db:"author_bio" json:"author_bio"`
	AuthorImage        string      `db:"author_image" json:"author_image,omitempty"`
	AuthorContext      string      `db:"author_context" json:"author_context"`
	CreatedAt          time.Time   `db:"created_at" json:"-"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updated_at"`
}

// DefaultQuotesPage is the document created when the quotes page is first requested.
func DefaultQuotesPage() CarInsuranceQuotesPage {
	return CarInsuranceQuotesPage{
		Title: "Car Insurance Quotes",
		IntroParagraphs: []string{
			"Compare personalized car insurance quotes and learn how rates are calculated.",
		},
		Takeaways: []string{
			"Quotes vary by vehicle, location, driving history, and coverage.",
		},
		StateInsuranceData: []StateRate{},
		FAQs: []QuoteFAQ{{
			ID:       "safe-online",
			Question: "Is getting a car insurance quote online safe?",
			Answer:   "Yes, most providers use secure forms and encryption.",
		}},
		TocItems: []TocItem{
			{Label: "How Quotes Are Calculated", Anchor: "#quote-calculation"},
			{Label: "Frequently Asked Questions", Anchor: "#faq"},
		},
	}
}
