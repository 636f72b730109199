package services

import "github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

type categorySeed struct {
	Name   string
	Type   models.CategoryType
	Parent string
}

var categorySeeds = []categorySeed{
	{Name: "Auto Insurance", Type: models.CategoryMain},
	{Name: "Guides", Type: models.CategorySub, Parent: "Auto Insurance"},
}

type postSeed struct {
	Title    string
	Category string
	Summary  string
	Content  string
}

var postSeeds = []postSeed{
	{
		Title:    "How to Compare Car Insurance Quotes",
		Category: "Guides",
		Summary:  "Simple steps to compare car insurance quotes effectively.",
		Content:  "<p>This is a starter blog post explaining how to compare car insurance quotes and save money.</p>",
	},
}

var faqCategorySeed = models.FAQCategory{
	Name:        "Car Insurance Basics",
	Description: "Common questions about car insurance",
	Order:       1,
	IsActive:    true,
}

var faqSeeds = []models.FAQ{
	{
		Question:    "What is a deductible in car insurance?",
		ShortAnswer: "It's the amount you pay out of pocket before coverage kicks in.",
		Answer:      "<p>A deductible is the amount you're responsible for paying before your insurer covers a claim. Higher deductibles can lower your premium.</p>",
		Priority:    models.PriorityMedium,
		Tags:        "deductible, premium",
	},
	{
		Question:    "Does my credit score affect car insurance rates?",
		ShortAnswer: "In many states, yes, it can influence rates.",
		Answer:      "<p>Insurers may consider credit-based insurance scores when setting premiums, depending on your state regulations.</p>",
		Priority:    models.PriorityHigh,
		Tags:        "credit score, rates",
	},
}

var companySeeds = []models.InsuranceCompany{
	{
		Name:                  "Panda Insurance",
		Description:           "Affordable auto insurance with solid customer support.",
		Website:               "https://example.com/panda",
		IsHighRiskRecommended: true,
		HighRiskBlurb:         "Good option for high-risk drivers seeking lower rates.",
	},
	{
		Name:        "Zen Auto",
		Description: "Simple policies with transparent pricing.",
		Website:     "https://example.com/zen",
	},
}

type reviewSeed struct {
	Company string
	models.CompanyReview
}

var reviewRating = 4

var reviewSeeds = []reviewSeed{
	{
		Company: "Panda Insurance",
		CompanyReview: models.CompanyReview{
			Title:      "Panda Insurance 2025 Review",
			Summary:    "Quick overview of Panda Insurance rates and service.",
			Content:    "Panda Insurance offers competitive rates for high-risk drivers with responsive support.",
			Rating:     &reviewRating,
			AuthorName: "Team",
		},
	},
}

// footerPageSeeds are the company pages shown in the footer.
var footerPageSeeds = []models.StaticPage{
	{
		PageType: "about", Title: "About Us", MenuLabel: "About",
		Content:      "<p>We help drivers compare car insurance quotes and save money.</p>",
		ShowInNavbar: true, NavOrder: 1, ShowInFooter: true, FooterOrder: 1,
	},
	{
		PageType: "privacy", Title: "Privacy Policy", MenuLabel: "Privacy",
		Content:      "<p>Your privacy matters. This is a starter policy page.</p>",
		ShowInFooter: true, FooterOrder: 2,
	},
	{
		PageType: "terms", Title: "Terms & Conditions", MenuLabel: "Terms",
		Content:      "<p>Basic terms and conditions for using the site.</p>",
		ShowInFooter: true, FooterOrder: 3,
	},
	{
		PageType: "contact", Title: "Contact Us", MenuLabel: "Contact",
		Content:      "<p>Contact our team for support or partnerships.</p>",
		ShowInNavbar: true, NavOrder: 2, ShowInFooter: true, FooterOrder: 4,
	},
}

const guideGroup = "Insurance Guide"

type navSeed struct {
	PageType, Title, MenuLabel, Group string
	Order                             int
}

var navPageSeeds = []navSeed{
	{"insurance-guide", "Insurance Guide", "Insurance Guide", models.DefaultNavGroup, 1},
	{"car-insurance-quotes", "Car Insurance Quotes", "Quotes", guideGroup, 2},
	{"car-insurance-comparison", "Compare Car Insurance", "Comparison", guideGroup, 3},
	{"car-insurance-calculator", "Car Insurance Calculator", "Calculator", guideGroup, 4},
	{"car-insurance-companies", "Car Insurance Companies", "Companies", guideGroup, 5},
	{"insurance-company-reviews", "Insurance Company Reviews", "Reviews", guideGroup, 6},
	{"auto-insurance-types", "Auto Insurance Types", "Insurance Types", guideGroup, 7},
	{"states", "Car Insurance by State", "By State", guideGroup, 8},
	{"faqs", "FAQs", "FAQs", models.DefaultNavGroup, 20},
	{"blog", "Blog", "Blog", models.DefaultNavGroup, 21},
	{"contact", "Contact", "Contact", models.DefaultNavGroup, 22},
	{"about", "About", "About", models.DefaultNavGroup, 23},
}

func (s navSeed) page() models.StaticPage {
	return models.StaticPage{
		PageType:        s.PageType,
		Title:           s.Title,
		MenuLabel:       s.MenuLabel,
		NavGroup:        s.Group,
		ShowInNavbar:    true,
		NavOrder:        s.Order,
		MetaTitle:       s.Title,
		MetaDescription: s.Title + " information and resources.",
	}
}

var highRiskPageSeed = models.StaticPage{
	PageType:        "high_risk_auto_insurance",
	Title:           "High-Risk Auto Insurance",
	MetaDescription: "Affordable coverage options for high-risk drivers, including tips and insurer recommendations.",
	Content: "<h2>What Makes a Driver “High-Risk”?</h2>" +
		"<p>Auto insurers may consider you high-risk due to accidents, tickets, DUIs, or limited driving history.</p>" +
		"<ul><li>Multiple violations or claims</li><li>Very young or elderly drivers</li><li>Driving in high-risk areas</li></ul>" +
		"<h2>How Much Does High-Risk Insurance Cost?</h2>" +
		"<p>Costs vary by driver and location. Compare quotes regularly to find savings.</p>" +
		"<p><em>Tip:</em> Take defensive driving, keep a clean record, and bundle policies.</p>",
}

func defaultCompanyInfo(siteName string) models.CompanyInfo {
	return models.CompanyInfo{
		CompanyName:      siteName,
		Tagline:          "Compare car insurance quotes and save",
		Description:      siteName + " helps drivers compare car insurance quotes from top providers.",
		FooterDisclaimer: "The information on this site is for general guidance only and is not insurance advice.",
		MetaTitle:        siteName,
		IsActive:         true,
	}
}
