package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	assert.Equal(t, "<p>Hello <b>world</b></p>", SanitizeHTML(`<p onclick="x()">Hello <b>world</b></p><script>alert(1)</script>`))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "how-to-compare-car-insurance-quotes", Slugify("How to Compare Car Insurance Quotes", 0))
	assert.Equal(t, "terms-and-conditions", Slugify("Terms & Conditions", 0))
	assert.Equal(t, "what-is", Slugify("What is a deductible?", 8))
}
