package services

import (
	"strings"
	"testing"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestParseStateRates(t *testing.T) {
	text := `
Alabama, 25/50/25, 61, 186.5
  Alaska , 50/100/25 , 48 , 144

bad line
Arizona, 25/50/15, cheap, 170
Arkansas, 25/50/25, 52, 169, extra
`
	got := ParseStateRates(text)

	assert.Equal(t, []models.StateRate{
		{State: "Alabama", Reqs: "25/50/25", MinRate: 61, FullRate: 186},
		{State: "Alaska", Reqs: "50/100/25", MinRate: 48, FullRate: 144},
		{State: "Arkansas", Reqs: "25/50/25", MinRate: 52, FullRate: 169},
	}, got)
}

func TestParseStateRates_Empty(t *testing.T) {
	got := ParseStateRates("\n \n")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseQuoteFAQs(t *testing.T) {
	text := `How much is car insurance? | It depends on your state.
no separator here
 | answer without a question
Is getting a car insurance quote online safe and also really really quick to do? | Yes.`

	got := ParseQuoteFAQs(text)

	assert.Len(t, got, 3)
	assert.Equal(t, models.QuoteFAQ{
		ID:       "how-much-is-car-insurance",
		Question: "How much is car insurance?",
		Answer:   "It depends on your state.",
	}, got[0])
	assert.Equal(t, "faq", got[1].ID)
	assert.LessOrEqual(t, len(got[2].ID), 50)
	assert.False(t, strings.HasSuffix(got[2].ID, "-"))
}
