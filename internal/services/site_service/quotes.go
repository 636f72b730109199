package services

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
)

const quoteFAQIDMaxLen = 50

func lines(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitTrim(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseRate(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ParseStateRates reads "state, reqs, minRate, fullRate" lines. Lines with
// fewer fields or non-numeric rates are skipped; extra fields are ignored.
func ParseStateRates(text string) []models.StateRate {
	rates := []models.StateRate{}
	for _, line := range lines(text) {
		parts := splitTrim(line, ",")
		if len(parts) < 4 {
			continue
		}

		minRate, ok := parseRate(parts[2])
		if !ok {
			continue
		}
		fullRate, ok := parseRate(parts[3])
		if !ok {
			continue
		}

		rates = append(rates, models.StateRate{
			State:    parts[0],
			Reqs:     parts[1],
			MinRate:  minRate,
			FullRate: fullRate,
		})
	}
	return rates
}

// ParseQuoteFAQs reads "question | answer" lines. The anchor id is derived
// from the question.
func ParseQuoteFAQs(text string) []models.QuoteFAQ {
	faqs := []models.QuoteFAQ{}
	for _, line := range lines(text) {
		parts := splitTrim(line, "|")
		if len(parts) < 2 {
			continue
		}

		id := services.Slugify(parts[0], quoteFAQIDMaxLen)
		if id == "" {
			id = "faq"
		}

		faqs = append(faqs, models.QuoteFAQ{ID: id, Question: parts[0], Answer: parts[1]})
	}
	return faqs
}
