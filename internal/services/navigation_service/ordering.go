package services

import (
	"sort"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
)

func byTitle(pages []models.StaticPage) []models.StaticPage {
	out := append([]models.StaticPage(nil), pages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func navChanged(s models.NavSurface, before, after models.StaticPage) bool {
	return before.Visible(s) != after.Visible(s) ||
		before.Order(s) != after.Order(s) ||
		before.NavGroup != after.NavGroup
}

// PlanAdd shows the selected pages in the group. Explicit orders are kept.
// Pages without an order are appended after the current maximum of the group
// in title order.
func PlanAdd(s models.NavSurface, group string, members, selected []models.StaticPage) []models.StaticPage {
	next := 0
	for _, p := range members {
		next = max(next, p.Order(s))
	}
	for _, p := range selected {
		next = max(next, p.Order(s))
	}

	var changed []models.StaticPage
	for _, p := range byTitle(selected) {
		updated := p
		updated.SetVisible(s, true)
		if s == models.SurfaceNavbar {
			updated.NavGroup = group
		}
		if updated.Order(s) == 0 {
			next++
			updated.SetOrder(s, next)
		}

		if navChanged(s, p, updated) {
			changed = append(changed, updated)
		}
	}

	return changed
}

// PlanRemove hides the selected pages. Their orders are left untouched.
func PlanRemove(s models.NavSurface, selected []models.StaticPage) []models.StaticPage {
	var changed []models.StaticPage
	for _, p := range selected {
		if !p.Visible(s) {
			continue
		}
		p.SetVisible(s, false)
		changed = append(changed, p)
	}

	return changed
}

// PlanResequence renumbers the group members densely from 1 in their current
// (order, title) sequence.
func PlanResequence(s models.NavSurface, members []models.StaticPage) []models.StaticPage {
	ordered := append([]models.StaticPage(nil), members...)
	models.SortNav(s, ordered)

	var changed []models.StaticPage
	for i, p := range ordered {
		if p.Order(s) == i+1 {
			continue
		}
		p.SetOrder(s, i+1)
		changed = append(changed, p)
	}

	return changed
}
