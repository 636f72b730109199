package services

import (
	"testing"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(pageType, title string, order int, visible bool) models.StaticPage {
	return models.StaticPage{
		PageType:     pageType,
		Title:        title,
		NavGroup:     models.DefaultNavGroup,
		IsActive:     true,
		ShowInNavbar: visible,
		NavOrder:     order,
	}
}

// apply merges planned changes back into the page set by page type.
func apply(pages, changed []models.StaticPage) []models.StaticPage {
	out := append([]models.StaticPage(nil), pages...)
	for _, c := range changed {
		for i := range out {
			if out[i].PageType == c.PageType {
				out[i] = c
			}
		}
	}
	return out
}

func titles(pages []models.StaticPage) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Title)
	}
	return out
}

func TestSortNav_OrderThenTitle(t *testing.T) {
	pages := []models.StaticPage{
		page("b", "B", 0, true),
		page("c", "C", 2, true),
		page("a", "A", 0, true),
		page("d", "D", 1, true),
	}

	models.SortNav(models.SurfaceNavbar, pages)

	assert.Equal(t, []string{"A", "B", "D", "C"}, titles(pages))
}

func TestSortNav_Footer(t *testing.T) {
	pages := []models.StaticPage{
		{Title: "Terms", FooterOrder: 2},
		{Title: "Privacy", FooterOrder: 0},
		{Title: "About", FooterOrder: 2, NavOrder: 9},
	}

	models.SortNav(models.SurfaceFooter, pages)

	assert.Equal(t, []string{"Privacy", "About", "Terms"}, titles(pages))
}

func TestPlanAdd_AppendsUnorderedAfterGroupMaximum(t *testing.T) {
	selected := []models.StaticPage{
		page("b", "B", 0, false),
		page("c", "C", 2, false),
		page("a", "A", 0, false),
		page("d", "D", 1, false),
	}

	changed := PlanAdd(models.SurfaceNavbar, models.DefaultNavGroup, nil, selected)
	result := apply(selected, changed)

	orders := map[string]int{}
	for _, p := range result {
		assert.True(t, p.ShowInNavbar, p.Title)
		orders[p.Title] = p.NavOrder
	}
	assert.Equal(t, map[string]int{"A": 3, "B": 4, "C": 2, "D": 1}, orders)

	models.SortNav(models.SurfaceNavbar, result)
	assert.Equal(t, []string{"D", "C", "A", "B"}, titles(result))
}

func TestPlanAdd_UsesExistingMembersMaximum(t *testing.T) {
	members := []models.StaticPage{
		page("about", "About", 5, true),
		page("terms", "Terms", 7, true),
	}
	selected := []models.StaticPage{page("privacy", "Privacy", 0, false)}

	changed := PlanAdd(models.SurfaceNavbar, models.DefaultNavGroup, members, selected)

	require.Len(t, changed, 1)
	assert.Equal(t, 8, changed[0].NavOrder)
	assert.True(t, changed[0].ShowInNavbar)
}

func TestPlanAdd_MovesPageIntoGroup(t *testing.T) {
	p := page("states", "States", 4, true)
	p.NavGroup = "Resources"

	changed := PlanAdd(models.SurfaceNavbar, "Insurance", nil, []models.StaticPage{p})

	require.Len(t, changed, 1)
	assert.Equal(t, "Insurance", changed[0].NavGroup)
	assert.Equal(t, 4, changed[0].NavOrder)
}

func TestPlanAdd_FooterIgnoresGroup(t *testing.T) {
	p := models.StaticPage{PageType: "terms", Title: "Terms", NavGroup: "Legal"}

	changed := PlanAdd(models.SurfaceFooter, "", nil, []models.StaticPage{p})

	require.Len(t, changed, 1)
	assert.True(t, changed[0].ShowInFooter)
	assert.Equal(t, 1, changed[0].FooterOrder)
	assert.Equal(t, "Legal", changed[0].NavGroup)
	assert.False(t, changed[0].ShowInNavbar)
}

func TestPlanAdd_Idempotent(t *testing.T) {
	selected := []models.StaticPage{
		page("b", "B", 0, false),
		page("a", "A", 0, false),
	}

	first := apply(selected, PlanAdd(models.SurfaceNavbar, models.DefaultNavGroup, nil, selected))
	second := PlanAdd(models.SurfaceNavbar, models.DefaultNavGroup, first, first)

	assert.Empty(t, second)
}

func TestPlanRemove_KeepsOrder(t *testing.T) {
	selected := []models.StaticPage{
		page("about", "About", 3, true),
		page("terms", "Terms", 0, false),
	}

	changed := PlanRemove(models.SurfaceNavbar, selected)

	require.Len(t, changed, 1)
	assert.Equal(t, "about", changed[0].PageType)
	assert.False(t, changed[0].ShowInNavbar)
	assert.Equal(t, 3, changed[0].NavOrder)

	assert.Empty(t, PlanRemove(models.SurfaceNavbar, apply(selected, changed)))
}

func TestPlanResequence_Dense(t *testing.T) {
	members := []models.StaticPage{
		page("b", "B", 0, true),
		page("c", "C", 10, true),
		page("a", "A", 0, true),
		page("d", "D", 4, true),
	}

	changed := PlanResequence(models.SurfaceNavbar, members)
	result := apply(members, changed)
	models.SortNav(models.SurfaceNavbar, result)

	assert.Equal(t, []string{"A", "B", "D", "C"}, titles(result))
	for i, p := range result {
		assert.Equal(t, i+1, p.NavOrder)
	}

	assert.Empty(t, PlanResequence(models.SurfaceNavbar, result))
}
