package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-advisor/internal/types"
)

func filterFixture(t *testing.T) *Store {
	t.Helper()
	return seedStore(t,
		types.Skill{ID: "s1", Name: "Invoice Automation", Description: "Removes manual entry", Category: "automation", Industry: "saas", Tags: []string{"billing"}, Complexity: "low", Status: "active", EvolutionLevel: 2},
		types.Skill{ID: "s2", Name: "Onboarding Playbook", Description: "Checklist driven onboarding", Category: "onboarding", Industry: "saas", Tags: []string{"hr"}, Complexity: "medium", Status: "active", EvolutionLevel: 3},
		types.Skill{ID: "s3", Name: "Reporting Digest", Description: "Weekly metrics roundup", Category: "reporting", Industry: "healthcare", Tags: []string{"finance"}, Complexity: "high", Status: "inactive", EvolutionLevel: 1},
		types.Skill{ID: "s4", Name: "Churn Alerts", Description: "Flags at-risk accounts", Category: "retention", Industry: "saas", Status: "active", EvolutionLevel: 4},
	)
}

func TestFilter_Equals(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "industry", Operator: OpEquals, Value: "saas"},
	}})

	assert.Equal(t, 3, result.Total)
	assert.ElementsMatch(t, []string{"s1", "s2", "s4"}, idsOf(result.Items))
}

func TestFilter_NotEquals(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "status", Operator: OpNotEquals, Value: "active"},
	}})

	assert.ElementsMatch(t, []string{"s3"}, idsOf(result.Items))
}

func TestFilter_StringOperators(t *testing.T) {
	s := filterFixture(t)

	contains := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "name", Operator: OpContains, Value: "playbook"},
	}})
	assert.ElementsMatch(t, []string{"s2"}, idsOf(contains.Items))

	startsWith := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "name", Operator: OpStartsWith, Value: "invoice"},
	}})
	assert.ElementsMatch(t, []string{"s1"}, idsOf(startsWith.Items))

	endsWith := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "name", Operator: OpEndsWith, Value: "digest"},
	}})
	assert.ElementsMatch(t, []string{"s3"}, idsOf(endsWith.Items))
}

func TestFilter_NumericComparisons(t *testing.T) {
	s := filterFixture(t)

	gte := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "evolution_level", Operator: OpGte, Value: 3},
	}})
	assert.ElementsMatch(t, []string{"s2", "s4"}, idsOf(gte.Items))

	lt := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "evolution_level", Operator: OpLt, Value: "2"},
	}})
	assert.ElementsMatch(t, []string{"s3"}, idsOf(lt.Items))
}

func TestFilter_InAndNotIn(t *testing.T) {
	s := filterFixture(t)

	in := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "complexity", Operator: OpIn, Value: []string{"low", "high"}},
	}})
	assert.ElementsMatch(t, []string{"s1", "s3"}, idsOf(in.Items))

	notIn := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "category", Operator: OpNotIn, Value: []interface{}{"automation", "reporting"}},
	}})
	assert.ElementsMatch(t, []string{"s2", "s4"}, idsOf(notIn.Items))
}

func TestFilter_SliceFieldMembership(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "tags", Operator: OpContains, Value: "billing"},
	}})

	assert.ElementsMatch(t, []string{"s1"}, idsOf(result.Items))
}

func TestFilter_UnknownOperatorPassesEveryRecord(t *testing.T) {
	s := filterFixture(t)

	// The permissive pass-through is contract, not a bug: an operator the
	// store does not recognize must behave as always-true.
	result := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "industry", Operator: "approximately", Value: "saas"},
	}})

	assert.Equal(t, 4, result.Total)
}

func TestFilter_ConditionsCombineWithAnd(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{Conditions: []FilterCondition{
		{Field: "industry", Operator: OpEquals, Value: "saas"},
		{Field: "status", Operator: OpEquals, Value: "active"},
		{Field: "evolution_level", Operator: OpGte, Value: 3},
	}})

	assert.ElementsMatch(t, []string{"s2", "s4"}, idsOf(result.Items))
}

func TestFilter_StableSort(t *testing.T) {
	s := filterFixture(t)

	asc := s.Filter(FilterOptions{SortBy: "evolution_level", SortDir: SortAsc})
	assert.Equal(t, []string{"s3", "s1", "s2", "s4"}, idsOf(asc.Items))

	desc := s.Filter(FilterOptions{SortBy: "evolution_level", SortDir: SortDesc})
	assert.Equal(t, []string{"s4", "s2", "s1", "s3"}, idsOf(desc.Items))

	byName := s.Filter(FilterOptions{SortBy: "name", SortDir: SortAsc})
	assert.Equal(t, []string{"s4", "s1", "s2", "s3"}, idsOf(byName.Items))
}

func TestFilter_Pagination(t *testing.T) {
	s := filterFixture(t)

	page1 := s.Filter(FilterOptions{SortBy: "id", Page: 1, Limit: 3})
	assert.Equal(t, 4, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, []string{"s1", "s2", "s3"}, idsOf(page1.Items))

	page2 := s.Filter(FilterOptions{SortBy: "id", Page: 2, Limit: 3})
	assert.Equal(t, []string{"s4"}, idsOf(page2.Items))
}

func TestFilter_PageBeyondRangeYieldsEmptySlice(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{Page: 9, Limit: 3})

	require.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.TotalPages)
}

func TestFilter_NoConditionsReturnsAll(t *testing.T) {
	s := filterFixture(t)

	result := s.Filter(FilterOptions{})

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}
