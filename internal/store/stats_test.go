package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-advisor/internal/types"
)

func TestStatistics_GroupsByEveryFacet(t *testing.T) {
	s := seedStore(t,
		types.Skill{ID: "s1", Category: "automation", Industry: "saas", Complexity: "low", Status: "active", EvolutionLevel: 2},
		types.Skill{ID: "s2", Category: "automation", Industry: "saas", Complexity: "medium", Status: "active", EvolutionLevel: 3},
		types.Skill{ID: "s3", Category: "reporting", Industry: "healthcare", Status: "inactive", EvolutionLevel: 2},
	)

	stats := s.Statistics()

	assert.Equal(t, 3, stats.TotalSkills)
	assert.Equal(t, map[string]int{"saas": 2, "healthcare": 1}, stats.ByIndustry)
	assert.Equal(t, map[string]int{"automation": 2, "reporting": 1}, stats.ByCategory)
	assert.Equal(t, map[int]int{2: 2, 3: 1}, stats.ByEvolutionLevel)
	assert.Equal(t, map[string]int{"low": 1, "medium": 1}, stats.ByComplexity)
	assert.Equal(t, map[string]int{"active": 2, "inactive": 1}, stats.ByStatus)
}

func TestStatistics_EmptyStore(t *testing.T) {
	s := New("")

	stats := s.Statistics()

	assert.Equal(t, 0, stats.TotalSkills)
	assert.Empty(t, stats.ByIndustry)
}

func TestAvailableFilters_DistinctSortedValues(t *testing.T) {
	s := seedStore(t,
		types.Skill{ID: "s1", Category: "reporting", Industry: "saas", Complexity: "low", Status: "active", EvolutionLevel: 3, Tags: []string{"billing", "alpha"}},
		types.Skill{ID: "s2", Category: "automation", Industry: "healthcare", Complexity: "low", Status: "active", EvolutionLevel: 1, Tags: []string{"billing"}},
	)

	facets := s.AvailableFilters()

	assert.Equal(t, []string{"healthcare", "saas"}, facets.Industries)
	assert.Equal(t, []string{"automation", "reporting"}, facets.Categories)
	assert.Equal(t, []int{1, 3}, facets.EvolutionLevels)
	assert.Equal(t, []string{"low"}, facets.Complexities)
	assert.Equal(t, []string{"active"}, facets.Statuses)
	assert.Equal(t, []string{"alpha", "billing"}, facets.Tags)
}
