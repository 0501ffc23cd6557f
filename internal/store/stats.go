package store

import "sort"

// Statistics holds catalog counts grouped by each taxonomy facet.
type Statistics struct {
	TotalSkills      int            `json:"total_skills"`
	ByIndustry       map[string]int `json:"by_industry"`
	ByCategory       map[string]int `json:"by_category"`
	ByEvolutionLevel map[int]int    `json:"by_evolution_level"`
	ByComplexity     map[string]int `json:"by_complexity"`
	ByStatus         map[string]int `json:"by_status"`
}

// FilterFacets lists the distinct values present for each filterable
// facet, sorted so output is reproducible.
type FilterFacets struct {
	Industries      []string `json:"industries"`
	Categories      []string `json:"categories"`
	EvolutionLevels []int    `json:"evolution_levels"`
	Complexities    []string `json:"complexities"`
	Statuses        []string `json:"statuses"`
	Tags            []string `json:"tags"`
}

// Statistics computes grouped counts over the loaded catalog.
func (s *Store) Statistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Statistics{
		TotalSkills:      len(s.skills),
		ByIndustry:       make(map[string]int),
		ByCategory:       make(map[string]int),
		ByEvolutionLevel: make(map[int]int),
		ByComplexity:     make(map[string]int),
		ByStatus:         make(map[string]int),
	}
	for _, skill := range s.skills {
		stats.ByIndustry[skill.Industry]++
		stats.ByCategory[skill.Category]++
		if skill.HasEvolutionLevel() {
			stats.ByEvolutionLevel[skill.EvolutionLevel]++
		}
		if skill.Complexity != "" {
			stats.ByComplexity[skill.Complexity]++
		}
		if skill.Status != "" {
			stats.ByStatus[skill.Status]++
		}
	}
	return stats
}

// AvailableFilters returns the distinct sorted value sets per facet.
func (s *Store) AvailableFilters() FilterFacets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	industries := make(map[string]bool)
	categories := make(map[string]bool)
	levels := make(map[int]bool)
	complexities := make(map[string]bool)
	statuses := make(map[string]bool)
	tags := make(map[string]bool)

	for _, skill := range s.skills {
		industries[skill.Industry] = true
		categories[skill.Category] = true
		if skill.HasEvolutionLevel() {
			levels[skill.EvolutionLevel] = true
		}
		if skill.Complexity != "" {
			complexities[skill.Complexity] = true
		}
		if skill.Status != "" {
			statuses[skill.Status] = true
		}
		for _, tag := range skill.Tags {
			tags[tag] = true
		}
	}

	facets := FilterFacets{
		Industries:   sortedKeys(industries),
		Categories:   sortedKeys(categories),
		Complexities: sortedKeys(complexities),
		Statuses:     sortedKeys(statuses),
		Tags:         sortedKeys(tags),
	}
	facets.EvolutionLevels = make([]int, 0, len(levels))
	for level := range levels {
		facets.EvolutionLevels = append(facets.EvolutionLevels, level)
	}
	sort.Ints(facets.EvolutionLevels)
	return facets
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
