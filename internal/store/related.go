package store

import (
	"sort"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Similarity weights for related-skill scoring.
const (
	sameIndustryScore = 3
	sameCategoryScore = 2
	levelScoreBase    = 3
)

// RelatedSkill pairs a catalog skill with its similarity score against
// the query skill.
type RelatedSkill struct {
	Skill types.Skill `json:"skill"`
	Score int         `json:"score"`
}

// Related scores every other catalog skill against the skill with the
// given id and returns the top matches, best first.
//
// Score = 3 for a shared industry, + 2 for a shared category,
// + (3 - |level difference|) when both records carry a level,
// + the tag intersection size. Non-positive scores are dropped, ties
// break by ascending id so results are reproducible, and the query
// skill itself never appears. At most limit results are returned.
func (s *Store) Related(id string, limit int) []RelatedSkill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil
	}
	query := s.skills[idx]

	queryTags := make(map[string]bool, len(query.Tags))
	for _, tag := range query.Tags {
		queryTags[tag] = true
	}

	related := make([]RelatedSkill, 0)
	for _, candidate := range s.skills {
		if candidate.ID == query.ID {
			continue
		}
		score := similarityScore(&query, &candidate, queryTags)
		if score <= 0 {
			continue
		}
		related = append(related, RelatedSkill{Skill: candidate, Score: score})
	}

	sort.Slice(related, func(i, j int) bool {
		if related[i].Score != related[j].Score {
			return related[i].Score > related[j].Score
		}
		return related[i].Skill.ID < related[j].Skill.ID
	})

	if limit >= 0 && len(related) > limit {
		related = related[:limit]
	}
	return related
}

func similarityScore(query, candidate *types.Skill, queryTags map[string]bool) int {
	score := 0
	if candidate.Industry == query.Industry {
		score += sameIndustryScore
	}
	if candidate.Category == query.Category {
		score += sameCategoryScore
	}

	// Level proximity counts only when both records carry a level.
	if query.HasEvolutionLevel() && candidate.HasEvolutionLevel() {
		diff := query.EvolutionLevel - candidate.EvolutionLevel
		if diff < 0 {
			diff = -diff
		}
		score += levelScoreBase - diff
	}

	for _, tag := range candidate.Tags {
		if queryTags[tag] {
			score++
		}
	}
	return score
}
