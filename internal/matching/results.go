package matching

import (
	"fmt"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Match-type boundaries on the context-adjusted score.
const (
	exactMatchThreshold   = 0.8
	partialMatchThreshold = 0.5
)

// Significance thresholds above which a sub-score contributes an
// evidence string to the detailed results.
const (
	triggerEvidenceThreshold  = 0.5
	categoryEvidenceThreshold = 0.7
	keywordEvidenceThreshold  = 0.3
	declaredEvidenceThreshold = 0.5
)

// Match returns the subset of pain patterns whose context-adjusted
// score meets the standard match threshold, in input order.
func (sc *Scorer) Match(skill *types.Skill, pains []types.PainPattern, ctx *types.RecommendationContext) []types.PainMatch {
	return sc.MatchWithThreshold(skill, pains, ctx, MatchThreshold)
}

// MatchWithThreshold is Match with a caller-supplied cutoff, for
// configurations that tighten or loosen the standard threshold.
func (sc *Scorer) MatchWithThreshold(skill *types.Skill, pains []types.PainPattern, ctx *types.RecommendationContext, threshold float64) []types.PainMatch {
	matches := make([]types.PainMatch, 0)
	for i := range pains {
		pain := pains[i]
		score := sc.MatchScore(skill, &pain)
		relevance := sc.ContextRelevance(skill, &pain, ctx)
		adjusted := score * relevance
		if adjusted < threshold {
			continue
		}
		matches = append(matches, types.PainMatch{
			Pain:             pain,
			MatchScore:       score,
			ContextRelevance: relevance,
			AdjustedScore:    adjusted,
		})
	}
	return matches
}

// DetailedResults produces one debug record per (skill, pain) pair,
// classifying the adjusted score and listing evidence for every
// sub-score that cleared its significance threshold.
func (sc *Scorer) DetailedResults(skill *types.Skill, pains []types.PainPattern, ctx *types.RecommendationContext) []types.DetailedMatchResult {
	results := make([]types.DetailedMatchResult, 0, len(pains))
	for i := range pains {
		pain := pains[i]
		b := sc.breakdown(skill, &pain)
		relevance := sc.ContextRelevance(skill, &pain, ctx)
		adjusted := b.Total * relevance

		results = append(results, types.DetailedMatchResult{
			SkillID:          skill.ID,
			Pain:             pain,
			MatchScore:       b.Total,
			ContextRelevance: relevance,
			AdjustedScore:    adjusted,
			MatchType:        classifyMatch(adjusted),
			Evidence:         buildEvidence(b),
		})
	}
	return results
}

func classifyMatch(adjusted float64) string {
	switch {
	case adjusted >= exactMatchThreshold:
		return types.MatchTypeExact
	case adjusted >= partialMatchThreshold:
		return types.MatchTypePartial
	default:
		return types.MatchTypeRelated
	}
}

func buildEvidence(b scoreBreakdown) []string {
	evidence := make([]string, 0, 4)
	if b.Trigger > triggerEvidenceThreshold {
		evidence = append(evidence, fmt.Sprintf("trigger phrases present in pain description (%.2f)", b.Trigger))
	}
	if b.Category >= categoryEvidenceThreshold {
		evidence = append(evidence, fmt.Sprintf("category aligned with pain domain (%.2f)", b.Category))
	}
	if b.Keyword > keywordEvidenceThreshold {
		evidence = append(evidence, fmt.Sprintf("shared vocabulary between skill and pain (%.2f)", b.Keyword))
	}
	if b.DeclaredApplied && b.DeclaredPain > declaredEvidenceThreshold {
		evidence = append(evidence, fmt.Sprintf("skill declares this pain explicitly (%.2f)", b.DeclaredPain))
	}
	return evidence
}
