// Package matching computes how well a skill addresses an observed pain
// pattern, combining trigger, category, keyword, and declared-pain
// signals into one bounded relevance score with a separate context
// relevance multiplier.
package matching

import (
	"strings"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Weights for the match score components.
const (
	triggerWeight      = 0.4
	categoryWeight     = 0.2
	keywordWeight      = 0.3
	declaredPainWeight = 0.1
)

// Category sub-score tiers.
const (
	categoryExactScore     = 1.0
	categoryClusterScore   = 0.7
	categoryContainsScore  = 0.5
	categoryMismatchFloor  = 0.2
	partialTriggerDiscount = 0.5
)

// Declared-pain sub-score tiers.
const (
	declaredExactScore    = 1.0
	declaredContainsScore = 0.7
)

// MatchThreshold is the minimum context-adjusted score for a pain
// pattern to count as addressed by a skill.
const MatchThreshold = 0.5

// Scorer computes match scores and context relevance. It is stateless
// and safe for concurrent use.
type Scorer struct{}

// NewScorer creates a match scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// scoreBreakdown carries the per-component sub-scores behind one final
// match score, for evidence reporting.
type scoreBreakdown struct {
	Trigger         float64
	Category        float64
	Keyword         float64
	DeclaredPain    float64
	DeclaredApplied bool
	Total           float64
}

// MatchScore computes the bounded [0,1] relevance of a skill to a pain
// pattern: a weighted combination of trigger, category, keyword, and
// (when the skill declares explicit pain strings) declared-pain
// sub-scores, normalized by the weights actually applied.
func (sc *Scorer) MatchScore(skill *types.Skill, pain *types.PainPattern) float64 {
	return sc.breakdown(skill, pain).Total
}

func (sc *Scorer) breakdown(skill *types.Skill, pain *types.PainPattern) scoreBreakdown {
	painText := strings.ToLower(pain.Name + " " + pain.Description)

	b := scoreBreakdown{
		Trigger:  triggerScore(skill.Triggers, painText),
		Category: categoryScore(skill.Category, pain.Category),
		Keyword: jaccard(
			tokenSet(skill.Name+" "+skill.Description),
			tokenSet(pain.Name+" "+pain.Description),
		),
	}

	weighted := b.Trigger*triggerWeight + b.Category*categoryWeight + b.Keyword*keywordWeight
	weightSum := triggerWeight + categoryWeight + keywordWeight

	// The declared-pain component only participates when the skill
	// actually declares pain strings; its weight is excluded otherwise.
	if len(skill.PainPatterns) > 0 {
		b.DeclaredApplied = true
		b.DeclaredPain = declaredPainScore(skill.PainPatterns, pain)
		weighted += b.DeclaredPain * declaredPainWeight
		weightSum += declaredPainWeight
	}

	b.Total = clamp01(weighted / weightSum)
	return b
}

// triggerScore averages per-trigger credit: full credit when the phrase
// appears verbatim (case-insensitive) in the pain text, else half
// credit scaled by the fraction of the trigger's significant words
// found. painText must already be lowercased.
func triggerScore(triggers []string, painText string) float64 {
	if len(triggers) == 0 {
		return 0.0
	}

	total := 0.0
	for _, trigger := range triggers {
		phrase := strings.ToLower(strings.TrimSpace(trigger))
		if phrase == "" {
			continue
		}
		if strings.Contains(painText, phrase) {
			total += 1.0
			continue
		}

		words := 0
		found := 0
		for _, word := range strings.Fields(phrase) {
			if len(word) <= 2 {
				continue
			}
			words++
			if strings.Contains(painText, word) {
				found++
			}
		}
		if words > 0 {
			total += float64(found) / float64(words) * partialTriggerDiscount
		}
	}

	return clamp01(total / float64(len(triggers)))
}

// categoryScore grades taxonomy proximity. A mismatch keeps a small
// floor: a wrong category is weak negative evidence, never zero.
func categoryScore(skillCategory, painCategory string) float64 {
	a := strings.ToLower(strings.TrimSpace(skillCategory))
	b := strings.ToLower(strings.TrimSpace(painCategory))

	switch {
	case a != "" && a == b:
		return categoryExactScore
	case relatedCategories(a, b):
		return categoryClusterScore
	case a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)):
		return categoryContainsScore
	default:
		return categoryMismatchFloor
	}
}

// declaredPainScore takes the best credit across the skill's declared
// pain strings against the pain's name.
func declaredPainScore(declared []string, pain *types.PainPattern) float64 {
	painName := strings.ToLower(strings.TrimSpace(pain.Name))
	best := 0.0
	for _, d := range declared {
		name := strings.ToLower(strings.TrimSpace(d))
		if name == "" {
			continue
		}

		var score float64
		switch {
		case name == painName:
			score = declaredExactScore
		case strings.Contains(painName, name) || strings.Contains(name, painName):
			score = declaredContainsScore
		default:
			score = wordOverlapRatio(name, painName)
		}
		if score > best {
			best = score
		}
	}
	return clamp01(best)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
