package matching

import (
	"strings"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Context relevance multipliers.
const (
	industryExactBoost     = 1.2
	industryRelatedBoost   = 1.1
	industryMismatchFactor = 0.8

	roleOverlapBoost   = 1.15
	roleMismatchFactor = 0.85

	urgencyLowCostBoost = 1.1

	sizeStrongFitBoost = 1.2
	sizeWeakMismatch   = 0.8
	sizeStrongMismatch = 0.7
	relevanceCeiling   = 1.5
)

// ContextRelevance computes the multiplicative adjustment applied on
// top of a base match score for one client context. It starts at 1.0,
// applies industry, role, urgency, and company-size factors, and is
// clamped to a ceiling of 1.5. It is not part of the base score.
func (sc *Scorer) ContextRelevance(skill *types.Skill, _ *types.PainPattern, ctx *types.RecommendationContext) float64 {
	if ctx == nil {
		return 1.0
	}

	multiplier := 1.0

	if ctx.Industry != "" {
		switch {
		case strings.EqualFold(skill.Industry, ctx.Industry):
			multiplier *= industryExactBoost
		case relatedIndustries(skill.Industry, ctx.Industry):
			multiplier *= industryRelatedBoost
		default:
			multiplier *= industryMismatchFactor
		}
	}

	if len(ctx.Roles) > 0 {
		if roleOverlap(skill, ctx.Roles) {
			multiplier *= roleOverlapBoost
		} else {
			multiplier *= roleMismatchFactor
		}
	}

	// High urgency favors skills that are cheap to adopt.
	if strings.EqualFold(ctx.Urgency, types.UrgencyHigh) && skill.Complexity == types.ComplexityLow {
		multiplier *= urgencyLowCostBoost
	}

	multiplier *= companySizeMultiplier(skill, ctx.CompanySize)

	if multiplier > relevanceCeiling {
		multiplier = relevanceCeiling
	}
	return multiplier
}

// roleOverlap reports whether any context role is mentioned in the
// skill's text surface (name, description, tags, triggers).
func roleOverlap(skill *types.Skill, roles []string) bool {
	var sb strings.Builder
	sb.WriteString(skill.Name)
	sb.WriteString(" ")
	sb.WriteString(skill.Description)
	for _, tag := range skill.Tags {
		sb.WriteString(" ")
		sb.WriteString(tag)
	}
	for _, trigger := range skill.Triggers {
		sb.WriteString(" ")
		sb.WriteString(trigger)
	}
	haystack := strings.ToLower(sb.String())

	for _, role := range roles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role != "" && strings.Contains(haystack, role) {
			return true
		}
	}
	return false
}

// companySizeMultiplier detects enterprise vs. lightweight language in
// the skill description and rewards descriptions that suit the client's
// size. Always within [0.7, 1.2].
func companySizeMultiplier(skill *types.Skill, size string) float64 {
	enterprise := containsAnyKeyword(skill.Description, enterpriseKeywords)
	simple := containsAnyKeyword(skill.Description, simpleKeywords)

	switch strings.ToLower(size) {
	case types.CompanySizeLarge:
		if enterprise {
			return sizeStrongFitBoost
		}
		if simple {
			return sizeWeakMismatch
		}
	case types.CompanySizeSmall:
		if simple {
			return sizeStrongFitBoost
		}
		if enterprise {
			return sizeStrongMismatch
		}
	}
	return 1.0
}
