package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-advisor/internal/types"
)

func TestContextRelevance_NilContextIsNeutral(t *testing.T) {
	scorer := NewScorer()

	assert.Equal(t, 1.0, scorer.ContextRelevance(invoiceSkill(), invoicePain(), nil))
}

func TestContextRelevance_IndustryExactMatch(t *testing.T) {
	scorer := NewScorer()

	ctx := &types.RecommendationContext{Industry: "SaaS"}

	assert.InDelta(t, 1.2, scorer.ContextRelevance(invoiceSkill(), invoicePain(), ctx), 0.0001)
}

func TestContextRelevance_IndustryRelatedCluster(t *testing.T) {
	scorer := NewScorer()

	// saas and software share an industry cluster.
	ctx := &types.RecommendationContext{Industry: "software"}

	assert.InDelta(t, 1.1, scorer.ContextRelevance(invoiceSkill(), invoicePain(), ctx), 0.0001)
}

func TestContextRelevance_IndustryMismatch(t *testing.T) {
	scorer := NewScorer()

	ctx := &types.RecommendationContext{Industry: "agriculture"}

	assert.InDelta(t, 0.8, scorer.ContextRelevance(invoiceSkill(), invoicePain(), ctx), 0.0001)
}

func TestContextRelevance_RoleOverlap(t *testing.T) {
	scorer := NewScorer()

	skill := invoiceSkill()
	skill.Tags = []string{"finance team", "accounts payable"}

	overlap := &types.RecommendationContext{Roles: []string{"Finance Team"}}
	assert.InDelta(t, 1.15, scorer.ContextRelevance(skill, invoicePain(), overlap), 0.0001)

	noOverlap := &types.RecommendationContext{Roles: []string{"Surgeon"}}
	assert.InDelta(t, 0.85, scorer.ContextRelevance(skill, invoicePain(), noOverlap), 0.0001)
}

func TestContextRelevance_HighUrgencyFavorsLowComplexity(t *testing.T) {
	scorer := NewScorer()

	lowCost := invoiceSkill() // complexity low
	highCost := invoiceSkill()
	highCost.Complexity = types.ComplexityHigh

	ctx := &types.RecommendationContext{Urgency: types.UrgencyHigh}

	assert.InDelta(t, 1.1, scorer.ContextRelevance(lowCost, invoicePain(), ctx), 0.0001)
	assert.InDelta(t, 1.0, scorer.ContextRelevance(highCost, invoicePain(), ctx), 0.0001)
}

func TestContextRelevance_CompanySizeHeuristics(t *testing.T) {
	scorer := NewScorer()

	enterprise := invoiceSkill()
	enterprise.Description = "Enterprise-grade approval workflow with compliance audit trails."

	lightweight := invoiceSkill()
	lightweight.Description = "A simple, lightweight invoice capture flow for small teams."

	large := &types.RecommendationContext{CompanySize: types.CompanySizeLarge}
	small := &types.RecommendationContext{CompanySize: types.CompanySizeSmall}

	assert.InDelta(t, 1.2, scorer.ContextRelevance(enterprise, invoicePain(), large), 0.0001)
	assert.InDelta(t, 0.7, scorer.ContextRelevance(enterprise, invoicePain(), small), 0.0001)
	assert.InDelta(t, 1.2, scorer.ContextRelevance(lightweight, invoicePain(), small), 0.0001)
	assert.InDelta(t, 0.8, scorer.ContextRelevance(lightweight, invoicePain(), large), 0.0001)
}

func TestContextRelevance_ClampedToCeiling(t *testing.T) {
	scorer := NewScorer()

	skill := invoiceSkill()
	skill.Description = "A simple, lightweight automation for the finance team."
	skill.Tags = []string{"finance"}

	// 1.2 (industry) * 1.15 (roles) * 1.1 (urgency) * 1.2 (size) = 1.82 before the clamp.
	ctx := &types.RecommendationContext{
		Industry:    "saas",
		Roles:       []string{"finance"},
		CompanySize: types.CompanySizeSmall,
		Urgency:     types.UrgencyHigh,
	}

	assert.Equal(t, 1.5, scorer.ContextRelevance(skill, invoicePain(), ctx))
}
