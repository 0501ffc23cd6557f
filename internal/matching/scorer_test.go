package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-advisor/internal/types"
)

func invoiceSkill() *types.Skill {
	return &types.Skill{
		ID:          "skill_invoice",
		Name:        "Invoice Processing Automation",
		Description: "Automates invoice capture, approval routing, and payment scheduling to remove manual data entry.",
		Category:    "automation",
		Industry:    "saas",
		Triggers:    []string{"manual invoice processing", "payment delays"},
		Complexity:  types.ComplexityLow,
	}
}

func invoicePain() *types.PainPattern {
	return &types.PainPattern{
		ID:          "pain_001",
		Name:        "Manual invoice processing",
		Description: "The finance team spends hours on manual invoice data entry and approval chasing.",
		Category:    "efficiency",
		Impact:      "high",
	}
}

func TestMatchScore_Bounds(t *testing.T) {
	scorer := NewScorer()

	pains := []types.PainPattern{
		*invoicePain(),
		{ID: "pain_002", Name: "High churn", Description: "Customers leave after onboarding", Category: "retention"},
		{},
	}
	skills := []*types.Skill{
		invoiceSkill(),
		{ID: "s2", Name: "X", Description: "Y", Category: "z", Industry: "w"},
		{ID: "s3", PainPatterns: []string{"high churn"}},
	}

	for _, skill := range skills {
		for i := range pains {
			score := scorer.MatchScore(skill, &pains[i])
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestMatchScore_StrongMatchScoresHigh(t *testing.T) {
	scorer := NewScorer()

	score := scorer.MatchScore(invoiceSkill(), invoicePain())

	// Verbatim trigger, clustered category, and heavy keyword overlap.
	assert.Greater(t, score, 0.4)
}

func TestMatchScore_UnrelatedPairScoresLow(t *testing.T) {
	scorer := NewScorer()

	skill := invoiceSkill()
	pain := &types.PainPattern{
		ID:          "pain_churn",
		Name:        "Customer churn",
		Description: "Subscribers cancel within the first quarter",
		Category:    "retention",
	}

	score := scorer.MatchScore(skill, pain)
	assert.Less(t, score, 0.3)
}

func TestTriggerScore_VerbatimPhraseGetsFullCredit(t *testing.T) {
	painText := "the team suffers from manual invoice processing every week"

	score := triggerScore([]string{"Manual Invoice Processing"}, painText)

	assert.Equal(t, 1.0, score)
}

func TestTriggerScore_PartialWordCredit(t *testing.T) {
	// Two of the trigger's three significant words appear, at half credit.
	painText := "invoice approval is slow and processing takes days"

	score := triggerScore([]string{"manual invoice processing"}, painText)

	assert.InDelta(t, 2.0/3.0*0.5, score, 0.0001)
}

func TestTriggerScore_AveragesOverAllTriggers(t *testing.T) {
	painText := "manual invoice processing is painful"

	// One verbatim hit, one total miss.
	score := triggerScore([]string{"manual invoice processing", "customer churn"}, painText)

	assert.InDelta(t, 0.5, score, 0.0001)
}

func TestTriggerScore_NoTriggers(t *testing.T) {
	assert.Equal(t, 0.0, triggerScore(nil, "anything"))
}

func TestCategoryScore_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		skill    string
		pain     string
		expected float64
	}{
		{"exact match", "automation", "automation", 1.0},
		{"related cluster", "automation", "efficiency", 0.7},
		{"substring containment", "data analytics", "data", 0.5},
		{"mismatch keeps floor", "automation", "retention", 0.2},
		{"empty pain category keeps floor", "automation", "", 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, categoryScore(tc.skill, tc.pain))
		})
	}
}

func TestDeclaredPainScore_Tiers(t *testing.T) {
	pain := &types.PainPattern{Name: "Manual invoice processing"}

	exact := declaredPainScore([]string{"manual invoice processing"}, pain)
	assert.Equal(t, 1.0, exact)

	contained := declaredPainScore([]string{"invoice processing"}, pain)
	assert.Equal(t, 0.7, contained)

	overlap := declaredPainScore([]string{"manual reporting work"}, pain)
	assert.Greater(t, overlap, 0.0)
	assert.Less(t, overlap, 0.7)
}

func TestDeclaredPainScore_TakesBestDeclaredString(t *testing.T) {
	pain := &types.PainPattern{Name: "Manual invoice processing"}

	score := declaredPainScore([]string{"customer churn", "manual invoice processing"}, pain)

	assert.Equal(t, 1.0, score)
}

func TestMatchScore_DeclaredPainWeightOnlyWhenDeclared(t *testing.T) {
	scorer := NewScorer()
	pain := invoicePain()

	without := invoiceSkill()
	with := invoiceSkill()
	with.PainPatterns = []string{"manual invoice processing"}

	// The declared-pain component is a perfect 1.0 here, so including it
	// must raise the normalized score.
	assert.Greater(t, scorer.MatchScore(with, pain), scorer.MatchScore(without, pain))
}

func TestJaccard_TokenSets(t *testing.T) {
	a := tokenSet("invoice processing automation")
	b := tokenSet("manual invoice processing")

	// intersection {invoice, processing} = 2, union 4
	assert.InDelta(t, 0.5, jaccard(a, b), 0.0001)

	assert.Equal(t, 0.0, jaccard(tokenSet(""), tokenSet("")))
}

func TestTokenize_FiltersStopWordsAndShortTokens(t *testing.T) {
	tokens := tokenize("The team and AI should fix invoice-processing")

	assert.ElementsMatch(t, []string{"team", "fix", "invoice", "processing"}, tokens)
}
