// Package evolution classifies skill maturity on the fixed four-level
// progression ladder and tracks level transitions over time.
package evolution

import (
	"fmt"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Criteria defines the minimum thresholds a skill's evidence must meet
// to sit at one evolution level.
type Criteria struct {
	Level           int
	Implementations int
	Industries      int
	Roles           int
	SuccessRate     float64
}

// criteriaLadder holds the fixed per-level thresholds, ascending.
var criteriaLadder = []Criteria{
	{Level: 1, Implementations: 1, Industries: 1, Roles: 1, SuccessRate: 0.50},
	{Level: 2, Implementations: 3, Industries: 1, Roles: 2, SuccessRate: 0.70},
	{Level: 3, Implementations: 5, Industries: 2, Roles: 3, SuccessRate: 0.75},
	{Level: 4, Implementations: 10, Industries: 5, Roles: 5, SuccessRate: 0.85},
}

// Readiness weights per progress metric.
const (
	implementationsWeight = 0.3
	industriesWeight      = 0.25
	rolesWeight           = 0.25
	successRateWeight     = 0.2
)

// readinessThreshold is the readiness score at which a skill is
// considered ready to advance.
const readinessThreshold = 0.8

// strengthMargin: a metric at or above 150% of its current-level
// threshold counts as a strength.
const strengthMargin = 1.5

// Classifier evaluates evidence against the criteria ladder. All
// methods are pure; malformed evidence never fails, missing values are
// treated as zero.
type Classifier struct{}

// NewClassifier creates an evolution classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// CriteriaForLevel returns the threshold set for a level, or false when
// the level is outside the ladder.
func CriteriaForLevel(level int) (Criteria, bool) {
	if level < types.MinEvolutionLevel || level > types.MaxEvolutionLevel {
		return Criteria{}, false
	}
	return criteriaLadder[level-1], true
}

// meets reports whether evidence satisfies all four thresholds of c.
func (c Criteria) meets(evidence *types.EvolutionEvidence) bool {
	return evidence.Implementations >= c.Implementations &&
		evidence.DistinctIndustries() >= c.Industries &&
		evidence.DistinctRoles() >= c.Roles &&
		evidence.SuccessRate >= c.SuccessRate
}

// Evaluate returns the highest level whose thresholds the evidence
// meets, scanning top-down. Evidence meeting no level still classifies
// as level 1: the ladder has no level zero, so zero-implementation
// evidence lands at level 1 even though level 1's own thresholds are
// not met.
func (cl *Classifier) Evaluate(evidence *types.EvolutionEvidence) types.EvolutionLevel {
	for i := len(criteriaLadder) - 1; i >= 0; i-- {
		if criteriaLadder[i].meets(evidence) {
			level, _ := types.LevelByNumber(criteriaLadder[i].Level)
			return level
		}
	}
	level, _ := types.LevelByNumber(types.MinEvolutionLevel)
	return level
}

// Readiness computes weighted progress toward the next level, each
// metric capped at full credit. Level 4 is terminal and always reports
// 1.0.
func (cl *Classifier) Readiness(evidence *types.EvolutionEvidence, currentLevel int) float64 {
	if currentLevel >= types.MaxEvolutionLevel {
		return 1.0
	}

	next, ok := CriteriaForLevel(currentLevel + 1)
	if !ok {
		return 0.0
	}

	metrics := cl.ProgressMetrics(evidence, next)
	return metrics["implementations"]*implementationsWeight +
		metrics["industries"]*industriesWeight +
		metrics["roles"]*rolesWeight +
		metrics["success_rate"]*successRateWeight
}

// ProgressMetrics returns the per-metric progress ratios against a
// threshold set, each in [0,1].
func (cl *Classifier) ProgressMetrics(evidence *types.EvolutionEvidence, target Criteria) map[string]float64 {
	return map[string]float64{
		"implementations": progressRatio(float64(evidence.Implementations), float64(target.Implementations)),
		"industries":      progressRatio(float64(evidence.DistinctIndustries()), float64(target.Industries)),
		"roles":           progressRatio(float64(evidence.DistinctRoles()), float64(target.Roles)),
		"success_rate":    progressRatio(evidence.SuccessRate, target.SuccessRate),
	}
}

func progressRatio(value, threshold float64) float64 {
	if threshold <= 0 {
		return 1.0
	}
	ratio := value / threshold
	if ratio > 1.0 {
		return 1.0
	}
	if ratio < 0.0 {
		return 0.0
	}
	return ratio
}

// Gaps lists one message per metric the evidence leaves below the
// target level's threshold. An empty list means every threshold is met.
func (cl *Classifier) Gaps(evidence *types.EvolutionEvidence, targetLevel int) []string {
	target, ok := CriteriaForLevel(targetLevel)
	if !ok {
		return nil
	}

	gaps := make([]string, 0, 4)
	if evidence.Implementations < target.Implementations {
		gaps = append(gaps, fmt.Sprintf("needs %d implementations, has %d",
			target.Implementations, evidence.Implementations))
	}
	if distinct := evidence.DistinctIndustries(); distinct < target.Industries {
		gaps = append(gaps, fmt.Sprintf("needs %d distinct industries, has %d",
			target.Industries, distinct))
	}
	if distinct := evidence.DistinctRoles(); distinct < target.Roles {
		gaps = append(gaps, fmt.Sprintf("needs %d distinct roles, has %d",
			target.Roles, distinct))
	}
	if evidence.SuccessRate < target.SuccessRate {
		gaps = append(gaps, fmt.Sprintf("needs %.0f%% success rate, has %.0f%%",
			target.SuccessRate*100, evidence.SuccessRate*100))
	}
	return gaps
}

// Strengths flags metrics well above the current level's own thresholds
// plus categorical strengths from the evidence itself.
func (cl *Classifier) Strengths(evidence *types.EvolutionEvidence, currentLevel int) []string {
	strengths := make([]string, 0, 4)

	if current, ok := CriteriaForLevel(currentLevel); ok {
		if float64(evidence.Implementations) >= float64(current.Implementations)*strengthMargin {
			strengths = append(strengths, fmt.Sprintf("implementation count (%d) well beyond level requirement (%d)",
				evidence.Implementations, current.Implementations))
		}
		if distinct := evidence.DistinctIndustries(); float64(distinct) >= float64(current.Industries)*strengthMargin {
			strengths = append(strengths, fmt.Sprintf("industry diversity (%d) well beyond level requirement (%d)",
				distinct, current.Industries))
		}
		if distinct := evidence.DistinctRoles(); float64(distinct) >= float64(current.Roles)*strengthMargin {
			strengths = append(strengths, fmt.Sprintf("role diversity (%d) well beyond level requirement (%d)",
				distinct, current.Roles))
		}
	}

	if evidence.CrossIndustrySuccess {
		strengths = append(strengths, "demonstrated success across industry boundaries")
	}
	if evidence.SuccessRate >= 0.9 {
		strengths = append(strengths, fmt.Sprintf("exceptional success rate (%.0f%%)", evidence.SuccessRate*100))
	}
	return strengths
}

// Assess composes evaluation, readiness, strengths, and gaps into one
// report for a skill.
func (cl *Classifier) Assess(skill *types.Skill, evidence *types.EvolutionEvidence) types.EvolutionAssessment {
	current := cl.Evaluate(evidence)
	readiness := cl.Readiness(evidence, current.Level)

	var gaps []string
	progress := map[string]float64{}
	if current.Level < types.MaxEvolutionLevel {
		gaps = cl.Gaps(evidence, current.Level+1)
		if next, ok := CriteriaForLevel(current.Level + 1); ok {
			progress = cl.ProgressMetrics(evidence, next)
		}
	}

	assessment := types.EvolutionAssessment{
		CurrentLevel:      current.Level,
		ReadyForNextLevel: readiness >= readinessThreshold,
		ReadinessScore:    readiness,
		Strengths:         cl.Strengths(evidence, current.Level),
		Gaps:              gaps,
		ProgressMetrics:   progress,
	}
	if skill != nil {
		assessment.SkillID = skill.ID
	}
	return assessment
}

// levelNarratives are evidence-parameterized descriptions per level.
var levelNarratives = map[int]string{
	1: "Validated by individual use: %d implementation(s) with a %.0f%% success rate.",
	2: "Proven across a team: %d implementations spanning %d role(s).",
	3: "Validated across industries: %d implementations in %d distinct industries.",
	4: "Universally generalized: %d implementations across %d industries and %d roles.",
}

// LevelDescription renders a narrative for a level parameterized by the
// evidence, falling back to the level's static description when no
// narrative template exists.
func (cl *Classifier) LevelDescription(level int, evidence *types.EvolutionEvidence) string {
	def, ok := types.LevelByNumber(level)
	if !ok {
		return ""
	}

	template, ok := levelNarratives[level]
	if !ok || evidence == nil {
		return def.Description
	}

	switch level {
	case 1:
		return fmt.Sprintf(template, evidence.Implementations, evidence.SuccessRate*100)
	case 2:
		return fmt.Sprintf(template, evidence.Implementations, evidence.DistinctRoles())
	case 3:
		return fmt.Sprintf(template, evidence.Implementations, evidence.DistinctIndustries())
	case 4:
		return fmt.Sprintf(template, evidence.Implementations, evidence.DistinctIndustries(), evidence.DistinctRoles())
	default:
		return def.Description
	}
}
