// Package types provides type definitions for structured data used throughout the skill-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Complexity values accepted in skill records.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// Status values accepted in skill records.
const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusDeprecated = "deprecated"
)

// Skill represents a reusable automation playbook record.
// Skills are owned by the store after load and treated as immutable
// for the lifetime of a load cycle.
type Skill struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Industry    string `json:"industry" validate:"required"`

	// Triggers are ordered phrases that indicate when this skill applies.
	Triggers []string `json:"triggers,omitempty"`

	// PainPatterns are pain descriptions the skill explicitly declares it addresses.
	PainPatterns []string `json:"pain_patterns,omitempty"`

	Tags       []string `json:"tags,omitempty"`
	Complexity string   `json:"complexity,omitempty" validate:"omitempty,oneof=low medium high"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive deprecated"`

	// EvolutionLevel is an advisory cache of the last assessed maturity
	// level (1-4). Zero means never assessed. Not authoritative; the
	// classifier output wins.
	EvolutionLevel int `json:"evolution_level,omitempty" validate:"omitempty,min=1,max=4"`

	Prerequisites  []string        `json:"prerequisites,omitempty"`
	Implementation *Implementation `json:"implementation,omitempty"`
	Benefits       []string        `json:"benefits,omitempty"`
	Metrics        []string        `json:"metrics,omitempty"`

	CreatedDate string `json:"created_date,omitempty"`
	UpdatedDate string `json:"updated_date,omitempty"`
}

// Implementation describes the estimated effort and integration surface of a skill.
type Implementation struct {
	EstimatedHours    float64  `json:"estimated_hours,omitempty"`
	Technologies      []string `json:"technologies,omitempty"`
	IntegrationPoints []string `json:"integration_points,omitempty"`
}

// HasEvolutionLevel reports whether the record carries an advisory level.
func (s *Skill) HasEvolutionLevel() bool {
	return s.EvolutionLevel >= 1 && s.EvolutionLevel <= 4
}

// SkillIndex is the index document naming every record file in a skill set.
type SkillIndex struct {
	Skills []SkillIndexEntry `json:"skills" validate:"required,dive"`
}

// SkillIndexEntry points at a single skill record file.
type SkillIndexEntry struct {
	ID   string `json:"id" validate:"required"`
	File string `json:"file" validate:"required"`
}
