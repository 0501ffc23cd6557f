package evolution

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Quick step-rule thresholds used only when no classifier is wired.
const (
	quickLevel4Implementations = 10
	quickLevel3Implementations = 5
	quickLevel2Implementations = 3
)

// Tracker keeps an append-only per-skill history of level transitions.
// Entries are ordered by call sequence, not wall-clock time. Record is
// atomic per skill: the previous-level read and the append happen under
// one lock, so concurrent records for the same skill cannot observe a
// stale previous level.
type Tracker struct {
	classifier *Classifier

	mu      sync.Mutex
	history map[string][]types.LevelTransition
}

// NewTracker creates a tracker that derives new levels from the given
// classifier. A nil classifier falls back to the legacy quick step rule
// based on implementation count alone; the classifier's multi-metric
// ladder is the authoritative assessment and should be preferred.
func NewTracker(classifier *Classifier) *Tracker {
	return &Tracker{
		classifier: classifier,
		history:    make(map[string][]types.LevelTransition),
	}
}

// Record computes the skill's new level from the evidence and appends a
// transition entry. It never fails and appends best-effort even when
// the derived level contradicts or regresses prior assessments; level
// monotonicity is a policy for callers, not enforced here.
func (t *Tracker) Record(skillID string, evidence types.EvolutionEvidence) types.LevelTransition {
	newLevel := t.deriveLevel(&evidence)

	t.mu.Lock()
	defer t.mu.Unlock()

	previous := types.MinEvolutionLevel
	if entries := t.history[skillID]; len(entries) > 0 {
		previous = entries[len(entries)-1].NewLevel
	}

	entry := types.LevelTransition{
		ID:            uuid.NewString(),
		SkillID:       skillID,
		Evidence:      evidence,
		PreviousLevel: previous,
		NewLevel:      newLevel,
		Timestamp:     time.Now().UTC(),
	}
	t.history[skillID] = append(t.history[skillID], entry)
	return entry
}

func (t *Tracker) deriveLevel(evidence *types.EvolutionEvidence) int {
	if t.classifier != nil {
		return t.classifier.Evaluate(evidence).Level
	}

	// Legacy quick estimate from implementation count only.
	switch {
	case evidence.Implementations >= quickLevel4Implementations:
		return 4
	case evidence.Implementations >= quickLevel3Implementations:
		return 3
	case evidence.Implementations >= quickLevel2Implementations:
		return 2
	default:
		return 1
	}
}

// History returns the full ordered transition history for a skill, or
// an empty slice when none exists.
func (t *Tracker) History(skillID string) []types.LevelTransition {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.history[skillID]
	out := make([]types.LevelTransition, len(entries))
	copy(out, entries)
	return out
}

// CurrentLevel returns the last recorded level for a skill, or 1 when
// the skill has no history.
func (t *Tracker) CurrentLevel(skillID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.history[skillID]
	if len(entries) == 0 {
		return types.MinEvolutionLevel
	}
	return entries[len(entries)-1].NewLevel
}

// Clear wipes all recorded history. Intended for tests.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = make(map[string][]types.LevelTransition)
}
