// Package store implements the in-memory skill catalog: one-shot loading
// from a declarative record set, indexed lookups, filtering, and
// similarity-based related-skill retrieval.
package store

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/skill-advisor/internal/types"
)

// DefaultIndexFile is the index document name looked up inside the
// skills directory when none is configured.
const DefaultIndexFile = "index.json"

// Store is the single source of truth for the skill catalog. All read
// operations are safe for concurrent use; Load is collapsed to a single
// flight so concurrent first loads do not duplicate work.
type Store struct {
	dir       string
	indexFile string
	logger    *zap.Logger
	validate  *validator.Validate

	loadGroup singleflight.Group

	mu         sync.RWMutex
	loaded     bool
	skills     []types.Skill
	byID       map[string]int
	byIndustry map[string][]string
	byCategory map[string][]string
	byLevel    map[int][]string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a structured logger used on the load path and for
// filter diagnostics. Scoring-free read paths stay silent.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIndexFile overrides the index document name inside the skills directory.
func WithIndexFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.indexFile = name
		}
	}
}

// New creates a store reading its records from dir. The store starts
// empty; call Load before querying, or expect empty results.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:       dir,
		indexFile: DefaultIndexFile,
		logger:    zap.NewNop(),
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset clears all catalog state. Caller must hold the write lock, or
// be the only goroutine with access (construction).
func (s *Store) reset() {
	s.loaded = false
	s.skills = nil
	s.byID = make(map[string]int)
	s.byIndustry = make(map[string][]string)
	s.byCategory = make(map[string][]string)
	s.byLevel = make(map[int][]string)
}

// Loaded reports whether a load cycle has completed successfully.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// GetByID returns the skill with the given id. The second return value
// is false when the id is unknown; an absent id is not an error.
func (s *Store) GetByID(id string) (*types.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	skill := s.skills[idx]
	return &skill, true
}

// All returns a snapshot of every loaded skill in load order. Load
// order is not guaranteed stable across process restarts.
func (s *Store) All() []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// ByIndustry returns every skill whose industry equals the given value.
// An unseen key yields an empty slice.
func (s *Store) ByIndustry(industry string) []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skillsForIDs(s.byIndustry[industry])
}

// ByCategory returns every skill whose category equals the given value.
func (s *Store) ByCategory(category string) []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skillsForIDs(s.byCategory[category])
}

// ByEvolutionLevel returns every skill whose advisory evolution level
// equals the given value.
func (s *Store) ByEvolutionLevel(level int) []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skillsForIDs(s.byLevel[level])
}

// skillsForIDs resolves an index bucket to skill values. Caller must
// hold at least the read lock.
func (s *Store) skillsForIDs(ids []string) []types.Skill {
	out := make([]types.Skill, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.byID[id]; ok {
			out = append(out, s.skills[idx])
		}
	}
	return out
}

// Search performs a case-insensitive substring match over each skill's
// concatenated name and description.
func (s *Store) Search(query string) []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]types.Skill, 0)
	for _, skill := range s.skills {
		haystack := strings.ToLower(skill.Name + " " + skill.Description)
		if strings.Contains(haystack, q) {
			out = append(out, skill)
		}
	}
	return out
}

// exportEnvelope is the document shape produced by ExportJSON.
type exportEnvelope struct {
	Total  int           `json:"total"`
	Skills []types.Skill `json:"skills"`
}

// ExportJSON serializes the full catalog snapshot as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	skills := make([]types.Skill, len(s.skills))
	copy(skills, s.skills)
	s.mu.RUnlock()

	return json.MarshalIndent(exportEnvelope{
		Total:  len(skills),
		Skills: skills,
	}, "", "  ")
}

// ClearCache resets the store to its unloaded state. A subsequent Load
// re-reads the record set from disk.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.logger.Debug("skill store cache cleared")
}
