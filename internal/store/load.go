package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/skill-advisor/internal/schemas"
	"github.com/jonathan/skill-advisor/internal/types"
	rootschemas "github.com/jonathan/skill-advisor/schemas"
)

// snapshot is the scratch structure a load cycle builds into. It is
// committed to the store in one write-lock section only when every
// record loaded and validated, so a failed load never leaves a
// partially populated index visible.
type snapshot struct {
	skills     []types.Skill
	byID       map[string]int
	byIndustry map[string][]string
	byCategory map[string][]string
	byLevel    map[int][]string
}

// Load reads the index document plus one record per skill, validates
// each against the embedded JSON Schema and struct rules, and commits
// the built indices atomically. A second call after success is a
// no-op; concurrent first calls collapse into a single flight.
func (s *Store) Load() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.loadGroup.Do("load", func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have
		// completed between the caller's check and this one.
		s.mu.RLock()
		loaded := s.loaded
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		snap, err := s.buildSnapshot()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.skills = snap.skills
		s.byID = snap.byID
		s.byIndustry = snap.byIndustry
		s.byCategory = snap.byCategory
		s.byLevel = snap.byLevel
		s.loaded = true
		s.mu.Unlock()

		s.logger.Info("skill store loaded",
			zap.String("dir", s.dir),
			zap.Int("skills", len(snap.skills)))
		return nil, nil
	})
	return err
}

// buildSnapshot reads and validates the whole record set without
// touching the live store state.
func (s *Store) buildSnapshot() (*snapshot, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		skills:     make([]types.Skill, 0, len(index.Skills)),
		byID:       make(map[string]int, len(index.Skills)),
		byIndustry: make(map[string][]string),
		byCategory: make(map[string][]string),
		byLevel:    make(map[int][]string),
	}

	for _, entry := range index.Skills {
		skill, err := s.readRecord(entry)
		if err != nil {
			return nil, err
		}
		if _, dup := snap.byID[skill.ID]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate skill id %q", skill.ID)}
		}

		snap.byID[skill.ID] = len(snap.skills)
		snap.skills = append(snap.skills, *skill)
		snap.byIndustry[skill.Industry] = append(snap.byIndustry[skill.Industry], skill.ID)
		snap.byCategory[skill.Category] = append(snap.byCategory[skill.Category], skill.ID)
		if skill.HasEvolutionLevel() {
			snap.byLevel[skill.EvolutionLevel] = append(snap.byLevel[skill.EvolutionLevel], skill.ID)
		}
	}

	return snap, nil
}

// readIndex loads and validates the index document.
func (s *Store) readIndex() (*types.SkillIndex, error) {
	path := filepath.Join(s.dir, s.indexFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read index %s", path), Cause: err}
	}

	doc, err := toJSON(path, raw)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(rootschemas.SkillIndexSchema, doc); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("index %s failed schema validation", path), Cause: err}
	}

	var index types.SkillIndex
	if err := json.Unmarshal(doc, &index); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to unmarshal index %s", path), Cause: err}
	}
	return &index, nil
}

// readRecord loads and validates one per-skill record document.
func (s *Store) readRecord(entry types.SkillIndexEntry) (*types.Skill, error) {
	path := filepath.Join(s.dir, entry.File)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read record %s", path), Cause: err}
	}

	doc, err := toJSON(path, raw)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(rootschemas.SkillSchema, doc); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("record %s failed schema validation", path), Cause: err}
	}

	var skill types.Skill
	if err := json.Unmarshal(doc, &skill); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to unmarshal record %s", path), Cause: err}
	}
	if err := s.validate.Struct(&skill); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("record %s failed field validation", path), Cause: err}
	}
	if skill.ID != entry.ID {
		return nil, &LoadError{
			Message: fmt.Sprintf("record %s declares id %q but index names it %q", path, skill.ID, entry.ID),
		}
	}

	return &skill, nil
}

// toJSON normalizes a record file to JSON bytes. YAML records are
// decoded with yaml.v3 and re-encoded so schema validation sees one
// document format.
func toJSON(path string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to parse YAML in %s", path), Cause: err}
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to convert %s to JSON", path), Cause: err}
		}
		return out, nil
	default:
		return raw, nil
	}
}
