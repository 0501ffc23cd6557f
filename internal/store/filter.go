package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/skill-advisor/internal/types"
)

// Filter operators.
const (
	OpEquals     = "equals"
	OpNotEquals  = "notEquals"
	OpContains   = "contains"
	OpStartsWith = "startsWith"
	OpEndsWith   = "endsWith"
	OpGt         = "gt"
	OpGte        = "gte"
	OpLt         = "lt"
	OpLte        = "lte"
	OpIn         = "in"
	OpNotIn      = "notIn"
)

// Sort directions accepted by FilterOptions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterCondition applies one operator to one record field. Value is a
// string for scalar operators, a string slice for in/notIn, and a
// number (or numeric string) for the comparison operators.
type FilterCondition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// FilterOptions selects, orders, and paginates catalog records.
type FilterOptions struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
	SortBy     string            `json:"sort_by,omitempty"`
	SortDir    string            `json:"sort_dir,omitempty"`
	Page       int               `json:"page,omitempty"`
	Limit      int               `json:"limit,omitempty"`
}

// FilterResult is one page of filtered records. Page numbers are
// 1-based; a page past the end yields empty Items, not an error.
type FilterResult struct {
	Items      []types.Skill `json:"items"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// Filter applies every condition, an optional stable sort, then
// optional pagination.
//
// An unknown operator passes every record rather than failing. That is
// a deliberate permissive default carried over from the original
// record-set contract, not an oversight; it is logged at debug level so
// misspelled operators are discoverable.
func (s *Store) Filter(opts FilterOptions) FilterResult {
	s.mu.RLock()
	matched := make([]types.Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		if s.matchesAll(&skill, opts.Conditions) {
			matched = append(matched, skill)
		}
	}
	s.mu.RUnlock()

	if opts.SortBy != "" {
		sortSkills(matched, opts.SortBy, opts.SortDir)
	}

	total := len(matched)
	if opts.Limit <= 0 {
		return FilterResult{Items: matched, Total: total, TotalPages: 1}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * opts.Limit
	if start >= total {
		return FilterResult{Items: []types.Skill{}, Total: total, TotalPages: totalPages}
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return FilterResult{Items: matched[start:end], Total: total, TotalPages: totalPages}
}

func (s *Store) matchesAll(skill *types.Skill, conditions []FilterCondition) bool {
	for _, cond := range conditions {
		if !s.matches(skill, cond) {
			return false
		}
	}
	return true
}

func (s *Store) matches(skill *types.Skill, cond FilterCondition) bool {
	field, ok := fieldValue(skill, cond.Field)
	if !ok {
		// Unknown field behaves like an empty value so notEquals/notIn
		// can still exclude, while positive operators fail to match.
		field = ""
	}

	switch cond.Operator {
	case OpEquals:
		return anyValueEquals(field, stringify(cond.Value))
	case OpNotEquals:
		return !anyValueEquals(field, stringify(cond.Value))
	case OpContains:
		return anyValueContains(field, stringify(cond.Value))
	case OpStartsWith:
		return anyValueMatches(field, func(v string) bool {
			return strings.HasPrefix(strings.ToLower(v), strings.ToLower(stringify(cond.Value)))
		})
	case OpEndsWith:
		return anyValueMatches(field, func(v string) bool {
			return strings.HasSuffix(strings.ToLower(v), strings.ToLower(stringify(cond.Value)))
		})
	case OpGt, OpGte, OpLt, OpLte:
		return compareNumeric(field, cond.Value, cond.Operator)
	case OpIn:
		return valueInList(field, cond.Value)
	case OpNotIn:
		return !valueInList(field, cond.Value)
	default:
		// Permissive pass-through for unrecognized operators.
		s.logger.Debug("unknown filter operator, passing record through",
			zap.String("operator", cond.Operator),
			zap.String("field", cond.Field))
		return true
	}
}

// fieldValue extracts a named record field as either a string, a
// float64, or a []string.
func fieldValue(s *types.Skill, field string) (interface{}, bool) {
	switch field {
	case "id":
		return s.ID, true
	case "name":
		return s.Name, true
	case "description":
		return s.Description, true
	case "category":
		return s.Category, true
	case "industry":
		return s.Industry, true
	case "complexity":
		return s.Complexity, true
	case "status":
		return s.Status, true
	case "evolution_level":
		return float64(s.EvolutionLevel), true
	case "tags":
		return s.Tags, true
	case "triggers":
		return s.Triggers, true
	case "pain_patterns":
		return s.PainPatterns, true
	case "created_date":
		return s.CreatedDate, true
	case "updated_date":
		return s.UpdatedDate, true
	default:
		return nil, false
	}
}

// anyValueMatches runs the predicate over a scalar field or every
// element of a slice field.
func anyValueMatches(field interface{}, pred func(string) bool) bool {
	switch v := field.(type) {
	case []string:
		for _, item := range v {
			if pred(item) {
				return true
			}
		}
		return false
	default:
		return pred(stringify(field))
	}
}

func anyValueEquals(field interface{}, want string) bool {
	return anyValueMatches(field, func(v string) bool {
		return strings.EqualFold(v, want)
	})
}

func anyValueContains(field interface{}, want string) bool {
	return anyValueMatches(field, func(v string) bool {
		return strings.Contains(strings.ToLower(v), strings.ToLower(want))
	})
}

func valueInList(field interface{}, list interface{}) bool {
	for _, candidate := range toStringSlice(list) {
		if anyValueEquals(field, candidate) {
			return true
		}
	}
	return false
}

func compareNumeric(field interface{}, value interface{}, op string) bool {
	have, ok := toFloat(field)
	if !ok {
		return false
	}
	want, ok := toFloat(value)
	if !ok {
		return false
	}
	switch op {
	case OpGt:
		return have > want
	case OpGte:
		return have >= want
	case OpLt:
		return have < want
	case OpLte:
		return have <= want
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toStringSlice(v interface{}) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, stringify(item))
		}
		return out
	case nil:
		return nil
	default:
		return []string{stringify(v)}
	}
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// sortSkills orders records by a field value, numerically when the
// field is numeric, otherwise by case-insensitive string compare. The
// sort is stable so equal keys keep their load order.
func sortSkills(skills []types.Skill, field, dir string) {
	desc := strings.EqualFold(dir, SortDesc)
	sort.SliceStable(skills, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		return lessByField(&skills[i], &skills[j], field)
	})
}

func lessByField(a, b *types.Skill, field string) bool {
	av, _ := fieldValue(a, field)
	bv, _ := fieldValue(b, field)

	af, aNum := toFloat(av)
	bf, bNum := toFloat(bv)
	if aNum && bNum {
		return af < bf
	}
	return strings.ToLower(stringify(av)) < strings.ToLower(stringify(bv))
}
