// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skill-advisor/internal/store"
	"github.com/jonathan/skill-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkill outputs a human-readable summary of one skill record.
func (p *Printer) PrintSkill(skill *types.Skill) {
	if skill == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:        %s\n", skill.ID))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", skill.Category))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", skill.Industry))
	if skill.HasEvolutionLevel() {
		if level, ok := types.LevelByNumber(skill.EvolutionLevel); ok {
			sb.WriteString(fmt.Sprintf("Level:     %d (%s)\n", level.Level, level.Name))
		}
	}
	if len(skill.Triggers) > 0 {
		sb.WriteString(fmt.Sprintf("Triggers:  %s\n", joinLimited(skill.Triggers)))
	}
	if len(skill.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:      %s\n", joinLimited(skill.Tags)))
	}

	p.printBox(skill.Name, sb.String())
}

// PrintMatchResults outputs detailed matching results for one skill.
func (p *Printer) PrintMatchResults(results []types.DetailedMatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, result := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s [%s]\n", result.Pain.Name, result.MatchType))
		sb.WriteString(fmt.Sprintf("  score %.2f x relevance %.2f = %.2f\n",
			result.MatchScore, result.ContextRelevance, result.AdjustedScore))
		for _, evidence := range result.Evidence {
			sb.WriteString(fmt.Sprintf("  - %s\n", evidence))
		}
	}

	p.printBox(fmt.Sprintf("Match Results (%d pains)", len(results)), sb.String())
}

// PrintAssessment outputs an evolution assessment report.
func (p *Printer) PrintAssessment(assessment *types.EvolutionAssessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder
	levelName := ""
	if level, ok := types.LevelByNumber(assessment.CurrentLevel); ok {
		levelName = " (" + level.Name + ")"
	}
	sb.WriteString(fmt.Sprintf("Current level:  %d%s\n", assessment.CurrentLevel, levelName))
	sb.WriteString(fmt.Sprintf("Readiness:      %.2f\n", assessment.ReadinessScore))
	sb.WriteString(fmt.Sprintf("Ready to advance: %v\n", assessment.ReadyForNextLevel))

	if len(assessment.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range limitItems(assessment.Strengths) {
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
	}
	if len(assessment.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		for _, g := range limitItems(assessment.Gaps) {
			sb.WriteString(fmt.Sprintf("  - %s\n", g))
		}
	}

	title := "Evolution Assessment"
	if assessment.SkillID != "" {
		title = "Evolution Assessment: " + assessment.SkillID
	}
	p.printBox(title, sb.String())
}

// PrintStatistics outputs catalog statistics grouped by facet.
func (p *Printer) PrintStatistics(stats store.Statistics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills: %d\n", stats.TotalSkills))
	sb.WriteString("\nBy industry:\n")
	writeCounts(&sb, stats.ByIndustry)
	sb.WriteString("\nBy category:\n")
	writeCounts(&sb, stats.ByCategory)

	p.printBox("Catalog Statistics", sb.String())
}

// writeCounts renders a count map with deterministic key order.
func writeCounts(sb *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keys)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %-20s %d\n", k, counts[k]))
	}
}

func joinLimited(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") +
		fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
}

func limitItems(items []string) []string {
	if len(items) <= maxItemsToShow {
		return items
	}
	return items[:maxItemsToShow]
}
