// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the analyze and jobs commands
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of a job posting.
func (p *Printer) PrintJob(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", job.EffectiveStrategy()))
	if job.RequiredExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d+\n", job.RequiredExperienceYears))
	}

	if len(job.SkillWeights) > 0 {
		sb.WriteString("\nWeighted Skills:\n")
		count := min(len(job.SkillWeights), maxItemsToShow)
		for i := 0; i < count; i++ {
			sw := job.SkillWeights[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.0f)\n", sw.Skill, sw.Weight))
		}
		if len(job.SkillWeights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.SkillWeights)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked candidates with scores and matched skills.
func (p *Printer) PrintRanking(results []types.ScoreResult) {
	if len(results) == 0 {
		p.printBox("CANDIDATE RANKING", "No candidates scored")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.CandidateEmail))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", result.FinalScore))
		if result.Degraded {
			sb.WriteString(" (degraded)")
		}
		sb.WriteString("\n")
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", sb.String())
}

// PrintStatuses outputs the status ledger entries for a job.
func (p *Printer) PrintStatuses(job string, entries []types.StatusEntry) {
	if len(entries) == 0 {
		p.printBox("CANDIDATE STATUS", "No statuses recorded")
		return
	}

	var sb strings.Builder
	if job != "" {
		sb.WriteString(fmt.Sprintf("Job: %s\n\n", job))
	}
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("• %s\n", entry.Email))
		sb.WriteString(fmt.Sprintf("  %s\n", entry.Status))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CANDIDATE STATUS", strings.TrimSuffix(sb.String(), "\n"))
}
