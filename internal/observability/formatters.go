// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/profolio/profolio-cli/internal/types"
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

// PrintResume outputs a human-readable summary of a resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", resume.Title))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", resume.Template))
	if resume.Data.PersonalInfo.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", resume.Data.PersonalInfo.FullName))
	}
	sb.WriteString(fmt.Sprintf("Public:    %t\n", resume.IsPublic))
	if resume.ATSScore > 0 {
		sb.WriteString(fmt.Sprintf("ATS score: %.0f\n", resume.ATSScore))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experiences:    %d\n", len(resume.Data.Experiences)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(resume.Data.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(resume.Data.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(resume.Data.Certifications)))

	if len(resume.Data.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(resume.Data.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Data.Skills[i]))
		}
		if len(resume.Data.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Data.Skills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSResult outputs the score and improvement hints from an ATS analysis.
func (p *Printer) PrintATSResult(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d / 100\n", result.Score))

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Suggestions[i]))
		}
		if len(result.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-3))
		}
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoring outputs the proposed changes from a tailoring run.
func (p *Printer) PrintTailoring(result *types.TailorResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.TailoredSummary != "" {
		sb.WriteString("Tailored summary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", result.TailoredSummary))
	}
	if len(result.SkillsToAdd) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Skills to add:\n")
		for _, skill := range result.SkillsToAdd {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("No changes suggested.")
	}

	p.printBox("TAILORING", strings.TrimSuffix(sb.String(), "\n"))
}
