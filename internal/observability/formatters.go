// Package observability provides formatted terminal output for the collector.
package observability

import (
	"fmt"
	"io"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output
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

// PrintProgress prints one completed enrichment unit.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(done, total int, name string, accepted bool, reason string) {
	mark := "ok"
	if !accepted {
		mark = "skip (" + reason + ")"
	}
	fmt.Fprintf(p.out, "  [%d/%d] %s — %s\n", done, total, name, mark)
}

// PrintSummary prints the final run summary box.
func (p *Printer) PrintSummary(namesUsed, valid, skipped int, professionsPath, reportPath string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Professions JSON: %s\n", professionsPath))
	sb.WriteString(fmt.Sprintf("Preflight report: %s\n", reportPath))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Names used: %d\n", namesUsed))
	sb.WriteString(fmt.Sprintf("Valid:      %d\n", valid))
	sb.WriteString(fmt.Sprintf("Skipped:    %d", skipped))
	p.printBox("Collection complete", sb.String())
}
