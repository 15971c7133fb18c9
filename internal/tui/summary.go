package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// SummaryOptions controls how RenderSummary formats the run summary.
type SummaryOptions struct {
	Styled        bool
	DryRun        bool
	BackupSuffix  string
	MetaExtension string
}

// RenderSummary writes the end-of-run block. The line layout is the same in
// plain and styled mode; styling only adds colour.
func RenderSummary(w io.Writer, s metaguid.FixSummary, opts SummaryOptions) {
	render := func(style lipgloss.Style, text string) string {
		if !opts.Styled {
			return text
		}
		return style.Render(text)
	}
	count := func(style lipgloss.Style, n int) string {
		if n == 0 {
			return fmt.Sprint(n)
		}
		return render(style, fmt.Sprint(n))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, render(TitleStyle, "==== DONE ===="))
	fmt.Fprintf(w, "Fixed metas: %s\n", count(SuccessStyle, s.Fixed))
	fmt.Fprintf(w, "Missing metas: %s\n", count(WarningStyle, s.Missing))
	fmt.Fprintf(w, "Bad GUID in CSV: %s\n", count(ErrorStyle, s.BadIdentifier))

	if opts.DryRun {
		fmt.Fprintln(w, render(HelpStyle, "Note: dry run, no files were modified"))
		return
	}
	fmt.Fprintln(w, render(HelpStyle, fmt.Sprintf("Note: %s backups were created next to each modified %s",
		opts.BackupSuffix, opts.MetaExtension)))
}
