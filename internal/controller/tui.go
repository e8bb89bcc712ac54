package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/glossa/internal/model"
)

// Scans with at most this many literals are printed instead of browsed.
const interactiveScanThreshold = 20

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	arrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summaryTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// TUI implements UI using lipgloss styling and a Bubble Tea scan browser.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayChange prints one translated literal.
func (t *TUI) DisplayChange(_ m.Path, change m.Change) {
	_, _ = fmt.Fprintf(t.output, "%s %s %s %s\n",
		okStyle.Render("[OK]"),
		Preview(change.Original),
		arrowStyle.Render("->"),
		Preview(change.Result),
	)
}

// DisplaySummary prints the final counters for a document.
func (t *TUI) DisplaySummary(report m.Report) error {
	_, _ = fmt.Fprintf(t.output, "\n%s Translated: %s, Skipped: %s\n",
		summaryTitle.Render("Done."),
		countStyle.Render(fmt.Sprintf("%d", report.Translated)),
		countStyle.Render(fmt.Sprintf("%d", report.Skipped)),
	)
	_, _ = fmt.Fprintf(t.output, "Written: %s\n", countStyle.Render(string(report.Output)))

	return nil
}

// DisplayScan opens an interactive browser for large scans.
func (t *TUI) DisplayScan(source m.Path, changes []m.Change) error {
	if len(changes) <= interactiveScanThreshold {
		writeScan(t.output, source, changes)
		return nil
	}

	model := newScanModel().handleScanMsg(scanMsg{source: string(source), changes: changes})

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("scan browser: %w", err)
	}

	return nil
}

// DisplayLanguages prints the built-in language tables.
func (t *TUI) DisplayLanguages(langs []m.Language) error {
	writeLanguages(t.output, langs)

	return nil
}

// DisplayReports prints stored run reports.
func (t *TUI) DisplayReports(reports []m.Report) error {
	writeReports(t.output, reports)

	return nil
}
