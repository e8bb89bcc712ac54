package controller

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/glossa/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayChange prints one translated literal.
func (s *SimpleUI) DisplayChange(_ m.Path, change m.Change) {
	s.printf("[OK] Translated: %s -> %s\n", Preview(change.Original), Preview(change.Result))
}

// DisplaySummary prints the final counters for a document.
func (s *SimpleUI) DisplaySummary(report m.Report) error {
	s.printf("\nDone. Translated: %d, Skipped: %d\n", report.Translated, report.Skipped)
	s.printf("Written: %s\n", report.Output)

	return nil
}

// DisplayScan prints a table of literal decisions.
func (s *SimpleUI) DisplayScan(source m.Path, changes []m.Change) error {
	writeScan(s.cmd.OutOrStdout(), source, changes)

	return nil
}

// DisplayLanguages prints the built-in language tables.
func (s *SimpleUI) DisplayLanguages(langs []m.Language) error {
	writeLanguages(s.cmd.OutOrStdout(), langs)

	return nil
}

// DisplayReports prints stored run reports.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	writeReports(s.cmd.OutOrStdout(), reports)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func writeScan(w io.Writer, source m.Path, changes []m.Change) {
	if len(changes) == 0 {
		_, _ = fmt.Fprintf(w, "%s: no string literals found\n", source)
		return
	}

	translated, skipped := countChanges(changes)

	table, buf := newTable([]string{"Line", "Name", "Decision", "Text"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, c := range changes {
		table.Append([]string{fmt.Sprintf("%d", c.Line), c.Name, Decision(c), Preview(c.Original)})
	}

	table.SetFooter([]string{"", "", fmt.Sprintf("%d to translate", translated), fmt.Sprintf("%d skipped", skipped)})
	table.Render()

	_, _ = fmt.Fprintf(w, "%s\n%s", source, buf.String())
}

func writeLanguages(w io.Writer, langs []m.Language) {
	table, buf := newTable([]string{"Code", "Language", "Entries"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, l := range langs {
		table.Append([]string{l.Code, l.Name, fmt.Sprintf("%d", l.Entries)})
	}

	table.Render()
	_, _ = fmt.Fprint(w, buf.String())
}

func writeReports(w io.Writer, reports []m.Report) {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(w, "No reports found")
		return
	}

	table, buf := newTable([]string{"Run", "Created", "Lang", "Source", "Translated", "Skipped"})

	for _, r := range reports {
		table.Append([]string{
			shortID(r.RunID),
			r.CreatedAt.Local().Format(time.DateTime),
			r.Lang,
			string(r.Source),
			fmt.Sprintf("%d", r.Translated),
			fmt.Sprintf("%d", r.Skipped),
		})
	}

	table.Render()
	_, _ = fmt.Fprint(w, buf.String())
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
