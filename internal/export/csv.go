// Package export renders collections as CSV downloads. Every field is
// double-quoted, including the header, so embedded commas, quotes and
// newlines survive any spreadsheet import.
package export

import (
	"fmt"
	"io"
	"strings"

	"hisab/internal/core"
)

// WriteCSV writes a header row followed by data rows, quoting every field.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	if err := writeRow(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\r\n"); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// TransactionRows builds the export rows for the transaction ledger.
// projectName resolves a project ID to its display name.
func TransactionRows(txns []core.Transaction, projectName func(int64) string) ([]string, [][]string) {
	header := []string{"Date", "Project", "Type", "Amount", "Mode", "Notes"}
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []string{
			t.Date.String(),
			projectName(t.ProjectID),
			string(t.Type),
			core.FormatINR(t.Amount),
			string(t.Mode),
			t.Notes,
		})
	}
	return header, rows
}

// ProjectRows builds the export rows for the project list, including
// the derived received and balance columns.
func ProjectRows(rows []core.ProjectRow) ([]string, [][]string) {
	header := []string{"Name", "Client", "Status", "Total Value", "Received", "Balance", "Notes"}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.Project.Name,
			row.Project.ClientName,
			string(row.Project.Status),
			core.FormatINR(row.Project.TotalValue),
			core.FormatINR(row.Received),
			core.FormatINR(row.Balance),
			row.Project.Notes,
		})
	}
	return header, out
}
