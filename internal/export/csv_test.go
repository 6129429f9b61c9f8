package export

import (
	"strings"
	"testing"

	"hisab/internal/core"
)

func TestWriteCSVQuotesEveryField(t *testing.T) {
	var b strings.Builder
	err := WriteCSV(&b,
		[]string{"Name", "Notes"},
		[][]string{
			{"Acme, Ltd", `said "done"`},
			{"Plain", "multi\nline"},
		})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	want := "\"Name\",\"Notes\"\r\n" +
		"\"Acme, Ltd\",\"said \"\"done\"\"\"\r\n" +
		"\"Plain\",\"multi\nline\"\r\n"
	if b.String() != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", b.String(), want)
	}
}

func TestTransactionRows(t *testing.T) {
	txns := []core.Transaction{
		{
			ProjectID: 7,
			Date:      core.NewDate(2025, 4, 12),
			Type:      core.Invoice,
			Amount:    core.Money{Paise: 27500000},
			Mode:      core.ModeBank,
			Notes:     "phase 1",
		},
		{
			ProjectID: 99,
			Date:      core.NewDate(2025, 4, 15),
			Type:      core.PaymentReceived,
			Amount:    core.Money{Paise: 5000000},
		},
	}
	names := map[int64]string{7: "Warehouse ERP"}
	lookup := func(id int64) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "Unknown Project"
	}

	header, rows := TransactionRows(txns, lookup)
	if len(header) != 6 || header[0] != "Date" {
		t.Fatalf("unexpected header: %v", header)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Warehouse ERP" || rows[0][3] != "₹2,75,000" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][1] != "Unknown Project" {
		t.Fatalf("dangling project ref should fall back: %v", rows[1])
	}
}

func TestProjectRows(t *testing.T) {
	projects := []core.Project{
		{ID: 1, Name: "Factory automation", ClientName: "Acme", Status: core.ProjectActive, TotalValue: core.Money{Paise: 15000000}},
	}
	txns := []core.Transaction{
		{ID: 1, ProjectID: 1, Type: core.PaymentReceived, Amount: core.Money{Paise: 5000000}, Date: core.NewDate(2025, 4, 15)},
	}

	header, rows := ProjectRows(core.BuildProjectRows(projects, txns))
	if len(header) != 7 || header[4] != "Received" || header[5] != "Balance" {
		t.Fatalf("unexpected header: %v", header)
	}
	if rows[0][3] != "₹1,50,000" {
		t.Fatalf("unexpected total value: %v", rows[0])
	}
	if rows[0][4] != "₹50,000" || rows[0][5] != "₹1,00,000" {
		t.Fatalf("received/balance columns: %v", rows[0])
	}
}
