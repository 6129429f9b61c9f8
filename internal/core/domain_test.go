package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || int(d.Time.Month()) != 12 || d.Day() != 1 {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("01/12/2024"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty")
	}
}

func TestProjectValidate(t *testing.T) {
	good := Project{Name: "Website revamp", Status: ProjectActive, TotalValue: Money{Paise: 15000000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Project{
		{Name: "", Status: ProjectActive, TotalValue: Money{Paise: 100}},
		{Name: "x", Status: "archived", TotalValue: Money{Paise: 100}},
		{Name: "x", Status: ProjectActive, TotalValue: Money{Paise: -1}},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	// zero value is allowed
	if err := (Project{Name: "x", Status: ProjectPending}).Validate(); err != nil {
		t.Fatalf("zero total value should be valid, got %v", err)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ProjectID: 1,
		Date:      NewDate(2024, 12, 1),
		Type:      PaymentReceived,
		Amount:    Money{Paise: 5000000},
		Mode:      ModeUPI,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{ProjectID: 0, Date: NewDate(2024, 12, 1), Type: Invoice, Amount: Money{Paise: 1}},
		{ProjectID: 1, Date: Date{Time: time.Time{}}, Type: Invoice, Amount: Money{Paise: 1}},
		{ProjectID: 1, Date: NewDate(2024, 12, 1), Type: "wire", Amount: Money{Paise: 1}},
		{ProjectID: 1, Date: NewDate(2024, 12, 1), Type: Invoice, Amount: Money{Paise: 0}},
		{ProjectID: 1, Date: NewDate(2024, 12, 1), Type: Invoice, Amount: Money{Paise: 1}, Mode: "crypto"},
		{ProjectID: 1, Date: NewDate(2024, 12, 1), Type: Invoice, Amount: Money{Paise: 1},
			Documents: []DocumentRef{{Name: "quote.pdf", Kind: DocumentUpload}}}, // no location
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestMilestoneValidate(t *testing.T) {
	good := Milestone{ProjectID: 1, Name: "Design sign-off", Percentage: 30, Status: MilestonePending}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Milestone{ProjectID: 1, Name: "x", Percentage: 120, Status: MilestonePending}).Validate(); err == nil {
		t.Fatalf("expected error for percentage > 100")
	}
	if err := (Milestone{ProjectID: 0, Name: "x", Status: MilestonePending}).Validate(); err == nil {
		t.Fatalf("expected error for missing project")
	}
}

func TestActionStatusToggle(t *testing.T) {
	if ActionPending.Toggle() != ActionDone {
		t.Fatalf("pending should toggle to done")
	}
	if ActionPending.Toggle().Toggle() != ActionPending {
		t.Fatalf("double toggle should be identity")
	}
}

func TestQuotationValidate(t *testing.T) {
	good := Quotation{Description: "AMC renewal", QuoteDate: NewDate(2025, 1, 10), Status: QuoteDraft, Amount: Money{Paise: 1000000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Quotation{Description: "x", QuoteDate: NewDate(2025, 1, 10), Status: "expired", Amount: Money{Paise: 1}}).Validate(); err == nil {
		t.Fatalf("expected error for bad status")
	}
	if err := (Quotation{Description: "x", QuoteDate: NewDate(2025, 1, 10), Status: QuoteDraft, Amount: Money{Paise: 0}}).Validate(); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
