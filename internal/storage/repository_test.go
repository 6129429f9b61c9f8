package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"hisab/internal/core"
	"hisab/internal/records"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "hisab.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestProjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p, err := repo.InsertProject(ctx, core.Project{
		Name:       "Factory automation",
		ClientName: "Acme Traders",
		TotalValue: core.Money{Paise: 15000000},
		Status:     core.ProjectActive,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected assigned ID")
	}

	got, err := repo.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != p.Name || got.TotalValue != p.TotalValue || got.Status != p.Status {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	got.Status = core.ProjectCompleted
	if err := repo.UpdateProject(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetProject(ctx, p.ID)
	if again.Status != core.ProjectCompleted {
		t.Fatalf("update not persisted: %+v", again)
	}

	if err := repo.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetProject(ctx, p.ID); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactionRoundTripWithDocuments(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p, _ := repo.InsertProject(ctx, core.Project{Name: "P", Status: core.ProjectActive})
	tx, err := repo.InsertTransaction(ctx, core.Transaction{
		ProjectID: p.ID,
		Date:      core.NewDate(2025, 1, 15),
		Type:      core.Invoice,
		Amount:    core.Money{Paise: 5000000},
		Mode:      core.ModeBank,
		Notes:     "milestone 1",
		Documents: []core.DocumentRef{
			{Name: "invoice.pdf", Location: "attachments/1/invoice.pdf", Kind: core.DocumentUpload, MimeType: "application/pdf"},
		},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Date.String() != "2025-01-15" {
		t.Fatalf("date round trip: %q", got.Date.String())
	}
	if len(got.Documents) != 1 || got.Documents[0].Name != "invoice.pdf" || got.Documents[0].Kind != core.DocumentUpload {
		t.Fatalf("documents round trip: %+v", got.Documents)
	}
}

func TestListTransactionsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p1, _ := repo.InsertProject(ctx, core.Project{Name: "A", Status: core.ProjectActive})
	p2, _ := repo.InsertProject(ctx, core.Project{Name: "B", Status: core.ProjectActive})

	seed := []core.Transaction{
		{ProjectID: p1.ID, Date: core.NewDate(2025, 1, 1), Type: core.Invoice, Amount: core.Money{Paise: 100}, Notes: "kickoff invoice"},
		{ProjectID: p1.ID, Date: core.NewDate(2025, 2, 1), Type: core.PaymentReceived, Amount: core.Money{Paise: 100}},
		{ProjectID: p2.ID, Date: core.NewDate(2025, 3, 1), Type: core.Invoice, Amount: core.Money{Paise: 100}},
	}
	for _, tx := range seed {
		if _, err := repo.InsertTransaction(ctx, tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	byProject, err := repo.ListTransactions(ctx, core.TransactionFilter{ProjectID: p1.ID})
	if err != nil || len(byProject) != 2 {
		t.Fatalf("project filter: %d, %v", len(byProject), err)
	}

	byType, _ := repo.ListTransactions(ctx, core.TransactionFilter{Type: core.Invoice})
	if len(byType) != 2 {
		t.Fatalf("type filter: %d", len(byType))
	}

	byRange, _ := repo.ListTransactions(ctx, core.TransactionFilter{
		From: core.NewDate(2025, 2, 1), To: core.NewDate(2025, 2, 28),
	})
	if len(byRange) != 1 || byRange[0].Type != core.PaymentReceived {
		t.Fatalf("range filter: %+v", byRange)
	}

	bySearch, _ := repo.ListTransactions(ctx, core.TransactionFilter{Search: "KICKOFF"})
	if len(bySearch) != 1 {
		t.Fatalf("search filter: %d", len(bySearch))
	}

	// newest first
	all, _ := repo.ListTransactions(ctx, core.TransactionFilter{})
	if len(all) != 3 || all[0].Date.String() != "2025-03-01" {
		t.Fatalf("expected newest first, got %+v", all)
	}
}

func TestDeleteByProjectCascadeSteps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p, _ := repo.InsertProject(ctx, core.Project{Name: "Doomed", Status: core.ProjectActive})
	_, _ = repo.InsertTransaction(ctx, core.Transaction{ProjectID: p.ID, Date: core.NewDate(2025, 1, 1), Type: core.Invoice, Amount: core.Money{Paise: 100}})
	_, _ = repo.InsertMilestone(ctx, core.Milestone{ProjectID: p.ID, Name: "M1", Status: core.MilestonePending})
	_, _ = repo.InsertActionItem(ctx, core.ActionItem{ProjectID: p.ID, Description: "follow up", Status: core.ActionPending})

	if err := repo.DeleteTransactionsByProject(ctx, p.ID); err != nil {
		t.Fatalf("delete transactions: %v", err)
	}
	if err := repo.DeleteMilestonesByProject(ctx, p.ID); err != nil {
		t.Fatalf("delete milestones: %v", err)
	}
	if err := repo.DeleteActionItemsByProject(ctx, p.ID); err != nil {
		t.Fatalf("delete action items: %v", err)
	}
	if err := repo.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	txns, _ := repo.ListTransactions(ctx, core.TransactionFilter{})
	ms, _ := repo.ListMilestones(ctx, 0)
	items, _ := repo.ListActionItems(ctx, 0)
	if len(txns) != 0 || len(ms) != 0 || len(items) != 0 {
		t.Fatalf("cascade left rows behind: %d %d %d", len(txns), len(ms), len(items))
	}
}

func TestMirrorStateTransitions(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p, _ := repo.InsertProject(ctx, core.Project{Name: "P", Status: core.ProjectActive})
	tx, _ := repo.InsertTransaction(ctx, core.Transaction{
		ProjectID: p.ID, Date: core.NewDate(2025, 1, 1), Type: core.Invoice, Amount: core.Money{Paise: 100},
	})

	pending, err := repo.PendingMirrorTransactions(ctx, 10)
	if err != nil || len(pending) != 1 || pending[0].ID != tx.ID {
		t.Fatalf("expected one pending row: %+v, %v", pending, err)
	}
	if pending[0].Version != 1 {
		t.Fatalf("new row should be version 1, got %d", pending[0].Version)
	}

	if err := repo.MarkMirrored(ctx, tx.ID, "Ledger!A2"); err != nil {
		t.Fatalf("mark mirrored: %v", err)
	}
	pending, _ = repo.PendingMirrorTransactions(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("mirrored row still pending")
	}
	ref, err := repo.MirrorRef(ctx, tx.ID)
	if err != nil || ref != "Ledger!A2" {
		t.Fatalf("mirror ref: %q, %v", ref, err)
	}

	// editing requeues the row and bumps the version
	tx.Notes = "edited"
	if err := repo.UpdateTransaction(ctx, tx); err != nil {
		t.Fatalf("update: %v", err)
	}
	pending, _ = repo.PendingMirrorTransactions(ctx, 10)
	if len(pending) != 1 || pending[0].Version != 2 {
		t.Fatalf("edit should requeue with bumped version: %+v", pending)
	}

	if err := repo.MarkMirrorError(ctx, tx.ID); err != nil {
		t.Fatalf("mark error: %v", err)
	}
	pending, _ = repo.PendingMirrorTransactions(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("errored row should leave the pending queue")
	}
}

func TestQuotationRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	q, err := repo.InsertQuotation(ctx, core.Quotation{
		QuoteDate:   core.NewDate(2025, 2, 10),
		Amount:      core.Money{Paise: 2500000},
		Description: "Annual maintenance",
		Status:      core.QuoteDraft,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	q.Status = core.QuoteSent
	if err := repo.UpdateQuotation(ctx, q); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetQuotation(ctx, q.ID)
	if err != nil || got.Status != core.QuoteSent {
		t.Fatalf("status update lost: %+v, %v", got, err)
	}
}
