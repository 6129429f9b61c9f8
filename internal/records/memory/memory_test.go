package memory

import (
	"context"
	"errors"
	"testing"

	"hisab/internal/core"
	"hisab/internal/records"
)

func TestProjectCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	p, err := s.InsertProject(ctx, core.Project{Name: "ERP rollout", Status: core.ProjectActive, TotalValue: core.Money{Paise: 100}})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("insert should assign an ID")
	}

	p.Notes = "phase 1"
	if err := s.UpdateProject(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.GetProject(ctx, p.ID)
	if err != nil || got.Notes != "phase 1" {
		t.Fatalf("get after update: %+v, %v", got, err)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetProject(ctx, p.ID); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByProject(t *testing.T) {
	ctx := context.Background()
	s := New()

	p, _ := s.InsertProject(ctx, core.Project{Name: "A", Status: core.ProjectActive})
	other, _ := s.InsertProject(ctx, core.Project{Name: "B", Status: core.ProjectActive})

	for _, pid := range []int64{p.ID, other.ID} {
		if _, err := s.InsertTransaction(ctx, core.Transaction{
			ProjectID: pid, Date: core.NewDate(2025, 1, 1), Type: core.Invoice, Amount: core.Money{Paise: 100},
		}); err != nil {
			t.Fatalf("insert transaction: %v", err)
		}
	}

	if err := s.DeleteTransactionsByProject(ctx, p.ID); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	left, _ := s.ListTransactions(ctx, core.TransactionFilter{})
	if len(left) != 1 || left[0].ProjectID != other.ID {
		t.Fatalf("expected only the other project's transaction, got %+v", left)
	}
}

func TestListTransactionsAppliesFilter(t *testing.T) {
	ctx := context.Background()
	s := New()
	p, _ := s.InsertProject(ctx, core.Project{Name: "A", Status: core.ProjectActive})

	_, _ = s.InsertTransaction(ctx, core.Transaction{ProjectID: p.ID, Date: core.NewDate(2025, 1, 1), Type: core.Invoice, Amount: core.Money{Paise: 100}})
	_, _ = s.InsertTransaction(ctx, core.Transaction{ProjectID: p.ID, Date: core.NewDate(2025, 2, 1), Type: core.PaymentReceived, Amount: core.Money{Paise: 100}})

	got, err := s.ListTransactions(ctx, core.TransactionFilter{Type: core.Invoice})
	if err != nil || len(got) != 1 || got[0].Type != core.Invoice {
		t.Fatalf("filtered list wrong: %+v, %v", got, err)
	}
}

func TestActionItemUnlinkedListing(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, _ = s.InsertActionItem(ctx, core.ActionItem{Description: "call client", Status: core.ActionPending})
	_, _ = s.InsertActionItem(ctx, core.ActionItem{ProjectID: 7, Description: "send invoice", Status: core.ActionPending})

	all, _ := s.ListActionItems(ctx, 0)
	if len(all) != 2 {
		t.Fatalf("projectID 0 should list everything, got %d", len(all))
	}
	linked, _ := s.ListActionItems(ctx, 7)
	if len(linked) != 1 || linked[0].Description != "send invoice" {
		t.Fatalf("linked listing wrong: %+v", linked)
	}
}
