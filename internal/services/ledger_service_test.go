package services

import (
	"context"
	"errors"
	"testing"

	"hisab/internal/core"
	"hisab/internal/records"
	"hisab/internal/records/memory"
)

type fakePublisher struct {
	published []int64
	err       error
}

func (f *fakePublisher) PublishLedgerMirror(_ context.Context, id, _ int64) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, id)
	return nil
}

func seedProject(t *testing.T, store records.Store) core.Project {
	t.Helper()
	p, err := store.InsertProject(context.Background(), core.Project{
		Name: "Test project", Status: core.ProjectActive, TotalValue: core.Money{Paise: 10000},
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func validTxn(projectID int64) core.Transaction {
	return core.Transaction{
		ProjectID: projectID,
		Date:      core.NewDate(2025, 1, 10),
		Type:      core.Invoice,
		Amount:    core.Money{Paise: 5000},
	}
}

func TestCreateTransactionPublishesMirror(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	pub := &fakePublisher{}
	svc := NewLedgerService(store, pub)
	p := seedProject(t, store)

	saved, err := svc.CreateTransaction(ctx, validTxn(p.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
	if len(pub.published) != 1 || pub.published[0] != saved.ID {
		t.Fatalf("expected one mirror publish for %d, got %v", saved.ID, pub.published)
	}
}

func TestCreateTransactionPublishFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewLedgerService(store, pub)
	p := seedProject(t, store)

	saved, err := svc.CreateTransaction(ctx, validTxn(p.ID))
	if err != nil {
		t.Fatalf("publish failure must not fail the save: %v", err)
	}
	got, err := store.GetTransaction(ctx, saved.ID)
	if err != nil || got.ID != saved.ID {
		t.Fatalf("transaction not saved locally: %v", err)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewLedgerService(store, nil)
	p := seedProject(t, store)

	bad := validTxn(p.ID)
	bad.Amount = core.Money{}
	if _, err := svc.CreateTransaction(ctx, bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	orphan := validTxn(9999)
	if _, err := svc.CreateTransaction(ctx, orphan); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing project, got %v", err)
	}
}

func TestCreateTransactionWithoutPublisher(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewLedgerService(store, nil)
	p := seedProject(t, store)

	if _, err := svc.CreateTransaction(ctx, validTxn(p.ID)); err != nil {
		t.Fatalf("nil publisher should be fine: %v", err)
	}
}

func TestBulkDeleteTransactions(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewLedgerService(store, nil)
	p := seedProject(t, store)

	var ids []int64
	for i := 0; i < 3; i++ {
		saved, _ := svc.CreateTransaction(ctx, validTxn(p.ID))
		ids = append(ids, saved.ID)
	}
	ids = append(ids, 9999) // missing row

	res := svc.BulkDeleteTransactions(ctx, ids)
	if len(res.Deleted) != 3 {
		t.Fatalf("expected 3 deleted, got %v", res.Deleted)
	}
	if len(res.Failed) != 1 {
		t.Fatalf("expected 1 failure, got %v", res.Failed)
	}
	if _, ok := res.Failed[9999]; !ok {
		t.Fatalf("missing row should be in failures")
	}
	left, _ := store.ListTransactions(ctx, core.TransactionFilter{})
	if len(left) != 0 {
		t.Fatalf("expected all real rows deleted, %d left", len(left))
	}
}

func TestDeleteProjectCascade(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewLedgerService(store, nil)
	p := seedProject(t, store)
	other := seedProject(t, store)

	_, _ = svc.CreateTransaction(ctx, validTxn(p.ID))
	_, _ = store.InsertMilestone(ctx, core.Milestone{ProjectID: p.ID, Name: "M1", Status: core.MilestonePending})
	_, _ = store.InsertActionItem(ctx, core.ActionItem{ProjectID: p.ID, Description: "chase", Status: core.ActionPending})
	_, _ = svc.CreateTransaction(ctx, validTxn(other.ID))

	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}

	if _, err := store.GetProject(ctx, p.ID); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("project should be gone, got %v", err)
	}
	txns, _ := store.ListTransactions(ctx, core.TransactionFilter{})
	if len(txns) != 1 || txns[0].ProjectID != other.ID {
		t.Fatalf("only the other project's transactions should remain: %+v", txns)
	}
	ms, _ := store.ListMilestones(ctx, 0)
	items, _ := store.ListActionItems(ctx, 0)
	if len(ms) != 0 || len(items) != 0 {
		t.Fatalf("children not deleted: %d milestones, %d items", len(ms), len(items))
	}
}

func TestDeleteProjectMissing(t *testing.T) {
	svc := NewLedgerService(memory.New(), nil)
	if err := svc.DeleteProject(context.Background(), 42); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
