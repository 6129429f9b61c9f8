// Package services orchestrates record-store writes with the ledger
// mirror queue.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hisab/internal/core"
	"hisab/internal/records"
)

// MirrorPublisher queues a transaction for the external ledger mirror.
// A nil publisher disables mirroring.
type MirrorPublisher interface {
	PublishLedgerMirror(ctx context.Context, id, version int64) error
}

// LedgerService owns transaction writes and the cascading project
// delete. Rows are saved locally first; mirror publication is
// best-effort and never fails the request.
type LedgerService struct {
	store     records.Store
	publisher MirrorPublisher
}

func NewLedgerService(store records.Store, publisher MirrorPublisher) *LedgerService {
	return &LedgerService{store: store, publisher: publisher}
}

func (s *LedgerService) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if _, err := s.store.GetProject(ctx, t.ProjectID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return core.Transaction{}, fmt.Errorf("project %d: %w", t.ProjectID, records.ErrNotFound)
		}
		return core.Transaction{}, fmt.Errorf("check project: %w", err)
	}

	saved, err := s.store.InsertTransaction(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.publishMirror(ctx, saved.ID, 1)
	return saved, nil
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.store.UpdateTransaction(ctx, t); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	// Version 0 tells the worker to mirror whatever is current.
	s.publishMirror(ctx, t.ID, 0)
	return nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// BulkDeleteResult reports a per-ID outcome for a bulk delete.
type BulkDeleteResult struct {
	Deleted []int64
	Failed  map[int64]error
}

// BulkDeleteTransactions issues one delete per selected ID and keeps
// going past individual failures.
func (s *LedgerService) BulkDeleteTransactions(ctx context.Context, ids []int64) BulkDeleteResult {
	res := BulkDeleteResult{Failed: make(map[int64]error)}
	for _, id := range ids {
		if err := s.store.DeleteTransaction(ctx, id); err != nil {
			res.Failed[id] = err
			slog.ErrorContext(ctx, "Bulk delete failed for transaction", "transaction_id", id, "error", err)
			continue
		}
		res.Deleted = append(res.Deleted, id)
	}
	return res
}

// DeleteProject removes a project and everything under it as a sequence
// of independent deletes: transactions, milestones, action items, then
// the project row. There is no cross-step atomicity; on failure the
// error names the steps that already completed so the partial state is
// visible to the caller.
func (s *LedgerService) DeleteProject(ctx context.Context, id int64) error {
	if _, err := s.store.GetProject(ctx, id); err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	var done []string
	fail := func(step string, err error) error {
		if len(done) == 0 {
			return fmt.Errorf("delete project %d: %s failed (nothing deleted): %w", id, step, err)
		}
		return fmt.Errorf("delete project %d: %s failed after deleting %s: %w",
			id, step, strings.Join(done, ", "), err)
	}

	if err := s.store.DeleteTransactionsByProject(ctx, id); err != nil {
		return fail("transactions", err)
	}
	done = append(done, "transactions")

	if err := s.store.DeleteMilestonesByProject(ctx, id); err != nil {
		return fail("milestones", err)
	}
	done = append(done, "milestones")

	if err := s.store.DeleteActionItemsByProject(ctx, id); err != nil {
		return fail("action items", err)
	}
	done = append(done, "action items")

	if err := s.store.DeleteProject(ctx, id); err != nil {
		return fail("project row", err)
	}

	slog.InfoContext(ctx, "Project deleted with children", "project_id", id)
	return nil
}

func (s *LedgerService) publishMirror(ctx context.Context, id, version int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLedgerMirror(ctx, id, version); err != nil {
		// The row is saved locally; the worker's periodic scan will
		// pick it up even if the queue publish was lost.
		slog.ErrorContext(ctx, "Failed to publish mirror message",
			"transaction_id", id, "error", err)
	}
}
