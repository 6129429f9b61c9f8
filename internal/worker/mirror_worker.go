package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hisab/internal/amqp"
	"hisab/internal/log"
	"hisab/internal/records"
	"hisab/internal/sheets"
	"hisab/internal/storage"
)

// MirrorWorker copies saved transactions into the external ledger sheet.
// Messages drive the hot path; a periodic scan of pending rows catches
// anything the broker lost.
type MirrorWorker struct {
	store     *storage.SQLiteRepository
	mirror    sheets.LedgerMirror
	batchSize int
}

func NewMirrorWorker(store *storage.SQLiteRepository, mirror sheets.LedgerMirror, batchSize int) *MirrorWorker {
	return &MirrorWorker{
		store:     store,
		mirror:    mirror,
		batchSize: batchSize,
	}
}

// HandleMirrorMessage processes one mirror message. Transactions deleted
// before the message arrived are acked and skipped; append failures mark
// the row and return the error so the broker redelivers.
func (w *MirrorWorker) HandleMirrorMessage(ctx context.Context, msg *amqp.LedgerMirrorMessage) error {
	slog.InfoContext(ctx, "Processing mirror message",
		log.FieldTransactionID, msg.ID,
		"version", msg.Version)

	err := w.mirrorTransaction(ctx, msg.ID)
	if errors.Is(err, records.ErrNotFound) {
		slog.WarnContext(ctx, "Transaction gone before mirror, skipping",
			log.FieldTransactionID, msg.ID)
		return nil
	}
	return err
}

// RunPendingScan re-mirrors rows stuck in pending state until the context
// ends. This is the backstop for lost or never-published messages.
func (w *MirrorWorker) RunPendingScan(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ScanPending(ctx); err != nil {
				slog.ErrorContext(ctx, "Pending mirror scan failed",
					log.FieldError, err)
			}
		}
	}
}

// ScanPending mirrors one batch of pending transactions, oldest first.
// Individual failures are logged and do not stop the batch.
func (w *MirrorWorker) ScanPending(ctx context.Context) error {
	pending, err := w.store.PendingMirrorTransactions(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Mirroring pending transactions",
		"count", len(pending))

	for _, p := range pending {
		if err := w.mirrorTransaction(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to mirror pending transaction",
				log.FieldTransactionID, p.ID,
				log.FieldError, err)
		}
	}
	return nil
}

func (w *MirrorWorker) mirrorTransaction(ctx context.Context, id int64) error {
	state, err := w.store.MirrorState(ctx, id)
	if err != nil {
		return fmt.Errorf("mirror state: %w", err)
	}
	if state == storage.MirrorSynced {
		// Already mirrored, likely the scan beat the message.
		return nil
	}

	txn, err := w.store.GetTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	projectName := "Unknown Project"
	if project, err := w.store.GetProject(ctx, txn.ProjectID); err == nil {
		projectName = project.Name
	}

	ref, err := w.mirror.AppendTransaction(ctx, txn, projectName)
	if err != nil {
		if markErr := w.store.MarkMirrorError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to record mirror error",
				log.FieldTransactionID, id,
				log.FieldError, markErr)
		}
		return fmt.Errorf("append to ledger mirror: %w", err)
	}

	if err := w.store.MarkMirrored(ctx, id, ref); err != nil {
		return fmt.Errorf("mark mirrored: %w", err)
	}

	slog.InfoContext(ctx, "Transaction mirrored",
		log.FieldTransactionID, id,
		log.FieldMirrorRef, ref)
	return nil
}
