// Package records defines the storage ports the application writes
// through: one store per collection plus blob storage for attachments.
package records

import (
	"context"
	"errors"

	"hisab/internal/core"
)

// ErrNotFound is returned when a row does not exist. Implementations
// wrap it so callers can use errors.Is.
var ErrNotFound = errors.New("record not found")

type (
	ProjectStore interface {
		ListProjects(ctx context.Context) ([]core.Project, error)
		GetProject(ctx context.Context, id int64) (core.Project, error)
		InsertProject(ctx context.Context, p core.Project) (core.Project, error)
		UpdateProject(ctx context.Context, p core.Project) error
		DeleteProject(ctx context.Context, id int64) error
	}

	TransactionStore interface {
		ListTransactions(ctx context.Context, f core.TransactionFilter) ([]core.Transaction, error)
		GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
		InsertTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
		UpdateTransaction(ctx context.Context, t core.Transaction) error
		DeleteTransaction(ctx context.Context, id int64) error
		DeleteTransactionsByProject(ctx context.Context, projectID int64) error
	}

	MilestoneStore interface {
		ListMilestones(ctx context.Context, projectID int64) ([]core.Milestone, error)
		InsertMilestone(ctx context.Context, m core.Milestone) (core.Milestone, error)
		UpdateMilestone(ctx context.Context, m core.Milestone) error
		DeleteMilestone(ctx context.Context, id int64) error
		DeleteMilestonesByProject(ctx context.Context, projectID int64) error
	}

	ActionItemStore interface {
		// ListActionItems with projectID 0 returns every item.
		ListActionItems(ctx context.Context, projectID int64) ([]core.ActionItem, error)
		GetActionItem(ctx context.Context, id int64) (core.ActionItem, error)
		InsertActionItem(ctx context.Context, a core.ActionItem) (core.ActionItem, error)
		UpdateActionItem(ctx context.Context, a core.ActionItem) error
		DeleteActionItem(ctx context.Context, id int64) error
		DeleteActionItemsByProject(ctx context.Context, projectID int64) error
	}

	QuotationStore interface {
		ListQuotations(ctx context.Context) ([]core.Quotation, error)
		GetQuotation(ctx context.Context, id int64) (core.Quotation, error)
		InsertQuotation(ctx context.Context, q core.Quotation) (core.Quotation, error)
		UpdateQuotation(ctx context.Context, q core.Quotation) error
		DeleteQuotation(ctx context.Context, id int64) error
	}

	// Store is the full record store a backend must provide.
	Store interface {
		ProjectStore
		TransactionStore
		MilestoneStore
		ActionItemStore
		QuotationStore
	}

	// BlobStore holds uploaded attachments. Upload returns the location
	// reference stored on the owning record.
	BlobStore interface {
		Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
		PublicURL(bucket, path string) string
		Delete(ctx context.Context, bucket, path string) error
	}
)
