package sheets

import (
	"context"

	"hisab/internal/core"
)

// LedgerMirror is the outbound port for the external ledger copy. The
// mirror is append-only bookkeeping; it is not a source of truth.
type LedgerMirror interface {
	// AppendTransaction writes one ledger row and returns a row
	// reference (e.g. "Ledger!A7") stored back on the transaction.
	AppendTransaction(ctx context.Context, t core.Transaction, projectName string) (rowRef string, err error)
}
