package core

// Direction classifies what a transaction type does to a project balance.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionBilled
	DirectionReceived
	DirectionCredit
)

// Direction is the single place transaction types are classified.
// Every aggregation below goes through it; views never keep their own
// type lists.
func (t TransactionType) Direction() Direction {
	switch t {
	case BillSent, Invoice:
		return DirectionBilled
	case PaymentReceived, Advance, ByHand:
		return DirectionReceived
	case CreditNote, Refund:
		return DirectionCredit
	}
	return DirectionNone
}

// ProjectBalance is the per-project money position. TotalBilled folds the
// agreed project value in with billed transactions, so a project with no
// transactions is pending for its full value.
type ProjectBalance struct {
	TotalBilled   Money
	TotalReceived Money
	TotalCredits  Money
	Pending       Money
}

// ProjectTotals aggregates the transactions of a single project.
// Only transactions belonging to the project count; the invariant
// TotalBilled - TotalReceived - TotalCredits == Pending holds exactly.
func ProjectTotals(p Project, txns []Transaction) ProjectBalance {
	var billed, received, credits int64
	for _, t := range txns {
		if t.ProjectID != p.ID {
			continue
		}
		switch t.Type.Direction() {
		case DirectionBilled:
			billed += t.Amount.Paise
		case DirectionReceived:
			received += t.Amount.Paise
		case DirectionCredit:
			credits += t.Amount.Paise
		}
	}
	totalBilled := p.TotalValue.Paise + billed
	return ProjectBalance{
		TotalBilled:   Money{Paise: totalBilled},
		TotalReceived: Money{Paise: received},
		TotalCredits:  Money{Paise: credits},
		Pending:       Money{Paise: totalBilled - received - credits},
	}
}

// ReceivedFor sums received-direction transactions of one project.
func ReceivedFor(projectID int64, txns []Transaction) Money {
	var sum int64
	for _, t := range txns {
		if t.ProjectID == projectID && t.Type.Direction() == DirectionReceived {
			sum += t.Amount.Paise
		}
	}
	return Money{Paise: sum}
}

// ProjectRow carries a project with its received and balance columns, so
// list views sort and render without re-walking the transaction set.
// Balance is the agreed value minus received, the list-view definition
// (credits do not enter here, matching the aging report).
type ProjectRow struct {
	Project  Project
	Received Money
	Balance  Money
}

// BuildProjectRows derives the list rows for a set of projects.
func BuildProjectRows(projects []Project, txns []Transaction) []ProjectRow {
	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		received := ReceivedFor(p.ID, txns)
		rows = append(rows, ProjectRow{
			Project:  p,
			Received: received,
			Balance:  Money{Paise: p.TotalValue.Paise - received.Paise},
		})
	}
	return rows
}

// LedgerRow pairs a transaction with the balance after it.
type LedgerRow struct {
	Transaction Transaction
	Running     Money
}

// RunningTotals annotates a newest-first transaction list with cumulative
// balances computed from the oldest entry up. Received amounts add,
// billed amounts subtract, and credits add back (a credit note reduces
// what is owed). The input order is preserved.
func RunningTotals(txns []Transaction) []LedgerRow {
	rows := make([]LedgerRow, len(txns))
	var running int64
	// Walk oldest-first (the tail of a newest-first list).
	for i := len(txns) - 1; i >= 0; i-- {
		t := txns[i]
		switch t.Type.Direction() {
		case DirectionReceived, DirectionCredit:
			running += t.Amount.Paise
		case DirectionBilled:
			running -= t.Amount.Paise
		}
		rows[i] = LedgerRow{Transaction: t, Running: Money{Paise: running}}
	}
	return rows
}
