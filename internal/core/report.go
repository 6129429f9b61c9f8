package core

import (
	"sort"
	"time"
)

// PortfolioSummary is the dashboard headline. TotalBilled here is the sum
// of agreed project values, not the per-project billed totals; the two
// definitions intentionally differ (see ProjectTotals).
type PortfolioSummary struct {
	TotalBilled       Money
	TotalReceived     Money
	PendingReceivable Money
	ProjectCount      int
}

// PortfolioTotals aggregates every project and transaction into the
// dashboard headline numbers.
func PortfolioTotals(projects []Project, txns []Transaction) PortfolioSummary {
	var billed, received int64
	for _, p := range projects {
		billed += p.TotalValue.Paise
	}
	for _, t := range txns {
		if t.Type.Direction() == DirectionReceived {
			received += t.Amount.Paise
		}
	}
	return PortfolioSummary{
		TotalBilled:       Money{Paise: billed},
		TotalReceived:     Money{Paise: received},
		PendingReceivable: Money{Paise: billed - received},
		ProjectCount:      len(projects),
	}
}

// CollectionRate is received over total as a percentage. A zero total
// yields zero, never a division error.
func CollectionRate(received, total Money) float64 {
	if total.Paise == 0 {
		return 0
	}
	return float64(received.Paise) / float64(total.Paise) * 100
}

// MonthBucket sums billed and received amounts for one calendar month.
type MonthBucket struct {
	Year     int
	Month    int // 1-12
	Billed   Money
	Received Money
}

// MonthlyTrend buckets transactions by calendar month, ordered
// chronologically. A positive limit keeps only the most recent buckets.
// Months with no transactions do not appear.
func MonthlyTrend(txns []Transaction, limit int) []MonthBucket {
	type key struct{ y, m int }
	sums := make(map[key]*MonthBucket)
	for _, t := range txns {
		if t.Date.IsZero() {
			continue
		}
		k := key{t.Date.Year(), int(t.Date.Time.Month())}
		b := sums[k]
		if b == nil {
			b = &MonthBucket{Year: k.y, Month: k.m}
			sums[k] = b
		}
		switch t.Type.Direction() {
		case DirectionBilled:
			b.Billed.Paise += t.Amount.Paise
		case DirectionReceived:
			b.Received.Paise += t.Amount.Paise
		}
	}
	out := make([]MonthBucket, 0, len(sums))
	for _, b := range sums {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Urgency labels for receivable follow-up, by days since last invoice.
type Urgency string

const (
	UrgencyRecent    Urgency = "recent"    // invoiced within 14 days
	UrgencyNormal    Urgency = "normal"    // 15-30 days
	UrgencyFollowUp  Urgency = "follow_up" // 31-60 days
	UrgencyOverdue   Urgency = "overdue"   // over 60 days
	UrgencyNoInvoice Urgency = "no_invoice"
)

// UrgencyFor maps days-since-invoice to a label. hasInvoice false means
// the project was never billed.
func UrgencyFor(days int, hasInvoice bool) Urgency {
	if !hasInvoice {
		return UrgencyNoInvoice
	}
	switch {
	case days <= 14:
		return UrgencyRecent
	case days <= 30:
		return UrgencyNormal
	case days <= 60:
		return UrgencyFollowUp
	}
	return UrgencyOverdue
}

// AgingEntry is one project's position in the aging report. Outstanding
// follows the report definition, agreed value minus received; credits do
// not enter here.
type AgingEntry struct {
	Project         Project
	Outstanding     Money
	LastInvoiceDate Date
	DaysSince       int
	HasInvoice      bool
	Urgency         Urgency
}

// AgingBucket groups aging entries by days outstanding.
type AgingBucket struct {
	Label  string // "0-30", "31-60", "61-90", "90+", "no_invoice"
	Count  int
	Amount Money
}

// AgingReport computes per-project outstanding age as of now. Only
// projects with a positive outstanding balance appear. The reference
// transaction is the most recent billed one; equal dates are broken by
// the higher transaction ID.
func AgingReport(projects []Project, txns []Transaction, now time.Time) []AgingEntry {
	entries := make([]AgingEntry, 0, len(projects))
	for _, p := range projects {
		outstanding := p.TotalValue.Paise - ReceivedFor(p.ID, txns).Paise
		if outstanding <= 0 {
			continue
		}
		last, ok := lastInvoice(p.ID, txns)
		e := AgingEntry{
			Project:     p,
			Outstanding: Money{Paise: outstanding},
			HasInvoice:  ok,
		}
		if ok {
			e.LastInvoiceDate = last.Date
			e.DaysSince = daysBetween(last.Date.Time, now)
		}
		e.Urgency = UrgencyFor(e.DaysSince, ok)
		entries = append(entries, e)
	}
	return entries
}

// AgingBuckets folds aging entries into the standard 0-30 / 31-60 /
// 61-90 / 90+ ranges, with never-invoiced projects in their own bucket.
func AgingBuckets(entries []AgingEntry) []AgingBucket {
	buckets := []AgingBucket{
		{Label: "0-30"}, {Label: "31-60"}, {Label: "61-90"}, {Label: "90+"}, {Label: "no_invoice"},
	}
	for _, e := range entries {
		var idx int
		switch {
		case !e.HasInvoice:
			idx = 4
		case e.DaysSince <= 30:
			idx = 0
		case e.DaysSince <= 60:
			idx = 1
		case e.DaysSince <= 90:
			idx = 2
		default:
			idx = 3
		}
		buckets[idx].Count++
		buckets[idx].Amount.Paise += e.Outstanding.Paise
	}
	return buckets
}

// PendingSort selects the ordering of the pending payments view.
type PendingSort string

const (
	PendingByAmount PendingSort = "amount"
	PendingByDays   PendingSort = "days"
)

// PendingItem is one project's receivable with supporting detail for the
// pending payments view.
type PendingItem struct {
	Project         Project
	Balance         ProjectBalance
	Invoices        []Transaction
	Payments        []Transaction
	LastInvoiceDate Date
	DaysSince       int
	HasInvoice      bool
	Urgency         Urgency
}

// PendingItems builds the pending payments view: every project whose
// pending balance is positive, with its billed and received transactions
// split out, sorted descending by amount or by age. The sort is stable.
func PendingItems(projects []Project, txns []Transaction, now time.Time, by PendingSort) []PendingItem {
	items := make([]PendingItem, 0, len(projects))
	for _, p := range projects {
		bal := ProjectTotals(p, txns)
		if bal.Pending.Paise <= 0 {
			continue
		}
		item := PendingItem{Project: p, Balance: bal}
		for _, t := range txns {
			if t.ProjectID != p.ID {
				continue
			}
			switch t.Type.Direction() {
			case DirectionBilled:
				item.Invoices = append(item.Invoices, t)
			case DirectionReceived:
				item.Payments = append(item.Payments, t)
			}
		}
		if last, ok := lastInvoice(p.ID, txns); ok {
			item.LastInvoiceDate = last.Date
			item.DaysSince = daysBetween(last.Date.Time, now)
			item.HasInvoice = true
		}
		item.Urgency = UrgencyFor(item.DaysSince, item.HasInvoice)
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if by == PendingByDays {
			return items[i].DaysSince > items[j].DaysSince
		}
		return items[i].Balance.Pending.Paise > items[j].Balance.Pending.Paise
	})
	return items
}

// PendingSummary totals the pending view header cards.
type PendingSummary struct {
	TotalPending   Money
	ProjectCount   int
	OverdueAmount  Money // urgency over 60 days
	FollowUpAmount Money // urgency 31-60 days
}

// PendingTotals folds the pending items into the header cards: everything
// still owed, how many projects owe, and the share sitting in the overdue
// and follow-up urgency bands.
func PendingTotals(items []PendingItem) PendingSummary {
	var s PendingSummary
	for _, item := range items {
		s.TotalPending.Paise += item.Balance.Pending.Paise
		s.ProjectCount++
		switch item.Urgency {
		case UrgencyOverdue:
			s.OverdueAmount.Paise += item.Balance.Pending.Paise
		case UrgencyFollowUp:
			s.FollowUpAmount.Paise += item.Balance.Pending.Paise
		}
	}
	return s
}

// PerformanceRow is one project's line in the reports table.
type PerformanceRow struct {
	Project        Project
	Received       Money
	Outstanding    Money
	CollectionRate float64
}

// ProjectPerformance computes received, outstanding, and collection rate
// per project for the reports view.
func ProjectPerformance(projects []Project, txns []Transaction) []PerformanceRow {
	rows := make([]PerformanceRow, 0, len(projects))
	for _, p := range projects {
		received := ReceivedFor(p.ID, txns)
		rows = append(rows, PerformanceRow{
			Project:        p,
			Received:       received,
			Outstanding:    Money{Paise: p.TotalValue.Paise - received.Paise},
			CollectionRate: CollectionRate(received, p.TotalValue),
		})
	}
	return rows
}

// QuoteSummary totals quotations by outcome for the list header cards.
type QuoteSummary struct {
	TotalQuoted   Money
	Accepted      Money
	AwaitingReply Money // sent or revised
	Count         int
}

func QuotationTotals(quotes []Quotation) QuoteSummary {
	var s QuoteSummary
	for _, q := range quotes {
		s.TotalQuoted.Paise += q.Amount.Paise
		s.Count++
		switch q.Status {
		case QuoteAccepted:
			s.Accepted.Paise += q.Amount.Paise
		case QuoteSent, QuoteRevised:
			s.AwaitingReply.Paise += q.Amount.Paise
		}
	}
	return s
}

// lastInvoice returns the most recent billed-direction transaction of a
// project. Equal dates are broken by the higher ID (the later insert).
func lastInvoice(projectID int64, txns []Transaction) (Transaction, bool) {
	var best Transaction
	found := false
	for _, t := range txns {
		if t.ProjectID != projectID || t.Type.Direction() != DirectionBilled {
			continue
		}
		if !found ||
			t.Date.After(best.Date.Time) ||
			(t.Date.Equal(best.Date.Time) && t.ID > best.ID) {
			best = t
			found = true
		}
	}
	return best, found
}

func daysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
