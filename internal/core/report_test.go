package core

import (
	"testing"
	"time"
)

func TestPortfolioTotals(t *testing.T) {
	projects := []Project{
		{ID: 1, TotalValue: rupees(100000)},
		{ID: 2, TotalValue: rupees(50000)},
	}
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: PaymentReceived, Amount: rupees(60000), Date: NewDate(2025, 1, 5)},
		{ID: 2, ProjectID: 2, Type: Invoice, Amount: rupees(20000), Date: NewDate(2025, 1, 6)},
		{ID: 3, ProjectID: 2, Type: CreditNote, Amount: rupees(5000), Date: NewDate(2025, 1, 7)},
	}
	s := PortfolioTotals(projects, txns)
	if s.TotalBilled != rupees(150000) {
		t.Fatalf("total billed uses project values only: got %d", s.TotalBilled.Paise/100)
	}
	if s.TotalReceived != rupees(60000) {
		t.Fatalf("total received: got %d", s.TotalReceived.Paise/100)
	}
	if s.PendingReceivable != rupees(90000) {
		t.Fatalf("pending receivable: got %d", s.PendingReceivable.Paise/100)
	}
	if s.ProjectCount != 2 {
		t.Fatalf("project count: got %d", s.ProjectCount)
	}
}

func TestCollectionRate(t *testing.T) {
	if r := CollectionRate(rupees(50), rupees(200)); r != 25 {
		t.Fatalf("expected 25, got %f", r)
	}
	if r := CollectionRate(rupees(50), rupees(0)); r != 0 {
		t.Fatalf("zero total must yield 0, got %f", r)
	}
	if r := CollectionRate(rupees(0), rupees(0)); r != 0 {
		t.Fatalf("0/0 must yield 0, got %f", r)
	}
}

func TestMonthlyTrend(t *testing.T) {
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: BillSent, Amount: rupees(110000), Date: NewDate(2024, 10, 5)},
		{ID: 2, ProjectID: 1, Type: PaymentReceived, Amount: rupees(110000), Date: NewDate(2024, 11, 20)},
	}
	buckets := MonthlyTrend(txns, 12)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	oct, nov := buckets[0], buckets[1]
	if oct.Year != 2024 || oct.Month != 10 || oct.Billed != rupees(110000) || oct.Received.Paise != 0 {
		t.Fatalf("october bucket wrong: %+v", oct)
	}
	if nov.Year != 2024 || nov.Month != 11 || nov.Billed.Paise != 0 || nov.Received != rupees(110000) {
		t.Fatalf("november bucket wrong: %+v", nov)
	}
}

func TestMonthlyTrendLimit(t *testing.T) {
	var txns []Transaction
	for m := 1; m <= 12; m++ {
		txns = append(txns, Transaction{
			ID: int64(m), ProjectID: 1, Type: Invoice,
			Amount: rupees(1000), Date: NewDate(2024, m, 1),
		})
	}
	txns = append(txns, Transaction{ID: 13, ProjectID: 1, Type: Invoice, Amount: rupees(1000), Date: NewDate(2025, 1, 1)})

	buckets := MonthlyTrend(txns, 12)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	if buckets[0].Year != 2024 || buckets[0].Month != 2 {
		t.Fatalf("oldest bucket should be 2024-02, got %d-%d", buckets[0].Year, buckets[0].Month)
	}
	if buckets[11].Year != 2025 || buckets[11].Month != 1 {
		t.Fatalf("newest bucket should be 2025-01, got %d-%d", buckets[11].Year, buckets[11].Month)
	}
}

func TestUrgencyFor(t *testing.T) {
	cases := []struct {
		days       int
		hasInvoice bool
		want       Urgency
	}{
		{5, true, UrgencyRecent},
		{14, true, UrgencyRecent},
		{15, true, UrgencyNormal},
		{30, true, UrgencyNormal},
		{31, true, UrgencyFollowUp},
		{60, true, UrgencyFollowUp},
		{61, true, UrgencyOverdue},
		{365, true, UrgencyOverdue},
		{0, false, UrgencyNoInvoice},
	}
	for _, tc := range cases {
		if got := UrgencyFor(tc.days, tc.hasInvoice); got != tc.want {
			t.Fatalf("days=%d hasInvoice=%v: expected %s, got %s", tc.days, tc.hasInvoice, tc.want, got)
		}
	}
}

func TestAgingReportBuckets(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	invoiceDate := NewDate(2025, 1, 9) // 65 days before now

	projects := []Project{
		{ID: 1, Name: "Retainer", TotalValue: rupees(27500)},
		{ID: 2, Name: "Never billed", TotalValue: rupees(10000)},
		{ID: 3, Name: "Settled", TotalValue: rupees(5000)},
	}
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: Invoice, Amount: rupees(27500), Date: invoiceDate},
		{ID: 2, ProjectID: 3, Type: PaymentReceived, Amount: rupees(5000), Date: NewDate(2025, 2, 1)},
	}

	entries := AgingReport(projects, txns, now)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (settled project excluded), got %d", len(entries))
	}
	if entries[0].DaysSince != 65 {
		t.Fatalf("expected 65 days, got %d", entries[0].DaysSince)
	}
	if entries[0].Urgency != UrgencyOverdue {
		t.Fatalf("65 days should be overdue, got %s", entries[0].Urgency)
	}
	if entries[1].Urgency != UrgencyNoInvoice {
		t.Fatalf("never-billed project should be no_invoice, got %s", entries[1].Urgency)
	}

	buckets := AgingBuckets(entries)
	if buckets[2].Label != "61-90" || buckets[2].Count != 1 || buckets[2].Amount != rupees(27500) {
		t.Fatalf("65-day receivable belongs in 61-90: %+v", buckets[2])
	}
	if buckets[4].Label != "no_invoice" || buckets[4].Count != 1 {
		t.Fatalf("no-invoice bucket wrong: %+v", buckets[4])
	}
}

func TestAgingTieBreakHighestID(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	sameDay := NewDate(2025, 1, 1)
	projects := []Project{{ID: 1, TotalValue: rupees(1000)}}
	txns := []Transaction{
		{ID: 7, ProjectID: 1, Type: Invoice, Amount: rupees(500), Date: sameDay},
		{ID: 3, ProjectID: 1, Type: BillSent, Amount: rupees(500), Date: sameDay},
	}
	last, ok := lastInvoice(1, txns)
	if !ok || last.ID != 7 {
		t.Fatalf("expected ID 7 to win the tie, got %d (ok=%v)", last.ID, ok)
	}
	_ = AgingReport(projects, txns, now) // must not panic on ties
}

func TestPendingItemsSort(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	projects := []Project{
		{ID: 1, Name: "Small old", TotalValue: rupees(10000)},
		{ID: 2, Name: "Big recent", TotalValue: rupees(90000)},
		{ID: 3, Name: "Paid", TotalValue: rupees(0)},
	}
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: Invoice, Amount: rupees(1000), Date: NewDate(2024, 11, 1)}, // old invoice
		{ID: 2, ProjectID: 2, Type: Invoice, Amount: rupees(1000), Date: NewDate(2025, 2, 25)},
	}

	byAmount := PendingItems(projects, txns, now, PendingByAmount)
	if len(byAmount) != 2 {
		t.Fatalf("expected 2 pending items, got %d", len(byAmount))
	}
	if byAmount[0].Project.ID != 2 {
		t.Fatalf("amount sort should put the big project first")
	}

	byDays := PendingItems(projects, txns, now, PendingByDays)
	if byDays[0].Project.ID != 1 {
		t.Fatalf("days sort should put the old invoice first")
	}
	if byDays[0].Urgency != UrgencyOverdue {
		t.Fatalf("120-day-old invoice should be overdue, got %s", byDays[0].Urgency)
	}
}

func TestPendingTotals(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	projects := []Project{
		{ID: 1, Name: "Overdue", TotalValue: rupees(30000)},
		{ID: 2, Name: "Follow up", TotalValue: rupees(20000)},
		{ID: 3, Name: "Fresh", TotalValue: rupees(10000)},
		{ID: 4, Name: "Paid", TotalValue: rupees(0)},
	}
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: Invoice, Amount: rupees(0), Date: NewDate(2024, 11, 1)},  // 120 days
		{ID: 2, ProjectID: 2, Type: Invoice, Amount: rupees(0), Date: NewDate(2025, 1, 15)}, // 45 days
		{ID: 3, ProjectID: 3, Type: Invoice, Amount: rupees(0), Date: NewDate(2025, 2, 25)}, // 4 days
	}

	s := PendingTotals(PendingItems(projects, txns, now, PendingByAmount))
	if s.ProjectCount != 3 {
		t.Fatalf("expected 3 projects with dues, got %d", s.ProjectCount)
	}
	if s.TotalPending != rupees(60000) {
		t.Fatalf("total pending: got %d", s.TotalPending.Paise/100)
	}
	if s.OverdueAmount != rupees(30000) {
		t.Fatalf("overdue amount: got %d", s.OverdueAmount.Paise/100)
	}
	if s.FollowUpAmount != rupees(20000) {
		t.Fatalf("follow-up amount: got %d", s.FollowUpAmount.Paise/100)
	}
}

func TestPendingTotalsEmpty(t *testing.T) {
	s := PendingTotals(nil)
	if s.ProjectCount != 0 || s.TotalPending.Paise != 0 {
		t.Fatalf("empty items should total zero: %+v", s)
	}
}

func TestProjectPerformance(t *testing.T) {
	projects := []Project{{ID: 1, Name: "A", TotalValue: rupees(200000)}}
	txns := []Transaction{
		{ID: 1, ProjectID: 1, Type: PaymentReceived, Amount: rupees(50000), Date: NewDate(2025, 1, 1)},
	}
	rows := ProjectPerformance(projects, txns)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row")
	}
	if rows[0].Outstanding != rupees(150000) {
		t.Fatalf("outstanding: got %d", rows[0].Outstanding.Paise/100)
	}
	if rows[0].CollectionRate != 25 {
		t.Fatalf("collection rate: got %f", rows[0].CollectionRate)
	}
}

func TestQuotationTotals(t *testing.T) {
	quotes := []Quotation{
		{ID: 1, Amount: rupees(10000), Status: QuoteAccepted},
		{ID: 2, Amount: rupees(20000), Status: QuoteSent},
		{ID: 3, Amount: rupees(5000), Status: QuoteRejected},
		{ID: 4, Amount: rupees(7000), Status: QuoteRevised},
	}
	s := QuotationTotals(quotes)
	if s.TotalQuoted != rupees(42000) {
		t.Fatalf("total quoted: got %d", s.TotalQuoted.Paise/100)
	}
	if s.Accepted != rupees(10000) {
		t.Fatalf("accepted: got %d", s.Accepted.Paise/100)
	}
	if s.AwaitingReply != rupees(27000) {
		t.Fatalf("awaiting: got %d", s.AwaitingReply.Paise/100)
	}
}
