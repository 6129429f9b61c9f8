package core

import (
	"sort"
	"strings"
)

// MatchesSearch reports whether the term appears in any field,
// case-insensitively. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// TransactionFilter narrows a transaction list. Zero values mean no
// constraint; an empty filter returns the input unchanged.
type TransactionFilter struct {
	ProjectID int64
	Type      TransactionType
	From      Date
	To        Date
	Search    string
}

// FilterTransactions applies every set criterion conjunctively.
// The date range is inclusive at both ends.
func FilterTransactions(txns []Transaction, f TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if f.ProjectID != 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if !f.From.IsZero() && t.Date.Before(f.From.Time) {
			continue
		}
		if !f.To.IsZero() && t.Date.After(f.To.Time) {
			continue
		}
		if !MatchesSearch(f.Search, t.Notes, string(t.Type), string(t.Mode)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterProjects narrows by status and searches name, client, and notes.
func FilterProjects(projects []Project, status ProjectStatus, search string) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if !MatchesSearch(search, p.Name, p.ClientName, p.Notes) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterQuotations narrows by status and searches description and notes.
func FilterQuotations(quotes []Quotation, status QuoteStatus, search string) []Quotation {
	out := make([]Quotation, 0, len(quotes))
	for _, q := range quotes {
		if status != "" && q.Status != status {
			continue
		}
		if !MatchesSearch(search, q.Description, q.Notes) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ProjectSortKey names a sortable column of the project list.
type ProjectSortKey string

const (
	SortByName    ProjectSortKey = "name"
	SortByClient  ProjectSortKey = "client"
	SortByValue   ProjectSortKey = "value"
	SortByStatus  ProjectSortKey = "status"
	SortByDate    ProjectSortKey = "date"
	SortByBalance ProjectSortKey = "balance"
)

// projectLess returns the comparator for a project-field sort key, or
// nil for keys it does not know (including the derived row keys).
func projectLess(key ProjectSortKey) func(a, b Project) bool {
	switch key {
	case SortByName:
		return func(a, b Project) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByClient:
		return func(a, b Project) bool {
			return strings.ToLower(a.ClientName) < strings.ToLower(b.ClientName)
		}
	case SortByValue:
		return func(a, b Project) bool { return a.TotalValue.Paise < b.TotalValue.Paise }
	case SortByStatus:
		return func(a, b Project) bool { return a.Status < b.Status }
	case SortByDate:
		return func(a, b Project) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	return nil
}

// SortProjects orders projects by the given key. String keys compare
// case-insensitively; the sort is stable, so rows equal under the key
// keep their relative order. Unknown keys leave the order untouched.
func SortProjects(projects []Project, key ProjectSortKey, desc bool) {
	less := projectLess(key)
	if less == nil {
		return
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if desc {
			return less(projects[j], projects[i])
		}
		return less(projects[i], projects[j])
	})
}

// SortProjectRows orders list rows. The balance key compares the derived
// column; every other key falls through to the project fields. Unknown
// keys leave the order untouched.
func SortProjectRows(rows []ProjectRow, key ProjectSortKey, desc bool) {
	var less func(a, b ProjectRow) bool
	if key == SortByBalance {
		less = func(a, b ProjectRow) bool { return a.Balance.Paise < b.Balance.Paise }
	} else {
		pl := projectLess(key)
		if pl == nil {
			return
		}
		less = func(a, b ProjectRow) bool { return pl(a.Project, b.Project) }
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// SortTransactionsNewestFirst orders by date descending, ties broken by
// the higher ID first. This is the ledger display order.
func SortTransactionsNewestFirst(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date.Time) {
			return txns[i].Date.After(txns[j].Date.Time)
		}
		return txns[i].ID > txns[j].ID
	})
}

// Selection tracks checked row IDs for bulk operations.
type Selection map[int64]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips one ID in or out of the selection.
func (s Selection) Toggle(id int64) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAll implements select-all over the currently visible rows: if
// every visible ID is already selected it clears them, otherwise it
// selects them all. Rows outside the visible set are untouched.
func (s Selection) ToggleAll(visible []int64) {
	all := len(visible) > 0
	for _, id := range visible {
		if !s.Has(id) {
			all = false
			break
		}
	}
	for _, id := range visible {
		if all {
			delete(s, id)
		} else {
			s[id] = struct{}{}
		}
	}
}

// IDs returns the selected IDs in ascending order.
func (s Selection) IDs() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
