// Package memory is an in-process record store used by tests and the
// default development backend.
package memory

import (
	"context"
	"sync"
	"time"

	"hisab/internal/core"
	"hisab/internal/records"
)

type Store struct {
	mu     sync.Mutex
	nextID int64

	projects    []core.Project
	txns        []core.Transaction
	milestones  []core.Milestone
	actionItems []core.ActionItem
	quotations  []core.Quotation
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) ListProjects(_ context.Context) ([]core.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Project(nil), s.projects...), nil
}

func (s *Store) GetProject(_ context.Context, id int64) (core.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return core.Project{}, records.ErrNotFound
}

func (s *Store) InsertProject(_ context.Context, p core.Project) (core.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.projects = append(s.projects, p)
	return p, nil
}

func (s *Store) UpdateProject(_ context.Context, p core.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			p.CreatedAt = s.projects[i].CreatedAt
			s.projects[i] = p
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteProject(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context, f core.TransactionFilter) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.FilterTransactions(s.txns, f), nil
}

func (s *Store) GetTransaction(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, records.ErrNotFound
}

func (s *Store) InsertTransaction(_ context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.txns = append(s.txns, t)
	return t, nil
}

func (s *Store) UpdateTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txns {
		if s.txns[i].ID == t.ID {
			t.CreatedAt = s.txns[i].CreatedAt
			s.txns[i] = t
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txns {
		if s.txns[i].ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteTransactionsByProject(_ context.Context, projectID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.txns[:0]
	for _, t := range s.txns {
		if t.ProjectID != projectID {
			kept = append(kept, t)
		}
	}
	s.txns = kept
	return nil
}

func (s *Store) ListMilestones(_ context.Context, projectID int64) ([]core.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Milestone
	for _, m := range s.milestones {
		if projectID == 0 || m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) InsertMilestone(_ context.Context, m core.Milestone) (core.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.id()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.milestones = append(s.milestones, m)
	return m, nil
}

func (s *Store) UpdateMilestone(_ context.Context, m core.Milestone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.milestones {
		if s.milestones[i].ID == m.ID {
			m.CreatedAt = s.milestones[i].CreatedAt
			s.milestones[i] = m
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteMilestone(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			s.milestones = append(s.milestones[:i], s.milestones[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteMilestonesByProject(_ context.Context, projectID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.milestones[:0]
	for _, m := range s.milestones {
		if m.ProjectID != projectID {
			kept = append(kept, m)
		}
	}
	s.milestones = kept
	return nil
}

func (s *Store) ListActionItems(_ context.Context, projectID int64) ([]core.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.ActionItem
	for _, a := range s.actionItems {
		if projectID == 0 || a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) GetActionItem(_ context.Context, id int64) (core.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.actionItems {
		if a.ID == id {
			return a, nil
		}
	}
	return core.ActionItem{}, records.ErrNotFound
}

func (s *Store) InsertActionItem(_ context.Context, a core.ActionItem) (core.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	s.actionItems = append(s.actionItems, a)
	return a, nil
}

func (s *Store) UpdateActionItem(_ context.Context, a core.ActionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.actionItems {
		if s.actionItems[i].ID == a.ID {
			a.CreatedAt = s.actionItems[i].CreatedAt
			s.actionItems[i] = a
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteActionItem(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.actionItems {
		if s.actionItems[i].ID == id {
			s.actionItems = append(s.actionItems[:i], s.actionItems[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteActionItemsByProject(_ context.Context, projectID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.actionItems[:0]
	for _, a := range s.actionItems {
		if a.ProjectID != projectID {
			kept = append(kept, a)
		}
	}
	s.actionItems = kept
	return nil
}

func (s *Store) ListQuotations(_ context.Context) ([]core.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Quotation(nil), s.quotations...), nil
}

func (s *Store) GetQuotation(_ context.Context, id int64) (core.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.quotations {
		if q.ID == id {
			return q, nil
		}
	}
	return core.Quotation{}, records.ErrNotFound
}

func (s *Store) InsertQuotation(_ context.Context, q core.Quotation) (core.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.id()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	s.quotations = append(s.quotations, q)
	return q, nil
}

func (s *Store) UpdateQuotation(_ context.Context, q core.Quotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotations {
		if s.quotations[i].ID == q.ID {
			q.CreatedAt = s.quotations[i].CreatedAt
			s.quotations[i] = q
			return nil
		}
	}
	return records.ErrNotFound
}

func (s *Store) DeleteQuotation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotations {
		if s.quotations[i].ID == id {
			s.quotations = append(s.quotations[:i], s.quotations[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}
