// Package memory is an in-process ledger mirror used in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"hisab/internal/core"
)

type Row struct {
	Transaction core.Transaction
	ProjectName string
}

type Mirror struct {
	mu   sync.Mutex
	rows []Row

	// FailNext makes the next append fail, for error-path tests.
	FailNext bool
}

func New() *Mirror {
	return &Mirror{}
}

func (m *Mirror) AppendTransaction(_ context.Context, t core.Transaction, projectName string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return "", fmt.Errorf("mirror unavailable")
	}
	m.rows = append(m.rows, Row{Transaction: t, ProjectName: projectName})
	return fmt.Sprintf("mem:%d", len(m.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (m *Mirror) Rows() []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Row(nil), m.rows...)
}
