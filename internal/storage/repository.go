// Package storage is the SQLite record store.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hisab/internal/core"
	"hisab/internal/records"

	_ "modernc.org/sqlite"
)

// Mirror states for the external ledger mirror.
const (
	MirrorPending = "pending"
	MirrorSynced  = "synced"
	MirrorError   = "error"
)

type SQLiteRepository struct {
	db *sql.DB
}

// PendingMirrorTransaction is the minimal row shape the mirror worker
// needs to build queue messages.
type PendingMirrorTransaction struct {
	ID        int64
	Version   int64
	CreatedAt time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const timeFormat = time.RFC3339

func encodeTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.UTC().Format(timeFormat)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func decodeDate(s string) core.Date {
	if s == "" {
		return core.Date{}
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}
	}
	return d
}

// --- projects ---

const projectColumns = "id, name, client_name, notes, total_value_paise, status, quotation_ref, created_at"

func scanProject(row interface{ Scan(...any) error }) (core.Project, error) {
	var p core.Project
	var createdAt string
	err := row.Scan(&p.ID, &p.Name, &p.ClientName, &p.Notes, &p.TotalValue.Paise,
		&p.Status, &p.QuotationRef, &createdAt)
	if err != nil {
		return core.Project{}, err
	}
	p.CreatedAt = decodeTime(createdAt)
	return p, nil
}

func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]core.Project, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+projectColumns+" FROM projects ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []core.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (core.Project, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Project{}, fmt.Errorf("project %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return core.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) InsertProject(ctx context.Context, p core.Project) (core.Project, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, client_name, notes, total_value_paise, status, quotation_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.ClientName, p.Notes, p.TotalValue.Paise, p.Status, p.QuotationRef, encodeTime(p.CreatedAt))
	if err != nil {
		return core.Project{}, fmt.Errorf("insert project: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return core.Project{}, fmt.Errorf("insert project id: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) UpdateProject(ctx context.Context, p core.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, client_name = ?, notes = ?, total_value_paise = ?, status = ?, quotation_ref = ?
		 WHERE id = ?`,
		p.Name, p.ClientName, p.Notes, p.TotalValue.Paise, p.Status, p.QuotationRef, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return requireRow(res, p.ID)
}

func (r *SQLiteRepository) DeleteProject(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return requireRow(res, id)
}

// --- transactions ---

const txnColumns = "id, project_id, date, type, amount_paise, mode, notes, attachment_ref, documents, created_at"

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var t core.Transaction
	var date, docs, createdAt string
	err := row.Scan(&t.ID, &t.ProjectID, &date, &t.Type, &t.Amount.Paise,
		&t.Mode, &t.Notes, &t.AttachmentRef, &docs, &createdAt)
	if err != nil {
		return core.Transaction{}, err
	}
	t.Date = decodeDate(date)
	t.CreatedAt = decodeTime(createdAt)
	if docs != "" && docs != "[]" {
		if err := json.Unmarshal([]byte(docs), &t.Documents); err != nil {
			return core.Transaction{}, fmt.Errorf("decode documents: %w", err)
		}
	}
	return t, nil
}

func encodeDocuments(docs []core.DocumentRef) (string, error) {
	if len(docs) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode documents: %w", err)
	}
	return string(b), nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, f core.TransactionFilter) ([]core.Transaction, error) {
	query := "SELECT " + txnColumns + " FROM transactions"
	var conds []string
	var args []any
	if f.ProjectID != 0 {
		conds = append(conds, "project_id = ?")
		args = append(args, f.ProjectID)
	}
	if f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, f.Type)
	}
	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.String())
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, f.To.String())
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Text search is not a SQL concern; the shared matcher owns it.
	if f.Search != "" {
		out = core.FilterTransactions(out, core.TransactionFilter{Search: f.Search})
	}
	return out, nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+txnColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) InsertTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	docs, err := encodeDocuments(t.Documents)
	if err != nil {
		return core.Transaction{}, err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (project_id, date, type, amount_paise, mode, notes, attachment_ref, documents, mirror_state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ProjectID, t.Date.String(), t.Type, t.Amount.Paise, t.Mode, t.Notes,
		t.AttachmentRef, docs, MirrorPending, encodeTime(t.CreatedAt))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction id: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	docs, err := encodeDocuments(t.Documents)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET project_id = ?, date = ?, type = ?, amount_paise = ?, mode = ?, notes = ?,
		     attachment_ref = ?, documents = ?, version = version + 1, mirror_state = ?
		 WHERE id = ?`,
		t.ProjectID, t.Date.String(), t.Type, t.Amount.Paise, t.Mode, t.Notes,
		t.AttachmentRef, docs, MirrorPending, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res, t.ID)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteRepository) DeleteTransactionsByProject(ctx context.Context, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("delete transactions by project: %w", err)
	}
	return nil
}

// --- milestones ---

const milestoneColumns = "id, project_id, name, percentage, amount_paise, status, due_date, notes, created_at"

func scanMilestone(row interface{ Scan(...any) error }) (core.Milestone, error) {
	var m core.Milestone
	var due, createdAt string
	err := row.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Percentage, &m.Amount.Paise,
		&m.Status, &due, &m.Notes, &createdAt)
	if err != nil {
		return core.Milestone{}, err
	}
	m.DueDate = decodeDate(due)
	m.CreatedAt = decodeTime(createdAt)
	return m, nil
}

func (r *SQLiteRepository) ListMilestones(ctx context.Context, projectID int64) ([]core.Milestone, error) {
	query := "SELECT " + milestoneColumns + " FROM milestones"
	var args []any
	if projectID != 0 {
		query += " WHERE project_id = ?"
		args = append(args, projectID)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var out []core.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) InsertMilestone(ctx context.Context, m core.Milestone) (core.Milestone, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (project_id, name, percentage, amount_paise, status, due_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ProjectID, m.Name, m.Percentage, m.Amount.Paise, m.Status, m.DueDate.String(), m.Notes, encodeTime(m.CreatedAt))
	if err != nil {
		return core.Milestone{}, fmt.Errorf("insert milestone: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return core.Milestone{}, fmt.Errorf("insert milestone id: %w", err)
	}
	return m, nil
}

func (r *SQLiteRepository) UpdateMilestone(ctx context.Context, m core.Milestone) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET name = ?, percentage = ?, amount_paise = ?, status = ?, due_date = ?, notes = ?
		 WHERE id = ?`,
		m.Name, m.Percentage, m.Amount.Paise, m.Status, m.DueDate.String(), m.Notes, m.ID)
	if err != nil {
		return fmt.Errorf("update milestone: %w", err)
	}
	return requireRow(res, m.ID)
}

func (r *SQLiteRepository) DeleteMilestone(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM milestones WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteRepository) DeleteMilestonesByProject(ctx context.Context, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM milestones WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("delete milestones by project: %w", err)
	}
	return nil
}

// --- action items ---

const actionItemColumns = "id, project_id, description, due_date, status, created_at"

func scanActionItem(row interface{ Scan(...any) error }) (core.ActionItem, error) {
	var a core.ActionItem
	var due, createdAt string
	err := row.Scan(&a.ID, &a.ProjectID, &a.Description, &due, &a.Status, &createdAt)
	if err != nil {
		return core.ActionItem{}, err
	}
	a.DueDate = decodeDate(due)
	a.CreatedAt = decodeTime(createdAt)
	return a, nil
}

func (r *SQLiteRepository) ListActionItems(ctx context.Context, projectID int64) ([]core.ActionItem, error) {
	query := "SELECT " + actionItemColumns + " FROM action_items"
	var args []any
	if projectID != 0 {
		query += " WHERE project_id = ?"
		args = append(args, projectID)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	defer rows.Close()

	var out []core.ActionItem
	for rows.Next() {
		a, err := scanActionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action item: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetActionItem(ctx context.Context, id int64) (core.ActionItem, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+actionItemColumns+" FROM action_items WHERE id = ?", id)
	a, err := scanActionItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ActionItem{}, fmt.Errorf("action item %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return core.ActionItem{}, fmt.Errorf("get action item: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) InsertActionItem(ctx context.Context, a core.ActionItem) (core.ActionItem, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO action_items (project_id, description, due_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ProjectID, a.Description, a.DueDate.String(), a.Status, encodeTime(a.CreatedAt))
	if err != nil {
		return core.ActionItem{}, fmt.Errorf("insert action item: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return core.ActionItem{}, fmt.Errorf("insert action item id: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) UpdateActionItem(ctx context.Context, a core.ActionItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE action_items SET project_id = ?, description = ?, due_date = ?, status = ? WHERE id = ?`,
		a.ProjectID, a.Description, a.DueDate.String(), a.Status, a.ID)
	if err != nil {
		return fmt.Errorf("update action item: %w", err)
	}
	return requireRow(res, a.ID)
}

func (r *SQLiteRepository) DeleteActionItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM action_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete action item: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteRepository) DeleteActionItemsByProject(ctx context.Context, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM action_items WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("delete action items by project: %w", err)
	}
	return nil
}

// --- quotations ---

const quotationColumns = "id, project_id, quote_date, amount_paise, description, status, notes, document_ref, created_at"

func scanQuotation(row interface{ Scan(...any) error }) (core.Quotation, error) {
	var q core.Quotation
	var date, createdAt string
	err := row.Scan(&q.ID, &q.ProjectID, &date, &q.Amount.Paise, &q.Description,
		&q.Status, &q.Notes, &q.DocumentRef, &createdAt)
	if err != nil {
		return core.Quotation{}, err
	}
	q.QuoteDate = decodeDate(date)
	q.CreatedAt = decodeTime(createdAt)
	return q, nil
}

func (r *SQLiteRepository) ListQuotations(ctx context.Context) ([]core.Quotation, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+quotationColumns+" FROM quotations ORDER BY quote_date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var out []core.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetQuotation(ctx context.Context, id int64) (core.Quotation, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+quotationColumns+" FROM quotations WHERE id = ?", id)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Quotation{}, fmt.Errorf("quotation %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return core.Quotation{}, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

func (r *SQLiteRepository) InsertQuotation(ctx context.Context, q core.Quotation) (core.Quotation, error) {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO quotations (project_id, quote_date, amount_paise, description, status, notes, document_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ProjectID, q.QuoteDate.String(), q.Amount.Paise, q.Description, q.Status, q.Notes, q.DocumentRef, encodeTime(q.CreatedAt))
	if err != nil {
		return core.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	q.ID, err = res.LastInsertId()
	if err != nil {
		return core.Quotation{}, fmt.Errorf("insert quotation id: %w", err)
	}
	return q, nil
}

func (r *SQLiteRepository) UpdateQuotation(ctx context.Context, q core.Quotation) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quotations SET project_id = ?, quote_date = ?, amount_paise = ?, description = ?, status = ?, notes = ?, document_ref = ?
		 WHERE id = ?`,
		q.ProjectID, q.QuoteDate.String(), q.Amount.Paise, q.Description, q.Status, q.Notes, q.DocumentRef, q.ID)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return requireRow(res, q.ID)
}

func (r *SQLiteRepository) DeleteQuotation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM quotations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return requireRow(res, id)
}

// --- mirror tracking ---

// PendingMirrorTransactions returns transactions waiting for the ledger
// mirror, oldest first.
func (r *SQLiteRepository) PendingMirrorTransactions(ctx context.Context, limit int) ([]PendingMirrorTransaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, version, created_at FROM transactions WHERE mirror_state = ? ORDER BY id LIMIT ?`,
		MirrorPending, limit)
	if err != nil {
		return nil, fmt.Errorf("pending mirror transactions: %w", err)
	}
	defer rows.Close()

	var out []PendingMirrorTransaction
	for rows.Next() {
		var p PendingMirrorTransaction
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Version, &createdAt); err != nil {
			return nil, fmt.Errorf("scan pending mirror transaction: %w", err)
		}
		p.CreatedAt = decodeTime(createdAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkMirrored records the mirror row reference and clears pending state.
func (r *SQLiteRepository) MarkMirrored(ctx context.Context, id int64, ref string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE transactions SET mirror_state = ?, mirror_ref = ? WHERE id = ?",
		MirrorSynced, ref, id)
	if err != nil {
		return fmt.Errorf("mark mirrored: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteRepository) MarkMirrorError(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE transactions SET mirror_state = ? WHERE id = ?", MirrorError, id)
	if err != nil {
		return fmt.Errorf("mark mirror error: %w", err)
	}
	return requireRow(res, id)
}

// MirrorState returns the current mirror state for a transaction.
func (r *SQLiteRepository) MirrorState(ctx context.Context, id int64) (string, error) {
	var state string
	err := r.db.QueryRowContext(ctx, "SELECT mirror_state FROM transactions WHERE id = ?", id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("transaction %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("mirror state: %w", err)
	}
	return state, nil
}

// MirrorRef returns the stored mirror row reference for a transaction.
func (r *SQLiteRepository) MirrorRef(ctx context.Context, id int64) (string, error) {
	var ref string
	err := r.db.QueryRowContext(ctx, "SELECT mirror_ref FROM transactions WHERE id = ?", id).Scan(&ref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("transaction %d: %w", id, records.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("mirror ref: %w", err)
	}
	return ref, nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("row %d: %w", id, records.ErrNotFound)
	}
	return nil
}
