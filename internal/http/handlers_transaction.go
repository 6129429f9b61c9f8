package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hisab/internal/core"
)

func transactionFilterFromQuery(r *http.Request) (core.TransactionFilter, error) {
	q := r.URL.Query()
	var f core.TransactionFilter
	if v := q.Get("project_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, err
		}
		f.ProjectID = id
	}
	f.Type = core.TransactionType(q.Get("type"))
	from, err := parseOptionalDate(q.Get("from"))
	if err != nil {
		return f, err
	}
	f.From = from
	to, err := parseOptionalDate(q.Get("to"))
	if err != nil {
		return f, err
	}
	f.To = to
	f.Search = q.Get("search")
	return f, nil
}

// handleListTransactions returns the ledger, newest first, narrowed by
// the query filters. Read failures log and return an empty list.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	txns, err := s.store.ListTransactions(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions failed", "error", err)
		respondJSON(w, http.StatusOK, map[string]any{"transactions": []transactionJSON{}})
		return
	}
	core.SortTransactionsNewestFirst(txns)

	names := s.projectNames(r)
	out := make([]transactionJSON, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionJSON(t, projectNameOr(names, t.ProjectID)))
	}
	respondJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.ledger.CreateTransaction(r.Context(), t)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()

	name := unknownProject
	if p, err := s.store.GetProject(r.Context(), saved.ProjectID); err == nil {
		name = p.Name
	}
	respondJSON(w, http.StatusCreated, toTransactionJSON(saved, name))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	t.ID = id

	if err := s.ledger.UpdateTransaction(r.Context(), t); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleBulkDeleteTransactions deletes a selection of rows. Partial
// failure reports which IDs could not be removed.
func (s *Server) handleBulkDeleteTransactions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "no ids given")
		return
	}

	res := s.ledger.BulkDeleteTransactions(r.Context(), req.IDs)
	s.invalidateReadCaches()

	failed := make(map[string]string, len(res.Failed))
	for id, err := range res.Failed {
		failed[strconv.FormatInt(id, 10)] = err.Error()
	}
	status := http.StatusOK
	if len(res.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	respondJSON(w, status, map[string]any{
		"deleted": res.Deleted,
		"failed":  failed,
	})
}

// handlePending returns the pending payments view: every project still
// owed money, with per-project invoices, payments, urgency and the
// header cards (total pending, projects with dues, overdue and
// follow-up amounts).
func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	projects, perr := s.store.ListProjects(r.Context())
	txns, terr := s.store.ListTransactions(r.Context(), core.TransactionFilter{})
	if perr != nil || terr != nil {
		slog.ErrorContext(r.Context(), "Pending view read failed",
			"projects_error", perr, "transactions_error", terr)
		respondJSON(w, http.StatusOK, map[string]any{"items": []any{}})
		return
	}

	by := core.PendingByAmount
	if r.URL.Query().Get("sort") == "days" {
		by = core.PendingByDays
	}
	items := core.PendingItems(projects, txns, time.Now(), by)
	summary := core.PendingTotals(items)

	type pendingJSON struct {
		Project         projectJSON       `json:"project"`
		Pending         moneyJSON         `json:"pending"`
		TotalBilled     moneyJSON         `json:"total_billed"`
		TotalReceived   moneyJSON         `json:"total_received"`
		Invoices        []transactionJSON `json:"invoices"`
		Payments        []transactionJSON `json:"payments"`
		LastInvoiceDate string            `json:"last_invoice_date,omitempty"`
		DaysSince       int               `json:"days_since"`
		HasInvoice      bool              `json:"has_invoice"`
		Urgency         string            `json:"urgency"`
	}

	out := make([]pendingJSON, 0, len(items))
	for _, item := range items {
		pj := pendingJSON{
			Project:         toProjectJSON(item.Project),
			Pending:         money(item.Balance.Pending),
			TotalBilled:     money(item.Balance.TotalBilled),
			TotalReceived:   money(item.Balance.TotalReceived),
			Invoices:        make([]transactionJSON, 0, len(item.Invoices)),
			Payments:        make([]transactionJSON, 0, len(item.Payments)),
			LastInvoiceDate: item.LastInvoiceDate.String(),
			DaysSince:       item.DaysSince,
			HasInvoice:      item.HasInvoice,
			Urgency:         string(item.Urgency),
		}
		for _, t := range item.Invoices {
			pj.Invoices = append(pj.Invoices, toTransactionJSON(t, item.Project.Name))
		}
		for _, t := range item.Payments {
			pj.Payments = append(pj.Payments, toTransactionJSON(t, item.Project.Name))
		}
		out = append(out, pj)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"summary": map[string]any{
			"total_pending":    money(summary.TotalPending),
			"project_count":    summary.ProjectCount,
			"overdue_amount":   money(summary.OverdueAmount),
			"follow_up_amount": money(summary.FollowUpAmount),
		},
	})
}
