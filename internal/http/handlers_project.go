package http

import (
	"log/slog"
	"net/http"

	"hisab/internal/core"
)

// unknownProject labels transactions whose project row is gone.
const unknownProject = "Unknown Project"

// projectNames maps project IDs to display names for list views.
// A failed read returns an empty map; lookups fall back to a label.
func (s *Server) projectNames(r *http.Request) map[int64]string {
	names := make(map[int64]string)
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List projects for names failed", "error", err)
		return names
	}
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}

func projectNameOr(names map[int64]string, id int64) string {
	if n, ok := names[id]; ok {
		return n
	}
	return unknownProject
}

// handleListProjects returns project rows with their received and
// balance columns, filtered by status and search and sorted by the
// requested column. Read failures log and return an empty list so the
// view still renders.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, perr := s.store.ListProjects(r.Context())
	txns, terr := s.store.ListTransactions(r.Context(), core.TransactionFilter{})
	if perr != nil || terr != nil {
		slog.ErrorContext(r.Context(), "List projects failed",
			"projects_error", perr, "transactions_error", terr)
		respondJSON(w, http.StatusOK, map[string]any{"projects": []projectRowJSON{}})
		return
	}

	q := r.URL.Query()
	projects = core.FilterProjects(projects,
		core.ProjectStatus(q.Get("status")), q.Get("search"))
	rows := core.BuildProjectRows(projects, txns)
	if key := q.Get("sort"); key != "" {
		core.SortProjectRows(rows, core.ProjectSortKey(key), q.Get("order") == "desc")
	}

	out := make([]projectRowJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProjectRowJSON(row))
	}
	respondJSON(w, http.StatusOK, map[string]any{"projects": out})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if p.Status == "" {
		p.Status = core.ProjectPending
	}
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.store.InsertProject(r.Context(), p)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusCreated, toProjectJSON(saved))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toProjectJSON(p))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p.ID = id
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.UpdateProject(r.Context(), p); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toProjectJSON(p))
}

// handleDeleteProject removes the project and everything under it:
// transactions, milestones, action items, then the project row.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.ledger.DeleteProject(r.Context(), id); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleProjectSummary returns the project's balance, received share,
// the running ledger newest transaction first, and the project's
// milestones and action items.
func (s *Server) handleProjectSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	txns, err := s.store.ListTransactions(r.Context(), core.TransactionFilter{ProjectID: id})
	if err != nil {
		slog.ErrorContext(r.Context(), "List project transactions failed",
			"project_id", id, "error", err)
		txns = nil
	}
	core.SortTransactionsNewestFirst(txns)

	milestones, err := s.store.ListMilestones(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "List project milestones failed",
			"project_id", id, "error", err)
		milestones = nil
	}
	actionItems, err := s.store.ListActionItems(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "List project action items failed",
			"project_id", id, "error", err)
		actionItems = nil
	}

	bal := core.ProjectTotals(p, txns)
	rows := core.RunningTotals(txns)

	type ledgerRowJSON struct {
		Transaction transactionJSON `json:"transaction"`
		Running     moneyJSON       `json:"running"`
	}
	ledger := make([]ledgerRowJSON, 0, len(rows))
	for _, row := range rows {
		ledger = append(ledger, ledgerRowJSON{
			Transaction: toTransactionJSON(row.Transaction, p.Name),
			Running:     money(row.Running),
		})
	}

	milestoneJSONs := make([]milestoneJSON, 0, len(milestones))
	for _, m := range milestones {
		milestoneJSONs = append(milestoneJSONs, toMilestoneJSON(m))
	}
	actionItemJSONs := make([]actionItemJSON, 0, len(actionItems))
	for _, a := range actionItems {
		actionItemJSONs = append(actionItemJSONs, toActionItemJSON(a))
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"project":         toProjectJSON(p),
		"total_billed":    money(bal.TotalBilled),
		"total_received":  money(bal.TotalReceived),
		"total_credits":   money(bal.TotalCredits),
		"pending":         money(bal.Pending),
		"collection_rate": core.CollectionRate(bal.TotalReceived, bal.TotalBilled),
		"ledger":          ledger,
		"milestones":      milestoneJSONs,
		"action_items":    actionItemJSONs,
	})
}
