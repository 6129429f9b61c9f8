package http

import (
	"log/slog"
	"net/http"
	"time"

	"hisab/internal/core"
	"hisab/internal/export"
)

// handleExportTransactions streams the filtered ledger as a CSV
// download, every field quoted, filename stamped with today's date.
func (s *Server) handleExportTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	txns, err := s.store.ListTransactions(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Export transactions read failed", "error", err)
		txns = nil
	}
	core.SortTransactionsNewestFirst(txns)

	names := s.projectNames(r)
	header, rows := export.TransactionRows(txns, func(id int64) string {
		return projectNameOr(names, id)
	})
	writeCSVDownload(w, r, "transactions", header, rows)
}

// handleExportProjects streams the project list as a CSV download, with
// the received and balance columns included.
func (s *Server) handleExportProjects(w http.ResponseWriter, r *http.Request) {
	projects, perr := s.store.ListProjects(r.Context())
	txns, terr := s.store.ListTransactions(r.Context(), core.TransactionFilter{})
	if perr != nil || terr != nil {
		slog.ErrorContext(r.Context(), "Export projects read failed",
			"projects_error", perr, "transactions_error", terr)
		projects, txns = nil, nil
	}

	header, rows := export.ProjectRows(core.BuildProjectRows(projects, txns))
	writeCSVDownload(w, r, "projects", header, rows)
}

func writeCSVDownload(w http.ResponseWriter, r *http.Request, name string, header []string, rows [][]string) {
	filename := name + "-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteCSV(w, header, rows); err != nil {
		slog.ErrorContext(r.Context(), "CSV write failed", "export", name, "error", err)
	}
}
