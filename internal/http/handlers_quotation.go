package http

import (
	"log/slog"
	"net/http"

	"hisab/internal/core"
)

// handleListQuotations returns quotations filtered by status and search,
// plus the quote summary cards.
func (s *Server) handleListQuotations(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.store.ListQuotations(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List quotations failed", "error", err)
		respondJSON(w, http.StatusOK, map[string]any{"quotations": []quotationJSON{}})
		return
	}

	q := r.URL.Query()
	quotes = core.FilterQuotations(quotes, core.QuoteStatus(q.Get("status")), q.Get("search"))
	summary := core.QuotationTotals(quotes)

	out := make([]quotationJSON, 0, len(quotes))
	for _, quote := range quotes {
		out = append(out, toQuotationJSON(quote))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"quotations": out,
		"summary": map[string]any{
			"total_quoted":   money(summary.TotalQuoted),
			"accepted":       money(summary.Accepted),
			"awaiting_reply": money(summary.AwaitingReply),
			"count":          summary.Count,
		},
	})
}

func (s *Server) handleCreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	quote, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if quote.Status == "" {
		quote.Status = core.QuoteDraft
	}
	if err := quote.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.store.InsertQuotation(r.Context(), quote)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusCreated, toQuotationJSON(saved))
}

func (s *Server) handleUpdateQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req quotationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	quote, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	quote.ID = id
	if err := quote.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.UpdateQuotation(r.Context(), quote); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toQuotationJSON(quote))
}

// handleQuotationStatus moves a quotation through its lifecycle without
// resending the whole record.
func (s *Server) handleQuotationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	status := core.QuoteStatus(req.Status)
	if !status.Valid() {
		respondError(w, http.StatusUnprocessableEntity, "invalid status")
		return
	}

	quote, err := s.store.GetQuotation(r.Context(), id)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	quote.Status = status
	if err := s.store.UpdateQuotation(r.Context(), quote); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toQuotationJSON(quote))
}

func (s *Server) handleDeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteQuotation(r.Context(), id); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
