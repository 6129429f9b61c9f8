package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hisab/internal/core"
)

// reportData loads the project and transaction sets every report needs,
// narrowed by the ledger filter. A project_id filter also narrows the
// project set so per-project reports only cover that project. ok is
// false when a read failed; callers then return an empty payload.
func (s *Server) reportData(r *http.Request, f core.TransactionFilter) (projects []core.Project, txns []core.Transaction, ok bool) {
	projects, perr := s.store.ListProjects(r.Context())
	txns, terr := s.store.ListTransactions(r.Context(), f)
	if perr != nil || terr != nil {
		slog.ErrorContext(r.Context(), "Report read failed",
			"url", r.URL.Path, "projects_error", perr, "transactions_error", terr)
		return nil, nil, false
	}
	if f.ProjectID != 0 {
		narrowed := projects[:0]
		for _, p := range projects {
			if p.ID == f.ProjectID {
				narrowed = append(narrowed, p)
			}
		}
		projects = narrowed
	}
	return projects, txns, true
}

// reportCacheKey derives the cache key suffix from the filter so
// differently filtered payloads never collide. An empty filter adds
// nothing, keeping the common unfiltered keys short.
func reportCacheKey(f core.TransactionFilter) string {
	if f == (core.TransactionFilter{}) {
		return ""
	}
	return fmt.Sprintf(":%d:%s:%s:%s:%s", f.ProjectID, f.Type, f.From, f.To, f.Search)
}

// serveCachedReport returns a cached payload or builds, caches and
// serves a fresh one.
func (s *Server) serveCachedReport(w http.ResponseWriter, r *http.Request, key string, build func() any) {
	if cached, ok := s.reportCache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	payload := build()
	body, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report encode failed", "report", key, "error", err)
		respondJSON(w, http.StatusOK, map[string]any{})
		return
	}
	s.reportCache.Set(key, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleTrendReport returns monthly billed/received buckets, oldest
// first. The months query parameter caps the window, default 12.
func (s *Server) handleTrendReport(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	months := 12
	if v := r.URL.Query().Get("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			months = n
		}
	}
	_, txns, ok := s.reportData(r, filter)
	if !ok {
		respondJSON(w, http.StatusOK, map[string]any{"trend": []any{}})
		return
	}

	s.serveCachedReport(w, r, "trend:"+strconv.Itoa(months)+reportCacheKey(filter), func() any {
		trend := core.MonthlyTrend(txns, months)
		out := make([]map[string]any, 0, len(trend))
		for _, b := range trend {
			out = append(out, map[string]any{
				"year":     b.Year,
				"month":    b.Month,
				"billed":   money(b.Billed),
				"received": money(b.Received),
			})
		}
		return map[string]any{"trend": out}
	})
}

// handleAgingReport returns per-project outstanding ages plus the
// standard bucket rollup.
func (s *Server) handleAgingReport(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	projects, txns, ok := s.reportData(r, filter)
	if !ok {
		respondJSON(w, http.StatusOK, map[string]any{"entries": []any{}, "buckets": []any{}})
		return
	}

	s.serveCachedReport(w, r, "aging"+reportCacheKey(filter), func() any {
		entries := core.AgingReport(projects, txns, time.Now())
		buckets := core.AgingBuckets(entries)

		entryJSON := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			entryJSON = append(entryJSON, map[string]any{
				"project":           toProjectJSON(e.Project),
				"outstanding":       money(e.Outstanding),
				"last_invoice_date": e.LastInvoiceDate.String(),
				"days_since":        e.DaysSince,
				"has_invoice":       e.HasInvoice,
				"urgency":           string(e.Urgency),
			})
		}
		bucketJSON := make([]map[string]any, 0, len(buckets))
		for _, b := range buckets {
			bucketJSON = append(bucketJSON, map[string]any{
				"label":  b.Label,
				"count":  b.Count,
				"amount": money(b.Amount),
			})
		}
		return map[string]any{"entries": entryJSON, "buckets": bucketJSON}
	})
}

// handlePerformanceReport returns per-project received, outstanding and
// collection rate.
func (s *Server) handlePerformanceReport(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	projects, txns, ok := s.reportData(r, filter)
	if !ok {
		respondJSON(w, http.StatusOK, map[string]any{"projects": []any{}})
		return
	}

	s.serveCachedReport(w, r, "performance"+reportCacheKey(filter), func() any {
		rows := core.ProjectPerformance(projects, txns)
		out := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			out = append(out, map[string]any{
				"project":         toProjectJSON(row.Project),
				"received":        money(row.Received),
				"outstanding":     money(row.Outstanding),
				"collection_rate": row.CollectionRate,
			})
		}
		return map[string]any{"projects": out}
	})
}

// handleSummaryReport returns the portfolio totals plus quotation stats.
func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	projects, txns, ok := s.reportData(r, filter)
	if !ok {
		respondJSON(w, http.StatusOK, map[string]any{})
		return
	}
	quotes, err := s.store.ListQuotations(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List quotations failed", "error", err)
		quotes = nil
	}

	s.serveCachedReport(w, r, "summary"+reportCacheKey(filter), func() any {
		summary := core.PortfolioTotals(projects, txns)
		quoteStats := core.QuotationTotals(quotes)
		return map[string]any{
			"total_billed":       money(summary.TotalBilled),
			"total_received":     money(summary.TotalReceived),
			"pending_receivable": money(summary.PendingReceivable),
			"collection_rate":    core.CollectionRate(summary.TotalReceived, summary.TotalBilled),
			"project_count":      summary.ProjectCount,
			"quotations": map[string]any{
				"total_quoted":   money(quoteStats.TotalQuoted),
				"accepted":       money(quoteStats.Accepted),
				"awaiting_reply": money(quoteStats.AwaitingReply),
				"count":          quoteStats.Count,
			},
		}
	})
}
