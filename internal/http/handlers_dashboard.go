package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hisab/internal/core"
)

const dashboardCacheKey = "dashboard"

// handleDashboard returns the landing view: portfolio totals, collection
// rate, the monthly trend and the five most recent transactions. The
// payload is cached until the next mutation.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if cached, ok := s.dashboardCache.Get(dashboardCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	projects, perr := s.store.ListProjects(r.Context())
	txns, terr := s.store.ListTransactions(r.Context(), core.TransactionFilter{})
	if perr != nil || terr != nil {
		slog.ErrorContext(r.Context(), "Dashboard read failed",
			"projects_error", perr, "transactions_error", terr)
		respondJSON(w, http.StatusOK, emptyDashboard())
		return
	}
	core.SortTransactionsNewestFirst(txns)

	summary := core.PortfolioTotals(projects, txns)
	trend := core.MonthlyTrend(txns, 6)
	pending := core.PendingItems(projects, txns, time.Now(), core.PendingByAmount)

	names := make(map[int64]string, len(projects))
	active := 0
	for _, p := range projects {
		names[p.ID] = p.Name
		if p.Status == core.ProjectActive || p.Status == core.ProjectInProcess {
			active++
		}
	}

	recent := txns
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentJSON := make([]transactionJSON, 0, len(recent))
	for _, t := range recent {
		recentJSON = append(recentJSON, toTransactionJSON(t, projectNameOr(names, t.ProjectID)))
	}

	trendJSON := make([]map[string]any, 0, len(trend))
	for _, b := range trend {
		trendJSON = append(trendJSON, map[string]any{
			"year":     b.Year,
			"month":    b.Month,
			"billed":   money(b.Billed),
			"received": money(b.Received),
		})
	}

	payload := map[string]any{
		"total_billed":       money(summary.TotalBilled),
		"total_received":     money(summary.TotalReceived),
		"pending_receivable": money(summary.PendingReceivable),
		"collection_rate":    core.CollectionRate(summary.TotalReceived, summary.TotalBilled),
		"project_count":      summary.ProjectCount,
		"active_projects":    active,
		"pending_count":      len(pending),
		"recent":             recentJSON,
		"trend":              trendJSON,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard encode failed", "error", err)
		respondJSON(w, http.StatusOK, emptyDashboard())
		return
	}
	s.dashboardCache.Set(dashboardCacheKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func emptyDashboard() map[string]any {
	zero := money(core.Money{})
	return map[string]any{
		"total_billed":       zero,
		"total_received":     zero,
		"pending_receivable": zero,
		"collection_rate":    0.0,
		"project_count":      0,
		"active_projects":    0,
		"pending_count":      0,
		"recent":             []transactionJSON{},
		"trend":              []map[string]any{},
	}
}
