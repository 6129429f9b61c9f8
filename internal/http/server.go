// Package http exposes the bookkeeping API: dashboard stats, projects,
// the transaction ledger, pending payments, reports, quotations,
// milestones, action items, CSV export and blob attachments.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hisab/internal/cache"
	"hisab/internal/records"
	"hisab/internal/services"
)

type Server struct {
	http.Server

	store   records.Store
	ledger  *services.LedgerService
	blobs   records.BlobStore
	blobDir string

	rateLimiter *rateLimiter

	// Read-side caches, cleared on any mutation.
	dashboardCache *cache.LRUCache[[]byte]
	reportCache    *cache.LRUCache[[]byte]
	cacheManager   *cache.Manager

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware, returning a ready-to-run server.
// blobDir is where the filesystem blob store keeps uploads; it is served
// under /blobs/.
func NewServer(addr string, store records.Store, ledger *services.LedgerService, blobs records.BlobStore, blobDir string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:          store,
		ledger:         ledger,
		blobs:          blobs,
		blobDir:        blobDir,
		rateLimiter:    newRateLimiter(),
		dashboardCache: cache.NewLRUCache[[]byte](16, 5*time.Minute),
		reportCache:    cache.NewLRUCache[[]byte](64, 5*time.Minute),
		cacheManager:   cache.NewManager(),
	}
	s.cacheManager.Register(s.dashboardCache)
	s.cacheManager.Register(s.reportCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/dashboard", s.wrap(s.handleDashboard))

	mux.HandleFunc("GET /api/projects", s.wrap(s.handleListProjects))
	mux.HandleFunc("POST /api/projects", s.wrap(s.handleCreateProject))
	mux.HandleFunc("GET /api/projects/{id}", s.wrap(s.handleGetProject))
	mux.HandleFunc("PUT /api/projects/{id}", s.wrap(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.wrap(s.handleDeleteProject))
	mux.HandleFunc("GET /api/projects/{id}/summary", s.wrap(s.handleProjectSummary))
	mux.HandleFunc("GET /api/projects/{id}/milestones", s.wrap(s.handleListMilestones))
	mux.HandleFunc("POST /api/projects/{id}/milestones", s.wrap(s.handleCreateMilestone))

	mux.HandleFunc("GET /api/transactions", s.wrap(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.wrap(s.handleCreateTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", s.wrap(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.wrap(s.handleDeleteTransaction))
	mux.HandleFunc("POST /api/transactions/bulk-delete", s.wrap(s.handleBulkDeleteTransactions))

	mux.HandleFunc("GET /api/pending", s.wrap(s.handlePending))

	mux.HandleFunc("GET /api/reports/trend", s.wrap(s.handleTrendReport))
	mux.HandleFunc("GET /api/reports/aging", s.wrap(s.handleAgingReport))
	mux.HandleFunc("GET /api/reports/performance", s.wrap(s.handlePerformanceReport))
	mux.HandleFunc("GET /api/reports/summary", s.wrap(s.handleSummaryReport))

	mux.HandleFunc("GET /api/quotations", s.wrap(s.handleListQuotations))
	mux.HandleFunc("POST /api/quotations", s.wrap(s.handleCreateQuotation))
	mux.HandleFunc("PUT /api/quotations/{id}", s.wrap(s.handleUpdateQuotation))
	mux.HandleFunc("PUT /api/quotations/{id}/status", s.wrap(s.handleQuotationStatus))
	mux.HandleFunc("DELETE /api/quotations/{id}", s.wrap(s.handleDeleteQuotation))

	mux.HandleFunc("PUT /api/milestones/{id}", s.wrap(s.handleUpdateMilestone))
	mux.HandleFunc("DELETE /api/milestones/{id}", s.wrap(s.handleDeleteMilestone))

	mux.HandleFunc("GET /api/action-items", s.wrap(s.handleListActionItems))
	mux.HandleFunc("POST /api/action-items", s.wrap(s.handleCreateActionItem))
	mux.HandleFunc("PUT /api/action-items/{id}", s.wrap(s.handleUpdateActionItem))
	mux.HandleFunc("PUT /api/action-items/{id}/status", s.wrap(s.handleToggleActionItem))
	mux.HandleFunc("DELETE /api/action-items/{id}", s.wrap(s.handleDeleteActionItem))

	mux.HandleFunc("GET /api/export/transactions.csv", s.wrap(s.handleExportTransactions))
	mux.HandleFunc("GET /api/export/projects.csv", s.wrap(s.handleExportProjects))

	mux.HandleFunc("POST /api/attachments", s.wrap(s.handleUploadAttachment))
	mux.HandleFunc("DELETE /api/attachments/{path...}", s.wrap(s.handleDeleteAttachment))
	if blobDir != "" {
		files := http.StripPrefix("/blobs/", http.FileServer(http.Dir(blobDir)))
		mux.Handle("GET /blobs/", files)
	}

	return s
}

// wrap applies security headers, rate limiting on mutating methods, and
// request logging with a per-request ID.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		if mutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				"client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// invalidateReadCaches drops cached dashboard and report payloads.
// Every write handler calls this after a successful mutation.
func (s *Server) invalidateReadCaches() {
	s.dashboardCache.Clear()
	s.reportCache.Clear()
}

// Shutdown stops background cleanup and then the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

type contextKey string

const requestIDKey contextKey = "request_id"

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(b)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
