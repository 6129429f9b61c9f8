package http

import (
	"log/slog"
	"net/http"
	"strconv"
)

// handleListActionItems returns follow-up items, optionally narrowed to
// one project via the project_id query parameter.
func (s *Server) handleListActionItems(w http.ResponseWriter, r *http.Request) {
	var projectID int64
	if v := r.URL.Query().Get("project_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid project_id")
			return
		}
		projectID = id
	}

	items, err := s.store.ListActionItems(r.Context(), projectID)
	if err != nil {
		slog.ErrorContext(r.Context(), "List action items failed", "error", err)
		respondJSON(w, http.StatusOK, map[string]any{"action_items": []actionItemJSON{}})
		return
	}

	out := make([]actionItemJSON, 0, len(items))
	for _, a := range items {
		out = append(out, toActionItemJSON(a))
	}
	respondJSON(w, http.StatusOK, map[string]any{"action_items": out})
}

func (s *Server) handleCreateActionItem(w http.ResponseWriter, r *http.Request) {
	var req actionItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := a.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if a.ProjectID != 0 {
		if _, err := s.store.GetProject(r.Context(), a.ProjectID); err != nil {
			respondWriteError(w, r, err)
			return
		}
	}

	saved, err := s.store.InsertActionItem(r.Context(), a)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusCreated, toActionItemJSON(saved))
}

func (s *Server) handleUpdateActionItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req actionItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := req.toCore()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	a.ID = id
	if err := a.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.UpdateActionItem(r.Context(), a); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toActionItemJSON(a))
}

// handleToggleActionItem flips an item between pending and done.
func (s *Server) handleToggleActionItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := s.store.GetActionItem(r.Context(), id)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	a.Status = a.Status.Toggle()
	if err := s.store.UpdateActionItem(r.Context(), a); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toActionItemJSON(a))
}

func (s *Server) handleDeleteActionItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteActionItem(r.Context(), id); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
