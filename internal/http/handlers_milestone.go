package http

import (
	"log/slog"
	"net/http"

	"hisab/internal/core"
)

func (s *Server) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	milestones, err := s.store.ListMilestones(r.Context(), projectID)
	if err != nil {
		slog.ErrorContext(r.Context(), "List milestones failed",
			"project_id", projectID, "error", err)
		respondJSON(w, http.StatusOK, map[string]any{"milestones": []milestoneJSON{}})
		return
	}

	out := make([]milestoneJSON, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, toMilestoneJSON(m))
	}
	respondJSON(w, http.StatusOK, map[string]any{"milestones": out})
}

func (s *Server) handleCreateMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.store.GetProject(r.Context(), projectID); err != nil {
		respondWriteError(w, r, err)
		return
	}

	var req milestoneRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := req.toCore(projectID)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if m.Status == "" {
		m.Status = core.MilestonePending
	}
	if err := m.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.store.InsertMilestone(r.Context(), m)
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusCreated, toMilestoneJSON(saved))
}

func (s *Server) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		milestoneRequest
		ProjectID int64 `json:"project_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := req.milestoneRequest.toCore(req.ProjectID)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	m.ID = id
	if err := m.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.UpdateMilestone(r.Context(), m); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, toMilestoneJSON(m))
}

func (s *Server) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteMilestone(r.Context(), id); err != nil {
		respondWriteError(w, r, err)
		return
	}
	s.invalidateReadCaches()
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
