// Package ops exposes the assignment engine over HTTP. The handlers are thin
// glue: they decode a request, call one engine operation and encode the
// result.
package ops

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aerialops/skyops/core/engine"
	"github.com/aerialops/skyops/core/model"
)

type checkRequest struct {
	MissionID string `json:"project_id"`
	PilotID   string `json:"pilot_id"`
	DroneID   string `json:"drone_id"`
}

type assignRequest struct {
	MissionID    string `json:"project_id"`
	ResourceID   string `json:"resource_id"`
	ResourceType string `json:"resource_type"`
	Confirm      bool   `json:"confirm"`
	OverrideSoft bool   `json:"override_soft_conflicts"`
}

type reassignRequest struct {
	MissionID string `json:"project_id"`
	Urgent    bool   `json:"urgent"`
}

// RequireToken wraps h with a bearer token check. An empty token disables
// authentication.
func RequireToken(token string, h http.Handler) http.Handler {
	if token == "" {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewCheckHandler serves POST /api/conflicts/check.
func NewCheckHandler(eng *engine.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req checkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		conflicts := eng.DetectConflicts(req.MissionID, req.PilotID, req.DroneID)
		if conflicts == nil {
			conflicts = []model.Conflict{}
		}
		writeJSON(w, map[string]any{"conflicts": conflicts})
	})
}

// NewAssignHandler serves POST /api/assign.
func NewAssignHandler(eng *engine.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req assignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		kind, err := engine.ParseResourceKind(req.ResourceType)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, eng.Assign(req.MissionID, req.ResourceID, kind, req.Confirm, req.OverrideSoft))
	})
}

// NewReassignHandler serves POST /api/reassign/suggest.
func NewReassignHandler(eng *engine.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req reassignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		suggestions := eng.SuggestReassignments(req.MissionID, req.Urgent)
		if suggestions == nil {
			suggestions = []engine.Reassignment{}
		}
		writeJSON(w, map[string]any{"suggestions": suggestions})
	})
}

// NewCandidatesHandler serves GET /api/missions/{id}/candidates.
func NewCandidatesHandler(eng *engine.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, ok := missionPath(r.URL.Path, "candidates")
		if !ok {
			http.NotFound(w, r)
			return
		}
		candidates := eng.RankCandidates(id)
		if candidates == nil {
			candidates = []model.Candidate{}
		}
		writeJSON(w, map[string]any{"mission_id": id, "pilots": candidates})
	})
}

// NewReportHandler serves GET /api/missions/{id}/report.
func NewReportHandler(eng *engine.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, ok := missionPath(r.URL.Path, "report")
		if !ok {
			http.NotFound(w, r)
			return
		}
		rep, err := eng.FleetReport(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, rep)
	})
}

func missionPath(path, leaf string) (string, bool) {
	rest := strings.TrimPrefix(path, "/api/missions/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != leaf {
		return "", false
	}
	return parts[0], true
}
