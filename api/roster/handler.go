// Package roster exposes read and status-update endpoints for pilots,
// drones and missions.
package roster

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eq(field, want string) bool {
	return want == "" || strings.EqualFold(strings.TrimSpace(field), strings.TrimSpace(want))
}

func tagMatch(field, want string) bool {
	return want == "" || model.ContainsTag(field, want)
}

// NewPilotsHandler serves GET /api/pilots. Query parameters filter the
// roster: status, location and name match whole values ignoring case,
// skills and certifications match individual tags.
func NewPilotsHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		out := []model.Pilot{}
		for _, p := range st.ListPilots() {
			if eq(string(p.Status), q.Get("status")) &&
				eq(p.Location, q.Get("location")) &&
				eq(p.Name, q.Get("name")) &&
				tagMatch(p.Skills, q.Get("skills")) &&
				tagMatch(p.Certifications, q.Get("certifications")) {
				out = append(out, p)
			}
		}
		writeJSON(w, map[string]any{"pilots": out})
	})
}

// NewDronesHandler serves GET /api/drones with status, location, model and
// capabilities filters.
func NewDronesHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		out := []model.Drone{}
		for _, d := range st.ListDrones() {
			if eq(string(d.Status), q.Get("status")) &&
				eq(d.Location, q.Get("location")) &&
				eq(d.Model, q.Get("model")) &&
				tagMatch(d.Capabilities, q.Get("capabilities")) {
				out = append(out, d)
			}
		}
		writeJSON(w, map[string]any{"drones": out})
	})
}

// NewMissionsHandler serves GET /api/missions with client, location,
// priority, required_skills and required_certs filters.
func NewMissionsHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		out := []model.Mission{}
		for _, m := range st.ListMissions() {
			if eq(m.Client, q.Get("client")) &&
				eq(m.Location, q.Get("location")) &&
				eq(string(m.Priority), q.Get("priority")) &&
				tagMatch(m.RequiredSkills, q.Get("required_skills")) &&
				tagMatch(m.RequiredCerts, q.Get("required_certs")) {
				out = append(out, m)
			}
		}
		writeJSON(w, map[string]any{"missions": out})
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

var pilotStatuses = map[model.PilotStatus]bool{
	model.PilotAvailable:   true,
	model.PilotAssigned:    true,
	model.PilotOnLeave:     true,
	model.PilotUnavailable: true,
}

var droneStatuses = map[model.DroneStatus]bool{
	model.DroneAvailable:   true,
	model.DroneAssigned:    true,
	model.DroneMaintenance: true,
}

// NewPilotStatusHandler serves POST /api/pilots/{id}/status.
func NewPilotStatusHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := statusPath(r, w, "/api/pilots/")
		if !ok {
			return
		}
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		status := model.PilotStatus(req.Status)
		if !pilotStatuses[status] {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		if !st.SetPilotStatus(id, status) {
			http.Error(w, "pilot not found", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"pilot_id": id, "status": status})
	})
}

// NewDroneStatusHandler serves POST /api/drones/{id}/status.
func NewDroneStatusHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := statusPath(r, w, "/api/drones/")
		if !ok {
			return
		}
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		status := model.DroneStatus(req.Status)
		if !droneStatuses[status] {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		if !st.SetDroneStatus(id, status) {
			http.Error(w, "drone not found", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"drone_id": id, "status": status})
	})
}

func statusPath(r *http.Request, w http.ResponseWriter, prefix string) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "status" {
		http.NotFound(w, r)
		return "", false
	}
	return parts[0], true
}
