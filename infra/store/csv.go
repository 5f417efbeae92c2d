// Package store persists the roster in the three CSV files the operations
// team maintains: pilot_roster.csv, drone_fleet.csv and missions.csv.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/aerialops/skyops/core/model"
	corestore "github.com/aerialops/skyops/core/store"
	"github.com/aerialops/skyops/infra/logger"
)

var pilotHeader = []string{"pilot_id", "name", "skills", "certifications", "location", "status", "current_assignment", "available_from"}
var droneHeader = []string{"drone_id", "model", "capabilities", "status", "location", "current_assignment", "maintenance_due"}
var missionHeader = []string{"project_id", "client", "location", "required_skills", "required_certs", "start_date", "end_date", "priority"}

// CSVStore keeps records in memory and rewrites the backing file on every
// mutation. A missing file reads as an empty collection.
type CSVStore struct {
	mem *corestore.MemoryStore
	log logger.Logger

	pilotPath   string
	dronePath   string
	missionPath string

	mu sync.Mutex // serializes file writes
}

// Open loads the three CSV files. Files that do not exist yet are treated as
// empty; malformed CSV is an error.
func Open(pilotPath, dronePath, missionPath string) (*CSVStore, error) {
	s := &CSVStore{
		mem:         corestore.NewMemoryStore(),
		log:         logger.New("csv-store"),
		pilotPath:   pilotPath,
		dronePath:   dronePath,
		missionPath: missionPath,
	}
	if err := s.loadPilots(); err != nil {
		return nil, fmt.Errorf("load pilots: %w", err)
	}
	if err := s.loadDrones(); err != nil {
		return nil, fmt.Errorf("load drones: %w", err)
	}
	if err := s.loadMissions(); err != nil {
		return nil, fmt.Errorf("load missions: %w", err)
	}
	return s, nil
}

func readRows(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()
	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// column maps header names to indices so files survive column reordering.
func column(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (s *CSVStore) loadPilots() error {
	header, rows, err := readRows(s.pilotPath)
	if err != nil {
		return err
	}
	idx := column(header)
	for _, row := range rows {
		s.mem.PutPilot(model.Pilot{
			ID:                field(row, idx, "pilot_id"),
			Name:              field(row, idx, "name"),
			Skills:            field(row, idx, "skills"),
			Certifications:    field(row, idx, "certifications"),
			Location:          field(row, idx, "location"),
			Status:            model.PilotStatus(field(row, idx, "status")),
			CurrentAssignment: field(row, idx, "current_assignment"),
			AvailableFrom:     field(row, idx, "available_from"),
		})
	}
	return nil
}

func (s *CSVStore) loadDrones() error {
	header, rows, err := readRows(s.dronePath)
	if err != nil {
		return err
	}
	idx := column(header)
	for _, row := range rows {
		s.mem.PutDrone(model.Drone{
			ID:                field(row, idx, "drone_id"),
			Model:             field(row, idx, "model"),
			Capabilities:      field(row, idx, "capabilities"),
			Status:            model.DroneStatus(field(row, idx, "status")),
			Location:          field(row, idx, "location"),
			CurrentAssignment: field(row, idx, "current_assignment"),
			MaintenanceDue:    field(row, idx, "maintenance_due"),
		})
	}
	return nil
}

func (s *CSVStore) loadMissions() error {
	header, rows, err := readRows(s.missionPath)
	if err != nil {
		return err
	}
	idx := column(header)
	for _, row := range rows {
		s.mem.PutMission(model.Mission{
			ID:             field(row, idx, "project_id"),
			Client:         field(row, idx, "client"),
			Location:       field(row, idx, "location"),
			RequiredSkills: field(row, idx, "required_skills"),
			RequiredCerts:  field(row, idx, "required_certs"),
			StartDate:      field(row, idx, "start_date"),
			EndDate:        field(row, idx, "end_date"),
			Priority:       model.Priority(field(row, idx, "priority")),
		})
	}
	return nil
}

func writeRows(path string, header []string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *CSVStore) savePilots() error {
	pilots := s.mem.ListPilots()
	rows := make([][]string, len(pilots))
	for i, p := range pilots {
		rows[i] = []string{p.ID, p.Name, p.Skills, p.Certifications, p.Location, string(p.Status), p.CurrentAssignment, p.AvailableFrom}
	}
	return writeRows(s.pilotPath, pilotHeader, rows)
}

func (s *CSVStore) saveDrones() error {
	drones := s.mem.ListDrones()
	rows := make([][]string, len(drones))
	for i, d := range drones {
		rows[i] = []string{d.ID, d.Model, d.Capabilities, string(d.Status), d.Location, d.CurrentAssignment, d.MaintenanceDue}
	}
	return writeRows(s.dronePath, droneHeader, rows)
}

func (s *CSVStore) GetPilot(id string) (model.Pilot, bool)     { return s.mem.GetPilot(id) }
func (s *CSVStore) GetDrone(id string) (model.Drone, bool)     { return s.mem.GetDrone(id) }
func (s *CSVStore) GetMission(id string) (model.Mission, bool) { return s.mem.GetMission(id) }
func (s *CSVStore) ListPilots() []model.Pilot                  { return s.mem.ListPilots() }
func (s *CSVStore) ListDrones() []model.Drone                  { return s.mem.ListDrones() }
func (s *CSVStore) ListMissions() []model.Mission              { return s.mem.ListMissions() }

// SetPilotAssignment mutates in memory and rewrites the roster file. When
// the rewrite fails the in-memory record is restored, so a false return
// means nothing changed.
func (s *CSVStore) SetPilotAssignment(id, missionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.mem.GetPilot(id)
	if !ok || !s.mem.SetPilotAssignment(id, missionID) {
		return false
	}
	if err := s.savePilots(); err != nil {
		s.mem.PutPilot(prev)
		s.log.Errorf("persist pilots: %v", err)
		return false
	}
	return true
}

func (s *CSVStore) SetDroneAssignment(id, missionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.mem.GetDrone(id)
	if !ok || !s.mem.SetDroneAssignment(id, missionID) {
		return false
	}
	if err := s.saveDrones(); err != nil {
		s.mem.PutDrone(prev)
		s.log.Errorf("persist drones: %v", err)
		return false
	}
	return true
}

func (s *CSVStore) SetPilotStatus(id string, status model.PilotStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.mem.GetPilot(id)
	if !ok || !s.mem.SetPilotStatus(id, status) {
		return false
	}
	if err := s.savePilots(); err != nil {
		s.mem.PutPilot(prev)
		s.log.Errorf("persist pilots: %v", err)
		return false
	}
	return true
}

func (s *CSVStore) SetDroneStatus(id string, status model.DroneStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.mem.GetDrone(id)
	if !ok || !s.mem.SetDroneStatus(id, status) {
		return false
	}
	if err := s.saveDrones(); err != nil {
		s.mem.PutDrone(prev)
		s.log.Errorf("persist drones: %v", err)
		return false
	}
	return true
}
