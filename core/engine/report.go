package engine

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aerialops/skyops/core/model"
)

// FleetReport summarizes roster readiness for one mission: utilization
// counts plus the distribution of candidate scores across all pilots.
type FleetReport struct {
	MissionID           string  `json:"mission_id"`
	Pilots              int     `json:"pilots"`
	AvailablePilots     int     `json:"available_pilots"`
	AssignedPilots      int     `json:"assigned_pilots"`
	Drones              int     `json:"drones"`
	AvailableDrones     int     `json:"available_drones"`
	DronesInMaintenance int     `json:"drones_in_maintenance"`
	PilotUtilization    float64 `json:"pilot_utilization"`
	EligibleCandidates  int     `json:"eligible_candidates"`
	ScoreMean           float64 `json:"score_mean"`
	ScoreStdDev         float64 `json:"score_stddev"`
	ScoreMedian         float64 `json:"score_median"`
	ScoreMin            float64 `json:"score_min"`
	ScoreMax            float64 `json:"score_max"`
}

// FleetReport builds a readiness report for the mission.
func (e *Engine) FleetReport(missionID string) (FleetReport, error) {
	mission, ok := e.store.GetMission(missionID)
	if !ok {
		return FleetReport{}, fmt.Errorf("mission %s not found", missionID)
	}

	rep := FleetReport{MissionID: mission.ID}
	for _, p := range e.store.ListPilots() {
		rep.Pilots++
		switch p.Status {
		case model.PilotAvailable:
			rep.AvailablePilots++
		case model.PilotAssigned:
			rep.AssignedPilots++
		}
	}
	for _, d := range e.store.ListDrones() {
		rep.Drones++
		switch d.Status {
		case model.DroneAvailable:
			rep.AvailableDrones++
		case model.DroneMaintenance:
			rep.DronesInMaintenance++
		}
	}
	if rep.Pilots > 0 {
		rep.PilotUtilization = float64(rep.AssignedPilots) / float64(rep.Pilots)
	}

	candidates := e.scoreAll(mission)
	if len(candidates) == 0 {
		return rep, nil
	}
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = float64(c.Score)
		if c.Eligible {
			rep.EligibleCandidates++
		}
	}
	rep.ScoreMean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		rep.ScoreStdDev = stat.StdDev(scores, nil)
	}
	rep.ScoreMin = floats.Min(scores)
	rep.ScoreMax = floats.Max(scores)
	sort.Float64s(scores)
	rep.ScoreMedian = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return rep, nil
}
