package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aerialops/skyops/core/model"
)

// Candidate scoring weights. The score is a display heuristic: it ranks who
// looks best on paper and is independent of whether the detector would let
// the assignment commit.
const (
	certBonus        = 50
	certPenalty      = 50
	locationBonus    = 30
	locationPenalty  = 30
	skillBonus       = 20
	skillMissPenalty = 10 // per missing skill
	availableBonus   = 20
	onLeavePenalty   = 100
	assignedPenalty  = 50

	maxCandidates = 5
)

// RankCandidates scores every pilot against the mission and returns the top
// candidates best first. An unknown mission yields an empty result. Ties
// keep roster order.
func (e *Engine) RankCandidates(missionID string) []model.Candidate {
	mission, ok := e.store.GetMission(missionID)
	if !ok {
		return nil
	}
	candidates := e.scoreAll(mission)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// scoreAll computes the advisory score for every pilot on the roster.
func (e *Engine) scoreAll(mission model.Mission) []model.Candidate {
	reqCerts := model.ParseTags(mission.RequiredCerts)
	reqSkills := model.ParseTags(mission.RequiredSkills)

	pilots := e.store.ListPilots()
	candidates := make([]model.Candidate, 0, len(pilots))
	for _, p := range pilots {
		score := 0
		eligible := true
		var issues []string

		if missing := model.MissingTags(reqCerts, model.ParseTags(p.Certifications)); len(missing) > 0 {
			eligible = false
			issues = append(issues, "Missing Certs: "+strings.Join(missing, ", "))
			score -= certPenalty
		} else {
			score += certBonus
		}

		if p.Location != mission.Location {
			// Ineligible for a perfect match but kept in the ranking; the
			// detector treats the same mismatch as merely SOFT.
			eligible = false
			issues = append(issues, fmt.Sprintf("Location mismatch (%s)", p.Location))
			score -= locationPenalty
		} else {
			score += locationBonus
		}

		if missing := model.MissingTags(reqSkills, model.ParseTags(p.Skills)); len(missing) > 0 {
			score -= skillMissPenalty * len(missing)
			issues = append(issues, "Missing Skills: "+strings.Join(missing, ", "))
		} else {
			score += skillBonus
		}

		switch p.Status {
		case model.PilotAvailable:
			score += availableBonus
		case model.PilotOnLeave:
			eligible = false
			issues = append(issues, "Pilot On Leave")
			score -= onLeavePenalty
		case model.PilotAssigned:
			eligible = false
			issues = append(issues, fmt.Sprintf("Already Assigned (%s)", p.CurrentAssignment))
			score -= assignedPenalty
		}

		candidates = append(candidates, model.Candidate{
			PilotID:        p.ID,
			Name:           p.Name,
			Score:          score,
			Location:       p.Location,
			Status:         p.Status,
			Eligible:       eligible,
			Issues:         issues,
			Certifications: p.Certifications,
			Skills:         p.Skills,
		})
	}
	return candidates
}
