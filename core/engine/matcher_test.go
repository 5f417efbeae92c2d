package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
)

func TestRank_UnknownMission(t *testing.T) {
	e := newTestEngine(t, seedStore())
	assert.Empty(t, e.RankCandidates("PRJ404"))
}

func TestRank_ScoresAndOrder(t *testing.T) {
	e := newTestEngine(t, seedStore())
	candidates := e.RankCandidates("PRJ001")
	require.Len(t, candidates, 3)

	// P001: certs +50, location +30, skills +20, available +20
	best := candidates[0]
	assert.Equal(t, "P001", best.PilotID)
	assert.Equal(t, 120, best.Score)
	assert.True(t, best.Eligible)
	assert.Empty(t, best.Issues)

	// scores never increase down the list
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestRank_MissingCertsDowngrades(t *testing.T) {
	e := newTestEngine(t, seedStore())
	candidates := e.RankCandidates("PRJ001")
	var p2 model.Candidate
	for _, c := range candidates {
		if c.PilotID == "P002" {
			p2 = c
		}
	}
	require.NotEmpty(t, p2.PilotID)
	// certs -50, location +30, skills +20, available +20
	assert.Equal(t, 20, p2.Score)
	assert.False(t, p2.Eligible)
	require.Len(t, p2.Issues, 1)
	assert.Contains(t, p2.Issues[0], "Missing Certs")
	assert.Contains(t, p2.Issues[0], "thermal")
}

func TestRank_LocationMismatchDowngradesEligibility(t *testing.T) {
	// Heuristic eligibility is stricter than the detector here: a location
	// mismatch is SOFT for commits but flips the display eligibility.
	e := newTestEngine(t, seedStore())
	for _, c := range e.RankCandidates("PRJ001") {
		if c.PilotID == "P003" {
			assert.False(t, c.Eligible)
			assert.Contains(t, c.Issues, "Location mismatch (Mumbai)")
		}
	}
}

func TestRank_OnLeavePenalty(t *testing.T) {
	base := seedStore()
	onLeave := seedStore()
	onLeave.SetPilotStatus("P001", model.PilotOnLeave)

	var baseScore, leaveScore int
	for _, c := range newTestEngine(t, base).RankCandidates("PRJ001") {
		if c.PilotID == "P001" {
			baseScore = c.Score
		}
	}
	for _, c := range newTestEngine(t, onLeave).RankCandidates("PRJ001") {
		if c.PilotID == "P001" {
			leaveScore = c.Score
			assert.False(t, c.Eligible)
			assert.Contains(t, c.Issues, "Pilot On Leave")
		}
	}
	assert.GreaterOrEqual(t, baseScore-leaveScore, 100)
}

func TestRank_AlreadyAssigned(t *testing.T) {
	s := seedStore()
	s.SetPilotAssignment("P001", "PRJ002")
	e := newTestEngine(t, s)
	for _, c := range e.RankCandidates("PRJ001") {
		if c.PilotID == "P001" {
			assert.False(t, c.Eligible)
			assert.Contains(t, c.Issues, "Already Assigned (PRJ002)")
		}
	}
}

func TestRank_MissingSkillsPenaltyPerSkill(t *testing.T) {
	s := store.NewMemoryStore()
	s.PutMission(model.Mission{ID: "M", Location: "Pune",
		RequiredSkills: "a, b, c", StartDate: "2024-01-01", EndDate: "2024-01-02"})
	s.PutPilot(model.Pilot{ID: "P", Name: "X", Skills: "a",
		Location: "Pune", Status: model.PilotAvailable})
	e := newTestEngine(t, s)
	candidates := e.RankCandidates("M")
	require.Len(t, candidates, 1)
	// certs +50 (none required), location +30, skills -10*2, available +20
	assert.Equal(t, 80, candidates[0].Score)
	assert.True(t, candidates[0].Eligible, "missing skills alone do not flip eligibility")
}

func TestRank_TruncatesToTopFive(t *testing.T) {
	s := seedStore()
	for _, id := range []string{"P100", "P101", "P102", "P103"} {
		s.PutPilot(model.Pilot{ID: id, Name: id, Location: "Pune", Status: model.PilotAvailable})
	}
	e := newTestEngine(t, s)
	candidates := e.RankCandidates("PRJ001")
	assert.Len(t, candidates, 5)
}

func TestRank_TiesKeepRosterOrder(t *testing.T) {
	s := store.NewMemoryStore()
	s.PutMission(model.Mission{ID: "M", Location: "Pune",
		StartDate: "2024-01-01", EndDate: "2024-01-02"})
	for _, id := range []string{"PB", "PA"} {
		s.PutPilot(model.Pilot{ID: id, Name: id, Location: "Pune", Status: model.PilotAvailable})
	}
	e := newTestEngine(t, s)
	candidates := e.RankCandidates("M")
	require.Len(t, candidates, 2)
	assert.Equal(t, "PB", candidates[0].PilotID)
	assert.Equal(t, "PA", candidates[1].PilotID)
}
