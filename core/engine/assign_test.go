package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
)

func TestAssign_DryRunThenCommit(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)

	dry := e.Assign("PRJ001", "P001", KindPilot, false, false)
	assert.False(t, dry.Success)
	assert.Empty(t, dry.Conflicts)
	assert.Contains(t, dry.Message, "Dry run")
	p, _ := s.GetPilot("P001")
	assert.Equal(t, model.PilotAvailable, p.Status, "dry run must not mutate")

	out := e.Assign("PRJ001", "P001", KindPilot, true, false)
	require.True(t, out.Success)
	assert.NotEmpty(t, out.DecisionID)
	p, _ = s.GetPilot("P001")
	assert.Equal(t, model.PilotAssigned, p.Status)
	assert.Equal(t, "PRJ001", p.CurrentAssignment)
}

func TestAssign_RepeatedDryRunsAreIdempotent(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)
	before, _ := s.GetPilot("P001")
	for i := 0; i < 3; i++ {
		out := e.Assign("PRJ001", "P001", KindPilot, false, false)
		assert.False(t, out.Success)
	}
	after, _ := s.GetPilot("P001")
	assert.Equal(t, before, after)
}

func TestAssign_HardConflictAlwaysWins(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)

	// P002 lacks the required cert: HARD, not overridable by any flag combo.
	for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
		out := e.Assign("PRJ001", "P002", KindPilot, flags[0], flags[1])
		assert.False(t, out.Success)
		assert.Contains(t, out.Message, "HARD")
		require.NotEmpty(t, out.Conflicts)
		assert.Equal(t, model.ConflictCertificationMissing, out.Conflicts[0].Kind)
	}
	p, _ := s.GetPilot("P002")
	assert.False(t, p.Assigned())
}

func TestAssign_SoftConflictNeedsOverride(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)

	// P003 is in Mumbai: exactly one SOFT location mismatch.
	out := e.Assign("PRJ001", "P003", KindPilot, true, false)
	assert.False(t, out.Success)
	assert.True(t, out.RequiresConfirmation)
	require.Len(t, out.Conflicts, 1)
	assert.Equal(t, model.ConflictLocationMismatch, out.Conflicts[0].Kind)

	out = e.Assign("PRJ001", "P003", KindPilot, true, true)
	require.True(t, out.Success)
	p, _ := s.GetPilot("P003")
	assert.Equal(t, "PRJ001", p.CurrentAssignment)
}

func TestAssign_OverrideWithoutConfirmIsStillDryRun(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)
	out := e.Assign("PRJ001", "P003", KindPilot, false, true)
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "Dry run")
	require.Len(t, out.Conflicts, 1, "dry run reports the soft conflicts it would override")
}

func TestAssign_Drone(t *testing.T) {
	s := seedStore()
	e := newTestEngine(t, s)
	out := e.Assign("PRJ001", "D001", KindDrone, true, false)
	require.True(t, out.Success)
	d, _ := s.GetDrone("D001")
	assert.Equal(t, model.DroneAssigned, d.Status)
	assert.Equal(t, "PRJ001", d.CurrentAssignment)
}

func TestAssign_MissionNotFound(t *testing.T) {
	e := newTestEngine(t, seedStore())
	out := e.Assign("PRJ404", "P001", KindPilot, true, false)
	assert.False(t, out.Success)
	require.Len(t, out.Conflicts, 1)
	assert.Equal(t, model.ConflictDataError, out.Conflicts[0].Kind)
}

// failingCommitStore simulates a resource disappearing between check and commit.
type failingCommitStore struct {
	*store.MemoryStore
}

func (f *failingCommitStore) SetPilotAssignment(string, string) bool { return false }

func TestAssign_CommitFailure(t *testing.T) {
	e, err := New(&failingCommitStore{seedStore()}, nil, nil, nil)
	require.NoError(t, err)
	out := e.Assign("PRJ001", "P001", KindPilot, true, false)
	assert.False(t, out.Success)
	assert.Equal(t, "Database update failed.", out.Message)
}

func TestAssign_PublishesEventOnCommit(t *testing.T) {
	s := seedStore()
	e, bus := newTestEngineWithBus(t, s)
	sub := bus.Subscribe()

	e.Assign("PRJ001", "P001", KindPilot, false, false)
	out := e.Assign("PRJ001", "P001", KindPilot, true, false)
	require.True(t, out.Success)

	ev := <-sub
	assert.Equal(t, out.DecisionID, ev.DecisionID)
	assert.Equal(t, "PRJ001", ev.MissionID)
	assert.Equal(t, "P001", ev.ResourceID)
	assert.Equal(t, "pilot", ev.Kind)
	assert.False(t, ev.Overridden)
	select {
	case _, open := <-sub:
		assert.False(t, open, "dry run must not publish")
	default:
	}
	bus.Close()
}

func TestParseResourceKind(t *testing.T) {
	k, err := ParseResourceKind(" Pilot ")
	require.NoError(t, err)
	assert.Equal(t, KindPilot, k)
	k, err = ParseResourceKind("DRONE")
	require.NoError(t, err)
	assert.Equal(t, KindDrone, k)
	_, err = ParseResourceKind("truck")
	assert.Error(t, err)
}
