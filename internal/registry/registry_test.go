package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return New(DefaultCatalog())
}

func participants(t *testing.T, r *Registry, name string) []string {
	t.Helper()
	a, ok := r.Activities()[name]
	require.True(t, ok, "activity %q should exist", name)
	return a.Participants
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 9)

	for name, a := range catalog {
		assert.NotEmpty(t, a.Description, "%s description", name)
		assert.NotEmpty(t, a.Schedule, "%s schedule", name)
		assert.Positive(t, a.MaxParticipants, "%s max_participants", name)
		assert.Len(t, a.Participants, 2, "%s initial participants", name)
	}

	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		catalog["Chess Club"].Participants)
}

func TestSignupUnknownActivity(t *testing.T) {
	r := newTestRegistry()

	err := r.Signup("Unknown Club", "x@y.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestSignupAppendsAtEnd(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Signup("Chess Club", "new@x.edu"))

	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "new@x.edu"},
		participants(t, r, "Chess Club"))
}

func TestSignupDuplicateLeavesRosterUnchanged(t *testing.T) {
	r := newTestRegistry()
	before := participants(t, r, "Chess Club")

	err := r.Signup("Chess Club", "daniel@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)
	assert.Equal(t, before, participants(t, r, "Chess Club"))
}

func TestSignupIsCaseSensitive(t *testing.T) {
	r := newTestRegistry()

	// Different case is a different participant, not a duplicate.
	require.NoError(t, r.Signup("Chess Club", "DANIEL@mergington.edu"))

	// And a different-case activity name is an unknown activity.
	err := r.Signup("chess club", "someone@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	r := newTestRegistry()

	err := r.Unregister("Unknown Club", "x@y.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUnregisterUnknownParticipant(t *testing.T) {
	r := newTestRegistry()
	before := participants(t, r, "Chess Club")

	err := r.Unregister("Chess Club", "stranger@mergington.edu")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.Equal(t, before, participants(t, r, "Chess Club"))
}

func TestUnregisterPreservesOrderOfRemaining(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Signup("Chess Club", "new@x.edu"))

	require.NoError(t, r.Unregister("Chess Club", "michael@mergington.edu"))

	assert.Equal(t,
		[]string{"daniel@mergington.edu", "new@x.edu"},
		participants(t, r, "Chess Club"))
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	r := newTestRegistry()
	before := participants(t, r, "Drama Club")

	require.NoError(t, r.Signup("Drama Club", "roundtrip@mergington.edu"))
	require.NoError(t, r.Unregister("Drama Club", "roundtrip@mergington.edu"))

	after := participants(t, r, "Drama Club")
	assert.Equal(t, before, after)
	assert.NotContains(t, after, "roundtrip@mergington.edu")
}

func TestCapacityIsNotEnforced(t *testing.T) {
	r := newTestRegistry()
	maxP := r.Activities()["Chess Club"].MaxParticipants

	// Fill well past max_participants; every signup succeeds because
	// capacity is advisory display data.
	for i := 0; i < maxP+5; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.NoError(t, r.Signup("Chess Club", email))
	}

	assert.Len(t, participants(t, r, "Chess Club"), maxP+5+2)
}

func TestActivitiesSnapshotIsDetached(t *testing.T) {
	r := newTestRegistry()

	snapshot := r.Activities()
	chess := snapshot["Chess Club"]
	chess.Participants[0] = "tampered@mergington.edu"
	delete(snapshot, "Soccer Team")

	assert.Equal(t, "michael@mergington.edu", participants(t, r, "Chess Club")[0])
	assert.Contains(t, r.Activities(), "Soccer Team")
}

func TestNewCopiesCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	r := New(catalog)

	catalog["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(catalog, "Gym Class")

	assert.Equal(t, "michael@mergington.edu", participants(t, r, "Chess Club")[0])
	assert.Contains(t, r.Activities(), "Gym Class")
}

func TestConcurrentSignups(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("parallel%d@mergington.edu", i)
			assert.NoError(t, r.Signup("Gym Class", email))
		}(i)
	}
	wg.Wait()

	assert.Len(t, participants(t, r, "Gym Class"), 52)
}
