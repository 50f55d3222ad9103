// Package registry implements the in-memory enrollment registry: the catalog
// of activities and the participant rosters, mutated only through Signup and
// Unregister so the uniqueness invariant holds.
package registry

import (
	"errors"
	"sync"

	"github.com/mergington-high/activities/internal/model"
)

// ErrActivityNotFound is returned when no activity matches the given name.
// Lookups are exact: case-sensitive and whitespace-sensitive.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the email is already on the roster.
var ErrAlreadySignedUp = errors.New("already signed up for this activity")

// ErrParticipantNotFound is returned by Unregister when the activity exists
// but the email is not on its roster. Kept distinct from ErrActivityNotFound
// for diagnostics; both map to 404 at the HTTP boundary.
var ErrParticipantNotFound = errors.New("participant not found in this activity")

// Registry holds the catalog of activities keyed by name. The mutex
// serializes all access because the HTTP host serves requests in parallel.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*model.Activity
}

// New builds a Registry from the given catalog. The catalog is deep-copied so
// callers (and tests) can construct independent instances from shared seed
// data.
func New(catalog map[string]*model.Activity) *Registry {
	activities := make(map[string]*model.Activity, len(catalog))
	for name, a := range catalog {
		activities[name] = &model.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string(nil), a.Participants...),
		}
	}
	return &Registry{activities: activities}
}

// Activities returns a snapshot of the full catalog. Rosters are copied so the
// caller cannot mutate registry state through the returned map.
func (r *Registry) Activities() map[string]model.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		snapshot[name] = model.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string(nil), a.Participants...),
		}
	}
	return snapshot
}

// Signup appends email to the named activity's roster.
//
// Returns ErrActivityNotFound for an unknown activity and ErrAlreadySignedUp
// when the email is already on the roster; on error nothing is mutated.
// MaxParticipants is advisory display data and is deliberately not enforced.
func (r *Registry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range activity.Participants {
		if p == email {
			return ErrAlreadySignedUp
		}
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the named activity's roster, preserving the
// order of the remaining participants.
//
// Returns ErrActivityNotFound for an unknown activity and
// ErrParticipantNotFound when the email is not on the roster; on error
// nothing is mutated.
func (r *Registry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}
