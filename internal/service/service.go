// Package service implements the enrollment operations between the HTTP
// handlers and the registry.
package service

import (
	"fmt"

	"github.com/mergington-high/activities/internal/model"
	"github.com/mergington-high/activities/internal/registry"
)

// ActivityService orchestrates enrollment operations against the registry.
type ActivityService struct {
	reg *registry.Registry
}

// NewActivityService constructs an ActivityService.
func NewActivityService(reg *registry.Registry) *ActivityService {
	return &ActivityService{reg: reg}
}

// Activities returns the current catalog snapshot.
func (s *ActivityService) Activities() map[string]model.Activity {
	return s.reg.Activities()
}

// Signup enrolls email in the named activity and returns the confirmation
// message. Domain errors from the registry are surfaced directly so handlers
// can set the correct HTTP status.
//
// The name and email are matched exactly as given: no trimming, no case
// folding. Normalizing here would silently change which roster entries match.
func (s *ActivityService) Signup(activityName, email string) (string, error) {
	if err := s.reg.Signup(activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s signed up for %s", email, activityName), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message. Same exact-match contract as Signup.
func (s *ActivityService) Unregister(activityName, email string) (string, error) {
	if err := s.reg.Unregister(activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}
