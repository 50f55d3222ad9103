// Package model defines the core domain types for the activities service.
package model

// Activity represents one extracurricular offering. The activity name is the
// registry key rather than a struct field, so the catalog serializes as a
// JSON object keyed by name.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the envelope for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
