// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/mergington-high/activities/internal/model"
	"github.com/mergington-high/activities/internal/registry"
	"github.com/mergington-high/activities/internal/service"
)

// ActivityHandler holds all HTTP handlers for the activities API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// urlParam returns the named route parameter, percent-decoded. chi hands back
// the escaped segment when the request URL carried one, so "Soccer%20Team"
// must be unescaped before it can match the "Soccer Team" registry key.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns the full catalog as a JSON object keyed by activity name.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Activities())
}

// Signup handles POST /activities/{activityName}/signup?email={email}
// Adds the student to the activity's roster.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := urlParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	msg, err := h.svc.Signup(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{activityName}/participants/{email}
// Removes the student from the activity's roster.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := urlParam(r, "activityName")
	email := urlParam(r, "email")

	msg, err := h.svc.Unregister(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "Participant not found in this activity")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// ─── Root & health ────────────────────────────────────────────────────────────

// RootRedirect handles GET /
// Sends browsers to the static front-end.
func RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
