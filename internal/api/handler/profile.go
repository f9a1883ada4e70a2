package handler

import (
	"net/http"

	"github.com/Rrens/fitsmart/internal/api/middleware"
	"github.com/Rrens/fitsmart/internal/api/response"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/service"
)

// ProfileHandler handles onboarding and profile endpoints
type ProfileHandler struct {
	profiles *service.ProfileService
	tracker  *service.TrackerService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, tracker *service.TrackerService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, tracker: tracker}
}

// Onboard computes a profile without storing it
func (h *ProfileHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var answers domain.OnboardingAnswers
	if !decode(w, r, &answers) {
		return
	}

	summary, err := h.profiles.Summarize(answers)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, summary)
}

// MealPlan generates a plan for posted answers
func (h *ProfileHandler) MealPlan(w http.ResponseWriter, r *http.Request) {
	var answers domain.OnboardingAnswers
	if !decode(w, r, &answers) {
		return
	}

	plan, err := h.profiles.MealPlan(answers)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, plan)
}

// Save computes and stores the device profile
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	var answers domain.OnboardingAnswers
	if !decode(w, r, &answers) {
		return
	}

	summary, err := h.tracker.SaveProfile(r.Context(), deviceID, answers)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, summary)
}

// Get returns the stored device profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	profile, err := h.tracker.Profile(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, profile)
}

// DeviceMealPlan generates the plan for the stored profile
func (h *ProfileHandler) DeviceMealPlan(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	plan, err := h.tracker.MealPlan(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, plan)
}
