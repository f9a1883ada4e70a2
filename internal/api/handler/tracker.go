package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Rrens/fitsmart/internal/api/middleware"
	"github.com/Rrens/fitsmart/internal/api/response"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/service"
)

// TrackerHandler handles per-device tracker endpoints
type TrackerHandler struct {
	tracker *service.TrackerService
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(tracker *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// Workouts lists the workouts for the stored location with completion flags
func (h *TrackerHandler) Workouts(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	workouts, err := h.tracker.Workouts(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, workouts)
}

// CompleteWorkout marks a catalog workout as done
func (h *TrackerHandler) CompleteWorkout(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	summary, err := h.tracker.CompleteWorkout(r.Context(), deviceID, chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, summary)
}

// CustomWorkout records a user-defined workout
func (h *TrackerHandler) CustomWorkout(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	var custom domain.CustomWorkout
	if !decode(w, r, &custom) {
		return
	}

	summary, err := h.tracker.AddCustomWorkout(r.Context(), deviceID, custom)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, summary)
}

// Meals lists today's meals
func (h *TrackerHandler) Meals(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	meals, err := h.tracker.Meals(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, meals)
}

// LogMeal stores a manually entered meal
func (h *TrackerHandler) LogMeal(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	var meal domain.MealCreate
	if !decode(w, r, &meal) {
		return
	}

	entry, err := h.tracker.LogMeal(r.Context(), deviceID, meal)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, entry)
}

// DeleteMeal removes a meal by id
func (h *TrackerHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	mealID, err := strconv.ParseInt(chi.URLParam(r, "mealID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid meal ID")
		return
	}

	if err := h.tracker.DeleteMeal(r.Context(), deviceID, mealID); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Water returns today's hydration status
func (h *TrackerHandler) Water(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	hydration, err := h.tracker.Hydration(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, hydration)
}

// AddWater logs glasses of water; an empty body adds one glass
func (h *TrackerHandler) AddWater(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	var req domain.WaterAdd
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	hydration, err := h.tracker.AddWater(r.Context(), deviceID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, hydration)
}

// RemoveWater takes back the last glass
func (h *TrackerHandler) RemoveWater(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	hydration, err := h.tracker.RemoveWater(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, hydration)
}

// Progress returns the daily dashboard
func (h *TrackerHandler) Progress(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	progress, err := h.tracker.Progress(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, progress)
}

// Reset clears every tracker key of the device
func (h *TrackerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	if err := h.tracker.Reset(r.Context(), deviceID); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}
