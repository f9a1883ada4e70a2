package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/api/middleware"
	"github.com/Rrens/fitsmart/internal/api/response"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/service"
)

// maxPhotoBytes limits multipart photo uploads
const maxPhotoBytes = 10 << 20

var photoTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// AnalyzeHandler handles meal photo analysis endpoints
type AnalyzeHandler struct {
	analyzer *service.AnalyzerService
	tracker  *service.TrackerService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzer *service.AnalyzerService, tracker *service.TrackerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, tracker: tracker}
}

// analysisFailure is the body returned when a photo cannot be analyzed
type analysisFailure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// AnalyzeFood answers with the bare analysis result. Every failure,
// including a malformed body, is a 500 with an analysisFailure body.
func (h *AnalyzeHandler) AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	var req domain.MealAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAnalysisFailure(w, err)
		return
	}

	result, err := h.analyzer.AnalyzeMeal(r.Context(), req)
	if err != nil {
		writeAnalysisFailure(w, err)
		return
	}

	response.Raw(w, http.StatusOK, result)
}

func writeAnalysisFailure(w http.ResponseWriter, err error) {
	details := manualEntryHint
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		details = "check that the vision provider credentials (for example OPENAI_API_KEY) are configured"
	}

	response.Raw(w, http.StatusInternalServerError, analysisFailure{
		Error:   "could not analyze the image",
		Message: err.Error(),
		Details: details,
	})
}

// AnalyzeAndLog analyzes a photo and logs the result as today's meal
func (h *AnalyzeHandler) AnalyzeAndLog(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	var req domain.MealAnalysisRequest
	if !decode(w, r, &req) {
		return
	}

	h.analyzeAndLog(w, r, deviceID, req)
}

// UploadPhoto accepts a multipart photo in the "file" field, with
// optional "restriction" and "provider" fields, and logs the analyzed meal.
func (h *AnalyzeHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing device ID")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	mime, allowed := photoTypes[ext]
	if !allowed {
		response.BadRequest(w, "invalid file type. Allowed: .jpg, .jpeg, .png, .webp, .heic")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		response.InternalError(w, "failed to read file")
		return
	}

	req := domain.MealAnalysisRequest{
		Image:               "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		DietaryRestrictions: r.MultipartForm.Value["restriction"],
		Provider:            r.FormValue("provider"),
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	h.analyzeAndLog(w, r, deviceID, req)
}

// analyzeAndLog falls back to the stored profile's restrictions when the
// request carries none.
func (h *AnalyzeHandler) analyzeAndLog(w http.ResponseWriter, r *http.Request, deviceID uuid.UUID, req domain.MealAnalysisRequest) {
	if len(req.DietaryRestrictions) == 0 {
		profile, err := h.tracker.Profile(r.Context(), deviceID)
		switch {
		case err == nil:
			req.DietaryRestrictions = profile.RestrictionTags()
		case !errors.Is(err, domain.ErrNotFound):
			writeError(w, err)
			return
		}
	}

	result, err := h.analyzer.AnalyzeMeal(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.tracker.LogAnalyzedMeal(r.Context(), deviceID, result, req.Image)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Debug().Str("device_id", deviceID.String()).Int64("meal_id", entry.ID).Msg("Analyzed meal logged")

	response.Created(w, map[string]any{
		"meal":     entry,
		"analysis": result,
	})
}
