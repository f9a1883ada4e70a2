package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/api/response"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/service"
)

var validate = validator.New()

const manualEntryHint = "could not analyze the image automatically; please enter the data manually"

// decode reads a JSON body into v and validates it. It writes the 400
// response itself and reports false on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "invalid request body")
		return false
	}

	if err := validate.Struct(v); err != nil {
		response.BadRequest(w, err.Error())
		return false
	}
	return true
}

// writeError maps service errors to envelope responses
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrInvalidProfile), errors.Is(err, service.ErrEmptyImage):
		response.BadRequest(w, err.Error())
	case domain.IsAnalysisError(err):
		response.Error(w, http.StatusBadGateway, map[string]string{
			"message": manualEntryHint,
			"details": err.Error(),
		})
	default:
		log.Error().Err(err).Msg("Request failed")
		response.InternalError(w, err.Error())
	}
}
