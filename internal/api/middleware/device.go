package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rrens/fitsmart/internal/api/response"
)

type contextKey string

const DeviceIDKey contextKey = "deviceID"

// GetDeviceID gets the device ID from context
func GetDeviceID(ctx context.Context) (uuid.UUID, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(uuid.UUID)
	return deviceID, ok
}

// DeviceContext extracts the device ID from the URL and adds it to the context
func DeviceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceIDStr := chi.URLParam(r, "deviceID")
		if deviceIDStr == "" {
			response.Error(w, http.StatusBadRequest, "missing device ID")
			return
		}

		deviceID, err := uuid.Parse(deviceIDStr)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "invalid device ID")
			return
		}

		ctx := context.WithValue(r.Context(), DeviceIDKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
