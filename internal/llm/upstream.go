package llm

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"

	"github.com/Rrens/fitsmart/internal/domain"
)

const maxErrorPayload = 4 << 10

// StatusError builds an UpstreamError from a non-success response, keeping
// a bounded copy of the body as payload.
func StatusError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPayload))
	return &domain.UpstreamError{
		Provider:   provider,
		StatusCode: resp.StatusCode,
		Payload:    strings.TrimSpace(string(body)),
	}
}

// TransportError wraps a failure that produced no usable response
func TransportError(provider string, err error) error {
	return &domain.UpstreamError{Provider: provider, Err: err}
}

var grpcHTTPStatus = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.Aborted:            http.StatusConflict,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.Canceled:           499,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unknown:            http.StatusInternalServerError,
	codes.DataLoss:           http.StatusInternalServerError,
}

// SDKError wraps an error from a Google client library. REST and gRPC API
// errors keep their status (gRPC codes mapped to HTTP) and message.
func SDKError(provider string, err error) error {
	upstream := &domain.UpstreamError{Provider: provider, Err: err}

	var restErr *googleapi.Error
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &restErr):
		upstream.StatusCode = restErr.Code
		upstream.Payload = truncatePayload(restErr.Body)
		if upstream.Payload == "" {
			upstream.Payload = restErr.Message
		}
	case errors.As(err, &apiErr):
		if code := apiErr.HTTPCode(); code > 0 {
			upstream.StatusCode = code
		} else if st := apiErr.GRPCStatus(); st != nil {
			upstream.StatusCode = grpcHTTPStatus[st.Code()]
			upstream.Payload = truncatePayload(st.Message())
		}
	}
	return upstream
}

func truncatePayload(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorPayload {
		s = s[:maxErrorPayload]
	}
	return s
}
