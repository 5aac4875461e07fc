// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
)

// Handler writes request errors as HTTP responses with standardized bodies.
type Handler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// detailBody is the error response payload. The detail field carries the
// human-readable message clients match on.
type detailBody struct {
	Detail string `json:"detail"`
}

// Write handles any error from a request handler: normalize, log, respond.
func (h *Handler) Write(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := h.normalizeError(err)
	status := HTTPStatus(svcErr.Code)

	h.logError(r, svcErr, status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(detailBody{Detail: svcErr.Message})
}

// normalizeError ensures we always have a ServiceError
func (h *Handler) normalizeError(err error) *ServiceError {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr
	}
	return NewInternalError(err)
}

func (h *Handler) logError(r *http.Request, svcErr *ServiceError, status int) {
	fields := map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(svcErr.Code),
		"message":   svcErr.Message,
		"details":   svcErr.Details,
		"status":    status,
	}

	if IsClientError(svcErr.Code) {
		h.logger.Warn("request rejected", fields)
		return
	}
	h.logger.Error("request failed", fields)
}
