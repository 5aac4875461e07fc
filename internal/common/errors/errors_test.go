package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeActivityNotFound, http.StatusNotFound},
		{ErrCodeAlreadyRegistered, http.StatusBadRequest},
		{ErrCodeNotRegistered, http.StatusBadRequest},
		{ErrCodeMissingEmail, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestConstructorMessages(t *testing.T) {
	// Clients match on these lowercase substrings; they are part of the API.
	tests := []struct {
		name          string
		err           *ServiceError
		wantSubstring string
	}{
		{"not found", NewActivityNotFoundError("Chess Club"), "not found"},
		{"already registered", NewAlreadyRegisteredError("a@mergington.edu", "Chess Club"), "already registered"},
		{"not registered", NewNotRegisteredError("a@mergington.edu", "Chess Club"), "not registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, strings.ToLower(tt.err.Message), tt.wantSubstring)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestHandler_Write(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		wantDetail     string
	}{
		{
			name:           "service error maps to its status",
			err:            NewActivityNotFoundError("Chess Club"),
			expectedStatus: http.StatusNotFound,
			wantDetail:     "not found",
		},
		{
			name:           "plain error normalized to internal",
			err:            fmt.Errorf("boom"),
			expectedStatus: http.StatusInternalServerError,
			wantDetail:     "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&testLogger{t: t})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)

			handler.Write(rec, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, strings.ToLower(body["detail"]), tt.wantDetail)
		})
	}
}
