package debuglog

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestDebugLogHandler_ServeHTTP(t *testing.T) {
	var out bytes.Buffer
	handler := New(newNoopLogger(), &out)

	body, err := json.Marshal(models.DebugLogRequest{
		Level:   "ERROR",
		Message: "failed to render dashboard",
		Data:    map[string]any{"component": "chart", "retry": 3},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/debug/log", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "log recorded", got["message"])

	printed := out.String()
	lines := strings.Split(strings.TrimRight(printed, "\n"), "\n")
	// Блок обрамлён разделителями из 80 символов "="
	assert.Equal(t, strings.Repeat("=", 80), lines[0])
	assert.Equal(t, strings.Repeat("=", 80), lines[len(lines)-1])
	assert.Contains(t, printed, "[FRONTEND] [ERROR] failed to render dashboard")
	assert.Contains(t, printed, "component: chart")
	assert.Contains(t, printed, "retry: 3")
}

func TestDebugLogHandler_DefaultLevel(t *testing.T) {
	var out bytes.Buffer
	handler := New(newNoopLogger(), &out)

	req := httptest.NewRequest(http.MethodPost, "/api/debug/log",
		strings.NewReader(`{"message":"plain message"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.String(), "[FRONTEND] [INFO] plain message")
}

func TestDebugLogHandler_InvalidBody(t *testing.T) {
	var out bytes.Buffer
	handler := New(newNoopLogger(), &out)

	req := httptest.NewRequest(http.MethodPost, "/api/debug/log", strings.NewReader("not a json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, out.String())
}
