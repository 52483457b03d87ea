package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	return rec, captured
}

// ---- Tests ----

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rec, req := executeWithTraceID(&Handler{logger: logger.Nop()}, "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))

	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, "my-custom-trace-id", traceID)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rec, req := executeWithTraceID(&Handler{logger: logger.Nop()}, "")

	headerID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(headerID)
	require.NoError(t, err)

	ctxID, _ := utils.GetTraceIDFromContext(req.Context())
	assert.Equal(t, headerID, ctxID)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rec1, _ := executeWithTraceID(h, "")
	rec2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rec1.Header().Get(traceIDHeader), rec2.Header().Get(traceIDHeader))
}

func TestWithTraceID_ContextLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	_, req := executeWithTraceID(newBufferedHandler(&buf), "abc-123")

	logger.FromRequest(req).Info().Msg("inside handler")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["trace_id"])
}

func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)
	executeWithTraceID(h, "abc-123")

	h.logger.Info().Msg("parent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "trace_id")
}
