//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response on the wire.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Reason string `json:"reason"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedMsg is set, that
// error.message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()
	body := decodeError(t, w, expectedStatus)
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}

// AssertErrorReason checks detail.reason, the text of the domain error.
func AssertErrorReason(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, reason error) {
	t.Helper()
	body := decodeError(t, w, expectedStatus)
	assert.Equal(t, reason.Error(), body.Detail.Reason)
}

// AssertAttachment checks the headers of a file download.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filename string) {
	t.Helper()
	assert.Equal(t, contentType, w.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", filename), w.Header().Get("Content-Disposition"))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
