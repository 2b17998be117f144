package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2.0", body["apiVersion"])
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "error")
}

func TestWriteError_MapsSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantCode   int
		wantStatus string
		wantMsg    string
	}{
		{fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT", "invalid input: bad payload"},
		{fmt.Errorf("%w: status=404 url=https://backend/x", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND", "Not Found"},
		{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE", "Service Unavailable"},
		{errors.New("sql: connection refused"), http.StatusInternalServerError, "INTERNAL", "Internal Server Error"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tc.err)
		require.Equal(t, tc.wantCode, rec.Code)

		var body struct {
			Error googleErrorBody `json:"error"`
		}
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.wantStatus, body.Error.Status)
		assert.Equal(t, tc.wantMsg, body.Error.Message)
	}
}
