package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "write map",
			data:       map[string]string{"status": "ok"},
			statusCode: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "write struct",
			data:       struct{ Error string }{Error: "access denied"},
			statusCode: http.StatusForbidden,
			wantBody:   `{"Error":"access denied"}`,
		},
		{
			name:       "write nil",
			data:       nil,
			statusCode: http.StatusNoContent,
			wantBody:   `null`,
		},
		{
			name:       "unserializable data",
			data:       func() {},
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			written, err := WriteJSON(recorder, test.data, test.statusCode)

			if test.wantErr {
				assert.Error(t, err)
				assert.Zero(t, written)
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.statusCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, test.wantBody, recorder.Body.String())
			assert.Equal(t, len(recorder.Body.String()), written)
		})
	}
}
