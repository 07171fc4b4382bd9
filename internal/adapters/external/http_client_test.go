package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/mocks"
	"sunsip.app/pkg/errors"
)

// setupLoggerMock accepts any log call with up to five fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	var fields []interface{}
	for i := 0; i <= 5; i++ {
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
		fields = append(fields, mock.Anything)
	}

	return mockLogger
}

func TestDoJSON_StatusHandling(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		accepted   []int
		wantStatus int
		wantErr    bool
	}{
		{name: "OK", status: http.StatusOK, body: `{"value":"ok"}`},
		{name: "CreatedAccepted", status: http.StatusCreated, body: `{"value":"ok"}`, accepted: []int{http.StatusCreated}},
		{name: "CreatedRejected", status: http.StatusCreated, body: `{"value":"ok"}`, wantStatus: http.StatusCreated, wantErr: true},
		{name: "Unauthorized", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, wantStatus: http.StatusUnauthorized, wantErr: true},
		{name: "Overloaded", status: http.StatusServiceUnavailable, body: `overloaded`, wantStatus: http.StatusServiceUnavailable, wantErr: true},
		{name: "MalformedBody", status: http.StatusOK, body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			req, err := newJSONRequest(context.Background(), http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			var out struct {
				Value string `json:"value"`
			}
			err = doJSONAccepting(server.Client(), req, &out, "test", setupLoggerMock(t), tt.accepted...)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "ok", out.Value)
				return
			}
			assert.True(t, errors.IsExternalAPIError(err))
			assert.Equal(t, tt.wantStatus, errors.StatusCodeOf(err))
		})
	}
}

func TestDoJSON_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	req, err := newJSONRequest(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	var out map[string]interface{}
	err = doJSON(http.DefaultClient, req, &out, "test", setupLoggerMock(t))

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, 0, errors.StatusCodeOf(err))
}
