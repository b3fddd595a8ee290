// Copyright (c) 2026 FeeFlow. All rights reserved.

package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeflow/portal/internal/platform/apperr"
	"github.com/feeflow/portal/internal/platform/backend"
)

func TestClient_BearerHeaderSync(t *testing.T) {
	var seen []string
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := backend.New(server.URL, nil)

	// No header before a token is installed.
	require.NoError(t, client.GetJSON(context.Background(), "/ping", nil))

	client.SetAuthToken("tok-123")
	require.NoError(t, client.GetJSON(context.Background(), "/ping", nil))

	client.ClearAuthToken()
	require.NoError(t, client.GetJSON(context.Background(), "/ping", nil))

	assert.Equal(t, []string{"", "Bearer tok-123", ""}, seen)
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message_field", 400, `{"message":"Nope"}`, "Nope"},
		{"error_field", 400, `{"error":"Denied"}`, "Denied"},
		{"message_beats_error", 400, `{"message":"First","error":"Second"}`, "First"},
		{"empty_body", 500, ``, "Request failed with status 500."},
		{"non_json_body", 502, `<html>bad gateway</html>`, "Request failed with status 502."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Post("/op", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			server := httptest.NewServer(router)
			defer server.Close()

			client := backend.New(server.URL, nil)
			err := client.PostJSON(context.Background(), "/op", map[string]string{}, nil)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeBackend, ae.Code)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

func TestClient_DecodesResponse(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/thing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"fee-plan"}`))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := backend.New(server.URL, nil)
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/thing", &out))
	assert.Equal(t, "fee-plan", out.Name)
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := backend.New(url, nil)
	err := client.GetJSON(context.Background(), "/anything", nil)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeBackend, ae.Code)
	assert.NotEmpty(t, ae.Message)
}
