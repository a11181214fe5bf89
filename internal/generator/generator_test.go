package generator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"promptGallery/internal/config"
	"promptGallery/internal/generator"
)

func TestGenerate(t *testing.T) {
	imageBytes := []byte("fake jpeg bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "a sunset", r.URL.Query().Get("prompt"))
		require.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		require.Equal(t, "image/jpeg", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(imageBytes)
	}))
	defer srv.Close()

	client := generator.New(&config.Generator{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})

	data, err := client.Generate(context.Background(), "a sunset")

	require.NoError(t, err)
	require.Equal(t, imageBytes, data)
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("model is warming up"))
	}))
	defer srv.Close()

	client := generator.New(&config.Generator{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})

	data, err := client.Generate(context.Background(), "a sunset")

	require.Error(t, err)
	require.Nil(t, data)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "model is warming up")
}

func TestGenerateConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := generator.New(&config.Generator{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})

	_, err := client.Generate(context.Background(), "a sunset")

	require.Error(t, err)
}
