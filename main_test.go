package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookswap/internal/config"
	"bookswap/internal/events"
	"bookswap/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth:    config.Auth{JWTSecret: "test_jwt_secret", TokenExpiry: time.Hour},
		Storage: config.Storage{Driver: storage.DriverMemory},
		AI:      config.AI{Timeout: time.Second},
	}
}

func TestServer_Health(t *testing.T) {
	srv := newServer(testConfig(), storage.NewMemoryStore(), zap.NewNop())
	defer srv.close()

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["storage"])
	assert.Equal(t, false, body["ai"])
}

func TestServer_ServesSeededListings(t *testing.T) {
	srv := newServer(testConfig(), storage.NewMemoryStore(), zap.NewNop())
	defer srv.close()

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(data, &listings))
	assert.Len(t, listings, 3)
}

func TestStartRelays_NoBrokersConfigured(t *testing.T) {
	bus := events.NewBus()
	closeAll := startRelays(testConfig(), bus, zap.NewNop())
	assert.NotPanics(t, func() { bus.Publish(events.ListingsChanged) })
	closeAll()
}
