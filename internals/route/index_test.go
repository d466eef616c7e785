package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sertifikatku_backend/internals/databases/mongodb"
)

// Health harus jawab 200 walau Mongo belum konek.
func TestHealthWhileDisconnected(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, mongodb.NewManager("mongodb://127.0.0.1:1", "testdb"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disconnected", body["mongo"])
}

// Operasi store harus balas 500 (bukan hang/crash) selama disconnected.
func TestListWhileDisconnected(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, mongodb.NewManager("mongodb://127.0.0.1:1", "testdb"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/certificates/list", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
