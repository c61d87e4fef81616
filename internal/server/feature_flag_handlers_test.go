package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/featureflags"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeatureFlags(t *testing.T) {
	app := fiber.New()
	s := &Server{
		config:       testConfig(),
		featureFlags: featureflags.NewManager("new_feed=on,dark_mode=off"),
	}
	app.Get("/flags", asUser(7), s.GetFeatureFlags)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/flags", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	raw, ok := body["raw"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "on", raw["new_feed"])

	evaluated, ok := body["evaluated"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, evaluated["new_feed"])
	assert.Equal(t, false, evaluated["dark_mode"])
}
