package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags returns the configured flags and their evaluated state for
// the current user.
// @Summary Get feature flags
// @Description Return raw flag configuration and per-user evaluation
// @Tags meta
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(userID),
	})
}
