package rosterrouter

import (
	"github.com/gofiber/fiber/v3"

	"school_records/internal/api/middleware"
	rosterhandler "school_records/internal/api/roster/handler"
	"school_records/internal/api/router"
)

// RegisterRoutes đăng ký các route tra cứu hồ sơ trường
func RegisterRoutes(app fiber.Router, h *rosterhandler.RosterHandler) {
	prefix := router.RoutePrefix.V1 + "/roster"

	auth := []fiber.Handler{middleware.AuthRequired()}

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/classes", auth, h.AllClasses)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/classes/:classId/pupils", auth, h.PupilsOfClass)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/settings", auth, h.CurrentSettings)
}
