package hierarchyrouter

import (
	"github.com/gofiber/fiber/v3"

	hierarchyhandler "school_records/internal/api/hierarchy/handler"
	"school_records/internal/api/middleware"
	"school_records/internal/api/router"
)

// RegisterRoutes đăng ký các route thứ tự lớp
func RegisterRoutes(app fiber.Router, h *hierarchyhandler.HierarchyHandler) {
	prefix := router.RoutePrefix.V1 + "/hierarchy"

	auth := []fiber.Handler{middleware.AuthRequired()}
	adminOnly := []fiber.Handler{middleware.AuthRequired(), middleware.RequireRole(middleware.RoleAdmin)}

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/initialize", adminOnly, h.Initialize)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/", auth, h.GetOrdered)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/next/:classId", auth, h.GetNext)
}
