package attendancerouter

import (
	"github.com/gofiber/fiber/v3"

	attendancehandler "school_records/internal/api/attendance/handler"
	"school_records/internal/api/middleware"
	"school_records/internal/api/router"
)

// RegisterRoutes đăng ký các route điểm danh.
// Giáo viên điểm danh và xem; chỉ admin được tính lại thủ công.
func RegisterRoutes(app fiber.Router, h *attendancehandler.AttendanceHandler) {
	prefix := router.RoutePrefix.V1 + "/attendance"

	auth := []fiber.Handler{middleware.AuthRequired()}
	adminOnly := []fiber.Handler{middleware.AuthRequired(), middleware.RequireRole(middleware.RoleAdmin)}

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/days", auth, h.MarkDay)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPatch, "/days/status", auth, h.UpdateSingleStatus)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodDelete, "/days", auth, h.DeleteDay)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/days/:classId/:date", auth, h.FetchDay)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/recompute", adminOnly, h.Recompute)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/grid", auth, h.FetchGrid)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/weekly-summary", auth, h.WeeklySummary)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/cumulative", auth, h.CumulativeOfClass)
}
