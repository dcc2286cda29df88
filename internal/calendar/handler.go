package calendar

import (
	"github.com/gofiber/fiber/v3"

	basehandler "school_records/internal/api/base/handler"
	"school_records/internal/api/middleware"
	"school_records/internal/api/router"
	"school_records/internal/common"
)

// markDayInput khai báo một ngày nghỉ
type markDayInput struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// RegisterRoutes đăng ký các route lịch ngày nghỉ.
// Khai báo và xóa ngày nghỉ thuộc về admin.
func RegisterRoutes(app fiber.Router, s *CalendarService) {
	prefix := router.RoutePrefix.V1 + "/calendar"

	auth := []fiber.Handler{middleware.AuthRequired()}
	adminOnly := []fiber.Handler{middleware.AuthRequired(), middleware.RequireRole(middleware.RoleAdmin)}

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/non-school-days", auth, func(c fiber.Ctx) error {
		days, cerr := s.NonSchoolDays(c.Context())
		return basehandler.HandleResponse(c, days, cerr)
	})

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/is-school-day", auth, func(c fiber.Ctx) error {
		date := c.Query("date")
		isSchool, cerr := s.IsSchoolDay(c.Context(), date)
		if cerr != nil {
			return basehandler.HandleResponse(c, nil, cerr)
		}
		return basehandler.HandleResponse(c, map[string]bool{"isSchoolDay": isSchool}, nil)
	})

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/non-school-days", adminOnly, func(c fiber.Ctx) error {
		var input markDayInput
		if err := c.Bind().Body(&input); err != nil {
			return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu ngày nghỉ")
		}
		if cerr := s.MarkNonSchoolDay(c.Context(), input.Date, input.Reason); cerr != nil {
			return basehandler.HandleResponse(c, nil, cerr)
		}
		return basehandler.HandleResponse(c, common.OkResult("Đã khai báo ngày nghỉ"), nil)
	})

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodDelete, "/non-school-days", adminOnly, func(c fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return basehandler.HandleBadRequest(c, "Thiếu date")
		}
		if cerr := s.ClearNonSchoolDay(c.Context(), date); cerr != nil {
			return basehandler.HandleResponse(c, nil, cerr)
		}
		return basehandler.HandleResponse(c, common.OkResult("Đã xóa ngày nghỉ"), nil)
	})
}
