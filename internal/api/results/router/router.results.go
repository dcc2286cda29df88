package resultsrouter

import (
	"github.com/gofiber/fiber/v3"

	"school_records/internal/api/middleware"
	resultshandler "school_records/internal/api/results/handler"
	"school_records/internal/api/router"
)

// RegisterRoutes đăng ký các route kết quả học tập.
// Giáo viên lưu nháp và nộp; duyệt, từ chối và khóa thuộc về admin.
func RegisterRoutes(app fiber.Router, h *resultshandler.ResultsHandler) {
	prefix := router.RoutePrefix.V1 + "/results"

	auth := []fiber.Handler{middleware.AuthRequired()}
	adminOnly := []fiber.Handler{middleware.AuthRequired(), middleware.RequireRole(middleware.RoleAdmin)}

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPut, "/drafts", auth, h.SaveDraft)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodDelete, "/drafts", auth, h.DeleteDraft)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/drafts", auth, h.DraftsOfTerm)

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/submit", auth, h.Submit)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/submission", auth, h.SubmissionOfTerm)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/approve", adminOnly, h.Approve)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/reject", adminOnly, h.Reject)

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/published", auth, h.PublishedOfTerm)

	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/lock", adminOnly, h.Lock)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodPost, "/unlock", adminOnly, h.Unlock)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/lock-status", auth, h.IsLocked)
	router.RegisterRouteWithMiddleware(app, prefix, fiber.MethodGet, "/lock", auth, h.LockDetail)
}
