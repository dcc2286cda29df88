package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "school_records/internal/api/base/handler"
)

// RoutePrefix chứa các prefix chuẩn của API
var RoutePrefix = struct {
	V1 string
}{
	V1: "/api/v1",
}

// RegisterRouteWithMiddleware đăng ký một route với danh sách middleware riêng.
// Fiber v3 áp middleware theo group nên mỗi route có middleware riêng
// cần một group con với prefix đầy đủ.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler func(c fiber.Ctx) error) {
	group := router.Group(prefix)
	for _, m := range middlewares {
		group.Use(m)
	}

	wrapped := basehandler.SafeHandler(handler)
	switch method {
	case fiber.MethodGet:
		group.Get(path, wrapped)
	case fiber.MethodPost:
		group.Post(path, wrapped)
	case fiber.MethodPut:
		group.Put(path, wrapped)
	case fiber.MethodPatch:
		group.Patch(path, wrapped)
	case fiber.MethodDelete:
		group.Delete(path, wrapped)
	}
}
