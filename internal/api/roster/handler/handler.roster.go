package rosterhandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "school_records/internal/api/base/handler"
	rosterservice "school_records/internal/api/roster/service"
)

// RosterHandler xử lý các request tra cứu học sinh, lớp và cấu hình trường
type RosterHandler struct {
	service *rosterservice.RosterService
}

// NewRosterHandler tạo handler với service đã khởi tạo
func NewRosterHandler(service *rosterservice.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// PupilsOfClass lấy danh sách học sinh của một lớp
// GET /roster/classes/:classId/pupils
func (h *RosterHandler) PupilsOfClass(c fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId")
	}

	pupils, cerr := h.service.PupilsOfClass(c.Context(), classID)
	return basehandler.HandleResponse(c, pupils, cerr)
}

// AllClasses lấy danh sách lớp của trường
// GET /roster/classes
func (h *RosterHandler) AllClasses(c fiber.Ctx) error {
	classes, cerr := h.service.AllClasses(c.Context())
	return basehandler.HandleResponse(c, classes, cerr)
}

// CurrentSettings lấy niên khóa và học kỳ hiện hành
// GET /roster/settings
func (h *RosterHandler) CurrentSettings(c fiber.Ctx) error {
	settings, cerr := h.service.CurrentSettings(c.Context())
	return basehandler.HandleResponse(c, settings, cerr)
}
