package hierarchyhandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "school_records/internal/api/base/handler"
	hierarchyservice "school_records/internal/api/hierarchy/service"
)

// HierarchyHandler xử lý các request về thứ tự lớp
type HierarchyHandler struct {
	service *hierarchyservice.HierarchyService
}

// NewHierarchyHandler tạo handler với service đã khởi tạo
func NewHierarchyHandler(service *hierarchyservice.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{service: service}
}

// Initialize khởi tạo thứ tự lớp nếu chưa có
// POST /hierarchy/initialize
func (h *HierarchyHandler) Initialize(c fiber.Ctx) error {
	result, cerr := h.service.Initialize(c.Context())
	return basehandler.HandleResponse(c, result, cerr)
}

// GetOrdered lấy thứ tự lớp hiện hành
// GET /hierarchy
func (h *HierarchyHandler) GetOrdered(c fiber.Ctx) error {
	ordered, cerr := h.service.GetOrdered(c.Context())
	return basehandler.HandleResponse(c, ordered, cerr)
}

// GetNext lấy lớp kế tiếp của một lớp
// GET /hierarchy/next/:classId
func (h *HierarchyHandler) GetNext(c fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId")
	}

	next, cerr := h.service.GetNext(c.Context(), classID)
	if cerr != nil {
		return basehandler.HandleResponse(c, nil, cerr)
	}

	terminal, cerr := h.service.IsTerminalClass(c.Context(), classID)
	if cerr != nil {
		return basehandler.HandleResponse(c, nil, cerr)
	}
	level, cerr := h.service.GetLevel(c.Context(), classID)
	if cerr != nil {
		return basehandler.HandleResponse(c, nil, cerr)
	}

	return basehandler.HandleResponse(c, map[string]interface{}{
		"classId":    classID,
		"next":       next,
		"isTerminal": terminal,
		"level":      level,
	}, nil)
}
