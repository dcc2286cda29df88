package attendancehandler

import (
	"github.com/gofiber/fiber/v3"

	attendancedto "school_records/internal/api/attendance/dto"
	attendanceservice "school_records/internal/api/attendance/service"
	basehandler "school_records/internal/api/base/handler"
)

// AttendanceHandler xử lý các request điểm danh
type AttendanceHandler struct {
	service *attendanceservice.AttendanceService
}

// NewAttendanceHandler tạo handler với service đã khởi tạo
func NewAttendanceHandler(service *attendanceservice.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// MarkDay điểm danh một lớp trong một ngày
// POST /attendance/days
func (h *AttendanceHandler) MarkDay(c fiber.Ctx) error {
	var input attendancedto.MarkDayInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu điểm danh")
	}

	result, cerr := h.service.MarkDay(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// UpdateSingleStatus sửa trạng thái một học sinh trong ngày đã điểm danh
// PATCH /attendance/days/status
func (h *AttendanceHandler) UpdateSingleStatus(c fiber.Ctx) error {
	var input attendancedto.UpdateStatusInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu cập nhật")
	}

	result, cerr := h.service.UpdateSingleStatus(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// DeleteDay xóa điểm danh một ngày
// DELETE /attendance/days
func (h *AttendanceHandler) DeleteDay(c fiber.Ctx) error {
	var input attendancedto.DeleteDayInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu xóa")
	}

	result, cerr := h.service.DeleteDay(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// Recompute tính lại chuyên cần tích lũy của một lớp trong một kỳ
// POST /attendance/recompute
func (h *AttendanceHandler) Recompute(c fiber.Ctx) error {
	var input attendancedto.RecomputeInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu tính lại")
	}

	result, cerr := h.service.Recompute(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// FetchGrid lấy lưới điểm danh của lớp trong kỳ
// GET /attendance/grid
func (h *AttendanceHandler) FetchGrid(c fiber.Ctx) error {
	var query attendancedto.GridQuery
	if err := c.Bind().Query(&query); err != nil {
		return basehandler.HandleBadRequest(c, "Tham số truy vấn không hợp lệ")
	}

	grid, cerr := h.service.FetchGrid(c.Context(), query)
	return basehandler.HandleResponse(c, grid, cerr)
}

// FetchDay đọc bản ghi điểm danh của một ngày
// GET /attendance/days/:classId/:date
func (h *AttendanceHandler) FetchDay(c fiber.Ctx) error {
	classID := c.Params("classId")
	date := c.Params("date")

	record, cerr := h.service.FetchDay(c.Context(), classID, date)
	return basehandler.HandleResponse(c, record, cerr)
}

// WeeklySummary thống kê điểm danh một tuần
// GET /attendance/weekly-summary
func (h *AttendanceHandler) WeeklySummary(c fiber.Ctx) error {
	var query attendancedto.WeeklySummaryQuery
	if err := c.Bind().Query(&query); err != nil {
		return basehandler.HandleBadRequest(c, "Tham số thống kê không hợp lệ")
	}

	summary, cerr := h.service.WeeklySummary(c.Context(), query)
	return basehandler.HandleResponse(c, summary, cerr)
}

// CumulativeOfClass lấy chuyên cần tích lũy của cả lớp trong một kỳ
// GET /attendance/cumulative
func (h *AttendanceHandler) CumulativeOfClass(c fiber.Ctx) error {
	classID := c.Query("classId")
	session := c.Query("session")
	term := c.Query("term")
	if classID == "" || session == "" || term == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId, session hoặc term")
	}

	records, cerr := h.service.CumulativeOfClass(c.Context(), classID, session, term)
	return basehandler.HandleResponse(c, records, cerr)
}
