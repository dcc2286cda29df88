package resultshandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "school_records/internal/api/base/handler"
	resultsdto "school_records/internal/api/results/dto"
	resultsservice "school_records/internal/api/results/service"
	"school_records/internal/common"
)

// ResultsHandler xử lý các request về kết quả học tập
type ResultsHandler struct {
	service *resultsservice.ResultsService
}

// NewResultsHandler tạo handler với service đã khởi tạo
func NewResultsHandler(service *resultsservice.ResultsService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

// termQuery đọc bộ ba định danh kỳ từ query string
func termQuery(c fiber.Ctx) (classID, term, session string, ok bool) {
	classID = c.Query("classId")
	term = c.Query("term")
	session = c.Query("session")
	ok = classID != "" && term != "" && session != ""
	return
}

// SaveDraft lưu bản nháp điểm
// PUT /results/drafts
func (h *ResultsHandler) SaveDraft(c fiber.Ctx) error {
	var input resultsdto.SaveDraftInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu bản nháp")
	}

	result, cerr := h.service.SaveDraft(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// DeleteDraft xóa bản nháp điểm
// DELETE /results/drafts
func (h *ResultsHandler) DeleteDraft(c fiber.Ctx) error {
	var input resultsdto.SaveDraftInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu xóa bản nháp")
	}

	result, cerr := h.service.DeleteDraft(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// DraftsOfTerm lấy bản nháp của lớp trong kỳ
// GET /results/drafts
func (h *ResultsHandler) DraftsOfTerm(c fiber.Ctx) error {
	classID, term, session, ok := termQuery(c)
	if !ok {
		return basehandler.HandleBadRequest(c, "Thiếu classId, term hoặc session")
	}

	drafts, cerr := h.service.DraftsOfTerm(c.Context(), classID, term, session)
	return basehandler.HandleResponse(c, drafts, cerr)
}

// Submit nộp kết quả chờ duyệt
// POST /results/submit
func (h *ResultsHandler) Submit(c fiber.Ctx) error {
	var input resultsdto.SubmitInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu nộp")
	}

	result, cerr := h.service.Submit(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// Approve duyệt bản nộp và công bố kết quả
// POST /results/approve
func (h *ResultsHandler) Approve(c fiber.Ctx) error {
	var input resultsdto.ReviewInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu duyệt")
	}

	result, cerr := h.service.Approve(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// Reject từ chối bản nộp
// POST /results/reject
func (h *ResultsHandler) Reject(c fiber.Ctx) error {
	var input resultsdto.ReviewInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu từ chối")
	}

	result, cerr := h.service.Reject(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// SubmissionOfTerm đọc trạng thái bản nộp của một môn trong kỳ
// GET /results/submission
func (h *ResultsHandler) SubmissionOfTerm(c fiber.Ctx) error {
	classID, term, session, ok := termQuery(c)
	subject := c.Query("subject")
	if !ok || subject == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId, term, session hoặc subject")
	}

	submission, cerr := h.service.SubmissionOfSubject(c.Context(), classID, term, session, subject)
	if cerr != nil && cerr.Code == common.ErrCodeDatabaseNotFound {
		return basehandler.HandleResponse(c, common.FailResult("Chưa có bản nộp cho môn này trong kỳ"), nil)
	}
	return basehandler.HandleResponse(c, submission, cerr)
}

// PublishedOfTerm đọc kết quả đã công bố
// GET /results/published
func (h *ResultsHandler) PublishedOfTerm(c fiber.Ctx) error {
	classID, term, session, ok := termQuery(c)
	if !ok {
		return basehandler.HandleBadRequest(c, "Thiếu classId, term hoặc session")
	}

	published, cerr := h.service.PublishedOfTerm(c.Context(), classID, term, session)
	return basehandler.HandleResponse(c, published, cerr)
}

// Lock khóa chỉnh sửa kết quả
// POST /results/lock
func (h *ResultsHandler) Lock(c fiber.Ctx) error {
	var input resultsdto.LockInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu khóa")
	}

	result, cerr := h.service.Lock(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// Unlock mở khóa chỉnh sửa kết quả
// POST /results/unlock
func (h *ResultsHandler) Unlock(c fiber.Ctx) error {
	var input resultsdto.UnlockInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleBadRequest(c, "Không đọc được dữ liệu mở khóa")
	}

	result, cerr := h.service.Unlock(c.Context(), input)
	return basehandler.HandleResponse(c, result, cerr)
}

// IsLocked kiểm tra trạng thái khóa của một môn trong kỳ
// GET /results/lock-status
func (h *ResultsHandler) IsLocked(c fiber.Ctx) error {
	classID, term, session, ok := termQuery(c)
	subject := c.Query("subject")
	if !ok || subject == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId, term, session hoặc subject")
	}

	locked, cerr := h.service.IsLocked(c.Context(), classID, term, session, subject)
	return basehandler.HandleResponse(c, map[string]bool{"locked": locked}, cerr)
}

// LockDetail đọc document khóa đầy đủ kèm lịch sử mở khóa
// GET /results/lock
func (h *ResultsHandler) LockDetail(c fiber.Ctx) error {
	classID, term, session, ok := termQuery(c)
	subject := c.Query("subject")
	if !ok || subject == "" {
		return basehandler.HandleBadRequest(c, "Thiếu classId, term, session hoặc subject")
	}

	lock, cerr := h.service.LockOfSubject(c.Context(), classID, term, session, subject)
	if cerr != nil && cerr.Code == common.ErrCodeDatabaseNotFound {
		return basehandler.HandleResponse(c, common.FailResult("Môn này trong kỳ chưa từng bị khóa"), nil)
	}
	return basehandler.HandleResponse(c, lock, cerr)
}
