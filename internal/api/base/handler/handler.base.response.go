package basehandler

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"school_records/internal/common"
	"school_records/internal/logger"
)

// Response là cấu trúc trả về chuẩn cho mọi endpoint
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Status  int         `json:"status"`
}

// HandleResponse trả về response chuẩn từ dữ liệu và lỗi của service.
// Lỗi nghiệp vụ đã được service gói trong data, chỉ lỗi hệ thống mới vào nhánh err.
func HandleResponse(c fiber.Ctx, data interface{}, err *common.Error) error {
	if err != nil {
		return c.Status(err.StatusCode).JSON(Response{
			Code:    string(err.Code),
			Message: err.Message,
			Data:    err.Details,
			Status:  err.StatusCode,
		})
	}

	return c.Status(http.StatusOK).JSON(Response{
		Code:    "SUCCESS",
		Message: "Thao tác thành công",
		Data:    data,
		Status:  http.StatusOK,
	})
}

// HandleBadRequest trả về lỗi 400 khi parse body hoặc param thất bại
func HandleBadRequest(c fiber.Ctx, message string) error {
	return HandleResponse(c, nil, common.ErrInvalidInput(message, nil))
}

// SafeHandler bọc handler với recover để panic không làm sập server
func SafeHandler(handler func(c fiber.Ctx) error) func(c fiber.Ctx) error {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.GetLogger().WithField("panic", r).WithField("path", c.Path()).
					Error("Panic trong handler")
				err = c.Status(http.StatusInternalServerError).JSON(Response{
					Code:    string(common.ErrCodeBusinessOperation),
					Message: "Lỗi hệ thống không xác định",
					Status:  http.StatusInternalServerError,
				})
			}
		}()
		return handler(c)
	}
}
