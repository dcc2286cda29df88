package common

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorCode là mã lỗi chuẩn hóa của hệ thống
type ErrorCode string

// ===== NHÓM MÃ LỖI =====

const (
	// Nhóm lỗi xác thực và phân quyền (AUTH)
	ErrCodeAuthCredentials  ErrorCode = "AUTH_001" // Thông tin xác thực không hợp lệ
	ErrCodeAuthTokenExpired ErrorCode = "AUTH_002" // Token hết hạn
	ErrCodeAuthTokenInvalid ErrorCode = "AUTH_003" // Token không hợp lệ
	ErrCodeAuthRole         ErrorCode = "AUTH_004" // Không có quyền thực hiện thao tác

	// Nhóm lỗi dữ liệu đầu vào (VAL)
	ErrCodeValidationInput  ErrorCode = "VAL_001" // Dữ liệu đầu vào không hợp lệ
	ErrCodeValidationFormat ErrorCode = "VAL_002" // Định dạng dữ liệu không hợp lệ

	// Nhóm lỗi cơ sở dữ liệu (DB)
	ErrCodeDatabase           ErrorCode = "DB_001" // Lỗi cơ sở dữ liệu chung
	ErrCodeDatabaseDuplicate  ErrorCode = "DB_002" // Dữ liệu trùng lặp
	ErrCodeDatabaseNotFound   ErrorCode = "DB_003" // Không tìm thấy dữ liệu
	ErrCodeDatabaseConnection ErrorCode = "DB_004" // Không thể kết nối cơ sở dữ liệu

	// Nhóm lỗi nghiệp vụ (BIZ)
	ErrCodeBusinessOperation ErrorCode = "BIZ_001" // Thao tác nghiệp vụ thất bại
	ErrCodeBusinessLocked    ErrorCode = "BIZ_002" // Bản ghi đã bị khóa
	ErrCodeBusinessConflict  ErrorCode = "BIZ_003" // Xung đột trạng thái nghiệp vụ
)

// Error là cấu trúc lỗi chuẩn của hệ thống.
// Mọi service trả về *Error thay vì error trần để handler
// map thẳng sang HTTP status và response body.
type Error struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Error implement interface error
func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("[%s] %s (details: %v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewError tạo một Error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details map[string]interface{}) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// ===== HELPER TẠO LỖI THEO NHÓM =====

// ErrInvalidInput tạo lỗi dữ liệu đầu vào không hợp lệ
func ErrInvalidInput(message string, details map[string]interface{}) *Error {
	return NewError(ErrCodeValidationInput, message, http.StatusBadRequest, details)
}

// ErrInvalidFormat tạo lỗi định dạng dữ liệu không hợp lệ
func ErrInvalidFormat(message string, details map[string]interface{}) *Error {
	return NewError(ErrCodeValidationFormat, message, http.StatusBadRequest, details)
}

// ErrNotFound tạo lỗi không tìm thấy dữ liệu
func ErrNotFound(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "Không tìm thấy dữ liệu"
	}
	return NewError(ErrCodeDatabaseNotFound, message, http.StatusNotFound, details)
}

// ErrConflict tạo lỗi xung đột trạng thái nghiệp vụ
func ErrConflict(message string, details map[string]interface{}) *Error {
	return NewError(ErrCodeBusinessConflict, message, http.StatusConflict, details)
}

// ErrLocked tạo lỗi bản ghi đã bị khóa
func ErrLocked(message string, details map[string]interface{}) *Error {
	return NewError(ErrCodeBusinessLocked, message, http.StatusConflict, details)
}

// ErrPermission tạo lỗi không có quyền thực hiện thao tác
func ErrPermission(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "Không có quyền thực hiện thao tác này"
	}
	return NewError(ErrCodeAuthRole, message, http.StatusForbidden, details)
}

// ErrUnavailable tạo lỗi hạ tầng tạm thời không khả dụng
func ErrUnavailable(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "Dịch vụ tạm thời không khả dụng"
	}
	return NewError(ErrCodeDatabaseConnection, message, http.StatusServiceUnavailable, details)
}

// ErrDatabase tạo lỗi cơ sở dữ liệu chung
func ErrDatabase(err error) *Error {
	return NewError(ErrCodeDatabase, "Lỗi cơ sở dữ liệu", http.StatusInternalServerError,
		map[string]interface{}{"error": err.Error()})
}

// ===== CHUYỂN ĐỔI LỖI MONGODB =====

// ConvertMongoError chuyển lỗi từ mongo driver sang Error chuẩn của hệ thống
func ConvertMongoError(err error) *Error {
	if err == nil {
		return nil
	}

	// Lỗi đã được chuẩn hóa thì trả về nguyên vẹn
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("", nil)
	}

	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseDuplicate, "Dữ liệu đã tồn tại", http.StatusConflict,
			map[string]interface{}{"error": err.Error()})
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return ErrUnavailable("Không thể kết nối cơ sở dữ liệu", map[string]interface{}{"error": err.Error()})
	}

	// Write conflict trong transaction là lỗi có thể retry
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.HasErrorLabel("TransientTransactionError") {
		return ErrConflict("Xung đột ghi dữ liệu, vui lòng thử lại", map[string]interface{}{"error": err.Error()})
	}

	return ErrDatabase(err)
}
