package common

// OpResult là kết quả chuẩn của một thao tác nghiệp vụ.
// Thất bại nghiệp vụ (đã nộp rồi, chưa có bài nộp...) không phải là lỗi hệ thống:
// Success = false kèm Message, còn lỗi hệ thống thật mới trả về *Error riêng.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
	Retry   bool   `json:"retry,omitempty"` // Gợi ý caller thử lại (xung đột ghi tạm thời)
}

// OkResult tạo kết quả thành công
func OkResult(message string) OpResult {
	return OpResult{Success: true, Message: message}
}

// OkResultCount tạo kết quả thành công kèm số lượng bản ghi liên quan
func OkResultCount(message string, count int) OpResult {
	return OpResult{Success: true, Message: message, Count: count}
}

// FailResult tạo kết quả thất bại nghiệp vụ (không phải lỗi hệ thống)
func FailResult(message string) OpResult {
	return OpResult{Success: false, Message: message}
}

// RetryResult tạo kết quả thất bại do xung đột, caller nên thử lại
func RetryResult(message string) OpResult {
	return OpResult{Success: false, Message: message, Retry: true}
}
