package global

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator là instance validator dùng chung toàn ứng dụng
var Validator = newValidator()

var dayDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Các trạng thái điểm danh hợp lệ của một học sinh trong ngày
var attendanceStatuses = map[string]bool{
	"present": true,
	"absent":  true,
}

func newValidator() *validator.Validate {
	v := validator.New()

	// day_date: ngày dạng YYYY-MM-DD và phải là ngày có thật trên lịch
	_ = v.RegisterValidation("day_date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !dayDatePattern.MatchString(s) {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})

	// att_status: trạng thái điểm danh hợp lệ
	_ = v.RegisterValidation("att_status", func(fl validator.FieldLevel) bool {
		return attendanceStatuses[fl.Field().String()]
	})

	return v
}

// IsValidDayDate kiểm tra chuỗi ngày YYYY-MM-DD cho các service không đi qua DTO
func IsValidDayDate(s string) bool {
	if !dayDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidAttendanceStatus kiểm tra trạng thái điểm danh
func IsValidAttendanceStatus(s string) bool {
	return attendanceStatuses[s]
}
