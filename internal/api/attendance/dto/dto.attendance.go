package attendancedto

// MarkDayInput là dữ liệu điểm danh một lớp trong một ngày
type MarkDayInput struct {
	ClassID       string            `json:"classId" validate:"required"`
	Date          string            `json:"date" validate:"required,day_date"`
	Term          string            `json:"term" validate:"required"`
	Session       string            `json:"session" validate:"required"`
	TeacherID     string            `json:"teacherId" validate:"required"`
	StatusByPupil map[string]string `json:"statusByPupil" validate:"required,dive,att_status"`
}

// UpdateStatusInput cập nhật trạng thái một học sinh trong bản ghi ngày đã có
type UpdateStatusInput struct {
	ClassID string `json:"classId" validate:"required"`
	Date    string `json:"date" validate:"required,day_date"`
	PupilID string `json:"pupilId" validate:"required"`
	Status  string `json:"status" validate:"required,att_status"`
}

// DeleteDayInput xóa bản ghi điểm danh của một lớp trong một ngày
type DeleteDayInput struct {
	ClassID string `json:"classId" validate:"required"`
	Date    string `json:"date" validate:"required,day_date"`
	Term    string `json:"term" validate:"required"`
	Session string `json:"session" validate:"required"`
}

// RecomputeInput yêu cầu tính lại chuyên cần tích lũy của một lớp trong một kỳ
type RecomputeInput struct {
	ClassID string `json:"classId" validate:"required"`
	Term    string `json:"term" validate:"required"`
	Session string `json:"session" validate:"required"`
}

// GridQuery là tham số lấy lưới điểm danh của một lớp trong một khoảng ngày
type GridQuery struct {
	ClassID  string `query:"classId" validate:"required"`
	Term     string `query:"term" validate:"required"`
	Session  string `query:"session" validate:"required"`
	FromDate string `query:"fromDate" validate:"omitempty,day_date"`
	ToDate   string `query:"toDate" validate:"omitempty,day_date"`
}

// WeeklySummaryQuery là tham số thống kê điểm danh một tuần
type WeeklySummaryQuery struct {
	ClassID   string `query:"classId" validate:"required"`
	Term      string `query:"term" validate:"required"`
	Session   string `query:"session" validate:"required"`
	WeekStart string `query:"weekStart" validate:"required,day_date"` // Ngày thứ Hai của tuần
}
