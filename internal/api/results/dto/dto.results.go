package resultsdto

// SaveDraftInput lưu bản nháp điểm của một học sinh cho một môn
type SaveDraftInput struct {
	ClassID   string  `json:"classId" validate:"required"`
	PupilID   string  `json:"pupilId" validate:"required"`
	Subject   string  `json:"subject" validate:"required"`
	Term      string  `json:"term" validate:"required"`
	Session   string  `json:"session" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
	TeacherID string  `json:"teacherId" validate:"required"`
}

// SubmitInput nộp kết quả của lớp cho một môn để chờ duyệt
type SubmitInput struct {
	ClassID     string `json:"classId" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Term        string `json:"term" validate:"required"`
	Session     string `json:"session" validate:"required"`
	SubmittedBy string `json:"submittedBy" validate:"required"`
}

// ReviewInput duyệt hoặc từ chối một bản nộp
type ReviewInput struct {
	ClassID    string `json:"classId" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Term       string `json:"term" validate:"required"`
	Session    string `json:"session" validate:"required"`
	ReviewedBy string `json:"reviewedBy" validate:"required"`
	Reason     string `json:"reason"` // Lý do từ chối, tùy chọn
}

// LockInput khóa chỉnh sửa kết quả của lớp trong kỳ
type LockInput struct {
	ClassID  string `json:"classId" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Term     string `json:"term" validate:"required"`
	Session  string `json:"session" validate:"required"`
	LockedBy string `json:"lockedBy" validate:"required"`
	Reason   string `json:"reason"`
}

// UnlockInput mở khóa chỉnh sửa, ghi lại lịch sử
type UnlockInput struct {
	ClassID    string `json:"classId" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Term       string `json:"term" validate:"required"`
	Session    string `json:"session" validate:"required"`
	UnlockedBy string `json:"unlockedBy" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}
