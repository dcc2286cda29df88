package attendancemodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Trạng thái điểm danh của một học sinh trong ngày
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// DailyRecord là bản ghi điểm danh của một lớp trong một ngày.
// Khóa nghiệp vụ: (classId, date) — mỗi lớp mỗi ngày một bản ghi,
// ghi lại điểm danh cùng ngày sẽ ghi đè toàn bộ.
type DailyRecord struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"classId" json:"classId"`
	Date    string             `bson:"date" json:"date"` // Ngày dạng YYYY-MM-DD
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"` // Niên khóa, vd "2025/2026"

	TeacherID string `bson:"teacherId" json:"teacherId"` // Giáo viên điểm danh

	// Trạng thái từng học sinh trong ngày: pupilId -> present/absent
	StatusByPupil map[string]string `bson:"statusByPupil" json:"statusByPupil"`

	// Các tổng đếm sẵn của ngày, suy ra từ StatusByPupil lúc ghi
	TotalPresent int `bson:"totalPresent" json:"totalPresent"`
	TotalAbsent  int `bson:"totalAbsent" json:"totalAbsent"`
	TotalPupils  int `bson:"totalPupils" json:"totalPupils"`
	BoysPresent  int `bson:"boysPresent" json:"boysPresent"`
	BoysAbsent   int `bson:"boysAbsent" json:"boysAbsent"`
	GirlsPresent int `bson:"girlsPresent" json:"girlsPresent"`
	GirlsAbsent  int `bson:"girlsAbsent" json:"girlsAbsent"`

	MarkedAt  int64 `bson:"markedAt" json:"markedAt"`   // Thời điểm điểm danh lần đầu (ms)
	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"` // Thời điểm cập nhật gần nhất (ms)
}
