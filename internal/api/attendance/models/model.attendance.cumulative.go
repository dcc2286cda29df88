package attendancemodels

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CumulativeRecord là chuyên cần tích lũy của một học sinh trong một học kỳ.
// Khóa nghiệp vụ: (pupilId, sessionTerm). Bản ghi này KHÔNG được cập nhật
// tăng dần, mỗi lần tính lại sẽ duyệt toàn bộ điểm danh ngày và ghi đè.
type CumulativeRecord struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PupilID string             `bson:"pupilId" json:"pupilId"`
	ClassID string             `bson:"classId" json:"classId"`
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"`

	// Khóa ghép niên khóa + học kỳ để truy vấn theo một trường duy nhất
	SessionTerm string `bson:"sessionTerm" json:"sessionTerm"`

	TimesOpened  int `bson:"timesOpened" json:"timesOpened"`   // Số ngày lớp có điểm danh
	TimesPresent int `bson:"timesPresent" json:"timesPresent"` // Số ngày có mặt
	TimesAbsent  int `bson:"timesAbsent" json:"timesAbsent"`   // Số ngày vắng

	// Bản ghi do hệ thống tính ra, không phải nhập tay
	IsDerived bool `bson:"isDerived" json:"isDerived"`

	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// MakeSessionTerm dựng khóa ghép từ niên khóa và học kỳ
func MakeSessionTerm(session string, term string) string {
	return fmt.Sprintf("%s|%s", session, term)
}
