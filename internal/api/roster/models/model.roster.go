package rostermodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Pupil là hồ sơ học sinh
type Pupil struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PupilID   string             `bson:"pupilId" json:"pupilId"`     // Mã học sinh dùng trong nghiệp vụ
	FullName  string             `bson:"fullName" json:"fullName"`   // Họ và tên
	Gender    string             `bson:"gender" json:"gender"`       // "boy" hoặc "girl"
	ClassID   string             `bson:"classId" json:"classId"`     // Lớp hiện tại
	CreatedAt int64              `bson:"createdAt" json:"createdAt"` // Thời điểm tạo (ms)
	UpdatedAt int64              `bson:"updatedAt" json:"updatedAt"` // Thời điểm cập nhật (ms)
}

// Class là một lớp trong trường
type Class struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID   string             `bson:"classId" json:"classId"`     // Mã lớp
	ClassName string             `bson:"className" json:"className"` // Tên hiển thị
	TeacherID string             `bson:"teacherId" json:"teacherId"` // Giáo viên chủ nhiệm
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64              `bson:"updatedAt" json:"updatedAt"`
}

// SchoolSettings là cấu hình niên khóa và học kỳ hiện hành của trường.
// Collection chỉ có một document với khóa cố định.
type SchoolSettings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SettingsKey    string             `bson:"settingsKey" json:"settingsKey"`       // Luôn là "school_settings"
	CurrentSession string             `bson:"currentSession" json:"currentSession"` // Niên khóa, vd "2025/2026"
	CurrentTerm    string             `bson:"currentTerm" json:"currentTerm"`       // Học kỳ, vd "First Term"
	SchoolName     string             `bson:"schoolName" json:"schoolName"`
	UpdatedAt      int64              `bson:"updatedAt" json:"updatedAt"`
}

// SettingsKey là khóa cố định của document cấu hình trường
const SettingsKey = "school_settings"

// Giới tính hợp lệ của học sinh
const (
	GenderBoy  = "boy"
	GenderGirl = "girl"
)
