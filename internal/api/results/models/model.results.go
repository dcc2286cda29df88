package resultsmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Trạng thái của một bản ghi nộp kết quả
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// ResultDraft là bản nháp điểm của một học sinh cho một môn trong một kỳ.
// Giáo viên sửa tự do cho đến khi kết quả bị khóa.
type ResultDraft struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"classId" json:"classId"`
	PupilID string             `bson:"pupilId" json:"pupilId"`
	Subject string             `bson:"subject" json:"subject"`
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"`

	Score     float64 `bson:"score" json:"score"`
	TeacherID string  `bson:"teacherId" json:"teacherId"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// SubmissionRecord là bản ghi nộp kết quả của một lớp cho một môn trong một kỳ.
// Khóa nghiệp vụ: (classId, term, session, subject).
type SubmissionRecord struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"classId" json:"classId"`
	Subject string             `bson:"subject" json:"subject"`
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"`

	Status     string `bson:"status" json:"status"` // pending, approved, rejected
	PupilCount int    `bson:"pupilCount" json:"pupilCount"`

	SubmittedBy string `bson:"submittedBy" json:"submittedBy"`
	SubmittedAt int64  `bson:"submittedAt" json:"submittedAt"`

	ReviewedBy      string `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt      int64  `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	RejectionReason string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

// PublishedResult là kết quả đã công bố, chỉ tạo qua bước duyệt.
// Sau khi công bố, bản ghi không bao giờ bị sửa bởi giáo viên.
type PublishedResult struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"classId" json:"classId"`
	PupilID string             `bson:"pupilId" json:"pupilId"`
	Subject string             `bson:"subject" json:"subject"`
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"`

	Score       float64 `bson:"score" json:"score"`
	TeacherID   string  `bson:"teacherId" json:"teacherId"`
	PublishedBy string  `bson:"publishedBy" json:"publishedBy"`
	PublishedAt int64   `bson:"publishedAt" json:"publishedAt"`
}

// ResultLock khóa chỉnh sửa kết quả của một lớp cho một môn trong một kỳ.
// Khóa nghiệp vụ: (classId, term, session, subject).
type ResultLock struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"classId" json:"classId"`
	Subject string             `bson:"subject" json:"subject"`
	Term    string             `bson:"term" json:"term"`
	Session string             `bson:"session" json:"session"`

	Locked   bool   `bson:"locked" json:"locked"`
	LockedAt int64  `bson:"lockedAt" json:"lockedAt"`
	LockedBy string `bson:"lockedBy" json:"lockedBy"`
	Reason   string `bson:"reason" json:"reason"`

	// Lịch sử các lần mở khóa, mỗi lần một bản ghi mới được thêm vào
	UnlockHistory []UnlockEntry `bson:"unlockHistory" json:"unlockHistory"`
}

// UnlockEntry là một lần mở khóa trong lịch sử
type UnlockEntry struct {
	EntryID          string `bson:"entryId" json:"entryId"` // UUID định danh lần mở khóa
	UnlockedAt       int64  `bson:"unlockedAt" json:"unlockedAt"`
	UnlockedBy       string `bson:"unlockedBy" json:"unlockedBy"`
	Reason           string `bson:"reason" json:"reason"`
	PreviousLockDate int64  `bson:"previousLockDate" json:"previousLockDate"` // Thời điểm khóa trước khi mở
}
