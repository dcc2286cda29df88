package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"school_records/config"
	"school_records/internal/registry"
)

// ===== BIẾN TOÀN CỤC CỦA ỨNG DỤNG =====

var (
	// MongoDB_Session là client MongoDB dùng chung toàn ứng dụng
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server đã load
	MongoDB_ServerConfig *config.Configuration

	// RegistryCollections quản lý các collection đã đăng ký theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// MongoDB_ColNames chứa tên các collection trong cơ sở dữ liệu
var MongoDB_ColNames = struct {
	DailyRecords      string // Điểm danh theo ngày của từng lớp
	CumulativeRecords string // Chuyên cần tích lũy theo học sinh và học kỳ
	ResultDrafts      string // Bản nháp kết quả học tập
	ResultSubmissions string // Bản ghi nộp kết quả chờ duyệt
	ResultPublished   string // Kết quả đã công bố
	ResultLocks       string // Khóa chỉnh sửa kết quả
	ClassHierarchy    string // Thứ tự các lớp trong trường
	Pupils            string // Hồ sơ học sinh
	Classes           string // Danh sách lớp
	Settings          string // Cấu hình niên khóa và học kỳ của trường
	Calendar          string // Lịch ngày nghỉ của trường
}{
	DailyRecords:      "att_daily_records",
	CumulativeRecords: "att_cumulative_records",
	ResultDrafts:      "result_drafts",
	ResultSubmissions: "result_submissions",
	ResultPublished:   "result_published",
	ResultLocks:       "result_locks",
	ClassHierarchy:    "class_hierarchy",
	Pupils:            "school_pupils",
	Classes:           "school_classes",
	Settings:          "school_settings",
	Calendar:          "school_calendar",
}

// GetDB trả về database đang sử dụng
func GetDB() *mongo.Database {
	return MongoDB_Session.Database(MongoDB_ServerConfig.MongoDB_DBName)
}
