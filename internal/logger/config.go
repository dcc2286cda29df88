package logger

// Config cấu hình cho hệ thống log
type Config struct {
	Level      string // Mức log: debug, info, warn, error
	Filename   string // Đường dẫn file log
	MaxSize    int    // Kích thước tối đa mỗi file (MB)
	MaxBackups int    // Số file backup giữ lại
	MaxAge     int    // Số ngày giữ log
	Compress   bool   // Nén file backup
	ToConsole  bool   // Ghi thêm ra console
}

// DefaultConfig trả về cấu hình log mặc định
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Filename:   "logs/app.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		ToConsole:  true,
	}
}

// AuditConfig trả về cấu hình cho audit log.
// Audit log giữ lâu hơn log ứng dụng vì phục vụ truy vết nghiệp vụ.
func AuditConfig() Config {
	return Config{
		Level:      "info",
		Filename:   "logs/audit.log",
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     180,
		Compress:   true,
		ToConsole:  false,
	}
}
