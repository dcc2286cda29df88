package logger

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var auditLogger *logrus.Logger

// InitAudit khởi tạo audit logger riêng, chỉ ghi ra file
func InitAudit(cfg Config) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	l.SetOutput(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	auditLogger = l
	return l
}

// Audit ghi một sự kiện nghiệp vụ vào audit log.
// action: tên thao tác (approve_results, unlock_results...),
// actor: người thực hiện, fields: ngữ cảnh bổ sung.
func Audit(action string, actor string, fields map[string]interface{}) {
	if auditLogger == nil {
		InitAudit(AuditConfig())
	}
	entry := auditLogger.WithFields(logrus.Fields{
		"action": action,
		"actor":  actor,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	entry.Info("audit")
}
