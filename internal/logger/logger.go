package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var appLogger *logrus.Logger

// Init khởi tạo logger ứng dụng với file rotation
func Init(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	if cfg.ToConsole {
		l.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	} else {
		l.SetOutput(fileWriter)
	}

	appLogger = l
	return l
}

// GetLogger trả về logger ứng dụng, tự init với cấu hình mặc định nếu chưa có
func GetLogger() *logrus.Logger {
	if appLogger == nil {
		return Init(DefaultConfig())
	}
	return appLogger
}
