package main

import (
	"school_records/config"
	"school_records/internal/database"
	"school_records/internal/global"
	"school_records/internal/logger"
)

// InitConfig đọc cấu hình từ environment
func InitConfig() {
	cfg := config.NewConfig()
	if cfg == nil {
		panic("Không load được cấu hình, kiểm tra các biến môi trường bắt buộc")
	}
	global.MongoDB_ServerConfig = cfg
}

// InitLog khởi tạo logger ứng dụng và audit log
func InitLog() {
	logger.Init(logger.DefaultConfig())
	logger.InitAudit(logger.AuditConfig())
}

// InitDatabase kết nối MongoDB và tạo index
func InitDatabase() {
	client, err := database.ConnectMongo(global.MongoDB_ServerConfig)
	if err != nil {
		panic("Không kết nối được MongoDB: " + err.Error())
	}
	global.MongoDB_Session = client

	if global.MongoDB_ServerConfig.InitMode {
		if err := database.EnsureIndexes(global.GetDB()); err != nil {
			panic("Không tạo được index: " + err.Error())
		}
	}
}
