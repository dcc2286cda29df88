package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	hierarchyservice "school_records/internal/api/hierarchy/service"
	rosterservice "school_records/internal/api/roster/service"
	"school_records/internal/database"
	"school_records/internal/global"
	"school_records/internal/logger"
)

func main() {
	InitConfig()
	InitLog()
	InitDatabase()
	InitRegistry()

	log := logger.GetLogger()

	// Chế độ khởi tạo: tạo sẵn thứ tự lớp nếu chưa có
	if global.MongoDB_ServerConfig.InitMode {
		rosterSvc := rosterservice.NewRosterService()
		hierarchySvc := hierarchyservice.NewHierarchyService(rosterSvc)
		result, cerr := hierarchySvc.Initialize(context.Background())
		if cerr != nil {
			log.WithField("error", cerr.Error()).Error("Khởi tạo thứ tự lớp thất bại")
		} else {
			log.WithField("result", result.Message).Info("Khởi tạo thứ tự lớp")
		}
	}

	app := InitFiber()

	// Tắt server êm khi nhận tín hiệu dừng
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Đang tắt server...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Tắt server thất bại")
		}
		database.Disconnect(global.MongoDB_Session)
	}()

	log.WithField("address", global.MongoDB_ServerConfig.Address).Info("Server bắt đầu chạy")
	if err := app.Listen(global.MongoDB_ServerConfig.Address); err != nil {
		log.WithError(err).Fatal("Server dừng với lỗi")
	}
}
