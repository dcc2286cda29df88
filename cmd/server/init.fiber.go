package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"

	attendancehandler "school_records/internal/api/attendance/handler"
	attendancerouter "school_records/internal/api/attendance/router"
	attendanceservice "school_records/internal/api/attendance/service"
	hierarchyhandler "school_records/internal/api/hierarchy/handler"
	hierarchyrouter "school_records/internal/api/hierarchy/router"
	hierarchyservice "school_records/internal/api/hierarchy/service"
	resultshandler "school_records/internal/api/results/handler"
	resultsrouter "school_records/internal/api/results/router"
	resultsservice "school_records/internal/api/results/service"
	rosterhandler "school_records/internal/api/roster/handler"
	rosterrouter "school_records/internal/api/roster/router"
	rosterservice "school_records/internal/api/roster/service"
	"school_records/internal/calendar"
	"school_records/internal/global"
)

// InitFiber dựng Fiber app, middleware chung và toàn bộ route
func InitFiber() *fiber.App {
	cfg := global.MongoDB_ServerConfig

	app := fiber.New(fiber.Config{
		AppName:      "School Records API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS_Origins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: cfg.CORS_AllowCredentials,
	}))

	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		}))
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Khởi tạo service theo thứ tự phụ thuộc
	rosterSvc := rosterservice.NewRosterService()
	attendanceSvc := attendanceservice.NewAttendanceService(rosterSvc)
	resultsSvc := resultsservice.NewResultsService()
	hierarchySvc := hierarchyservice.NewHierarchyService(rosterSvc)
	calendarSvc := calendar.NewCalendarService()

	rosterrouter.RegisterRoutes(app, rosterhandler.NewRosterHandler(rosterSvc))
	attendancerouter.RegisterRoutes(app, attendancehandler.NewAttendanceHandler(attendanceSvc))
	resultsrouter.RegisterRoutes(app, resultshandler.NewResultsHandler(resultsSvc))
	hierarchyrouter.RegisterRoutes(app, hierarchyhandler.NewHierarchyHandler(hierarchySvc))
	calendar.RegisterRoutes(app, calendarSvc)

	return app
}
