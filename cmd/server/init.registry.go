package main

import (
	"school_records/internal/global"
	"school_records/internal/logger"
)

// InitRegistry đăng ký toàn bộ collection vào registry dùng chung
func InitRegistry() {
	db := global.GetDB()

	names := []string{
		global.MongoDB_ColNames.DailyRecords,
		global.MongoDB_ColNames.CumulativeRecords,
		global.MongoDB_ColNames.ResultDrafts,
		global.MongoDB_ColNames.ResultSubmissions,
		global.MongoDB_ColNames.ResultPublished,
		global.MongoDB_ColNames.ResultLocks,
		global.MongoDB_ColNames.ClassHierarchy,
		global.MongoDB_ColNames.Pupils,
		global.MongoDB_ColNames.Classes,
		global.MongoDB_ColNames.Settings,
		global.MongoDB_ColNames.Calendar,
	}

	for _, name := range names {
		if err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			panic("Không đăng ký được collection " + name + ": " + err.Error())
		}
	}

	logger.GetLogger().WithField("collections", len(names)).Info("Đã đăng ký collection")
}
