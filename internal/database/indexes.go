package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school_records/internal/global"
	"school_records/internal/logger"
)

// EnsureIndexes tạo các index nghiệp vụ cho toàn bộ collection.
// Index unique bảo vệ các khóa nghiệp vụ khỏi ghi trùng.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		global.MongoDB_ColNames.DailyRecords: {
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}, {Key: "date", Value: 1}}},
		},
		global.MongoDB_ColNames.CumulativeRecords: {
			{Keys: bson.D{{Key: "pupilId", Value: 1}, {Key: "sessionTerm", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "sessionTerm", Value: 1}}},
		},
		global.MongoDB_ColNames.ResultDrafts: {
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "pupilId", Value: 1}, {Key: "subject", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}}},
		},
		global.MongoDB_ColNames.ResultSubmissions: {
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}, {Key: "subject", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.ResultPublished: {
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "pupilId", Value: 1}, {Key: "subject", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.ResultLocks: {
			{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "term", Value: 1}, {Key: "session", Value: 1}, {Key: "subject", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.ClassHierarchy: {
			{Keys: bson.D{{Key: "hierarchyKey", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.Pupils: {
			{Keys: bson.D{{Key: "pupilId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "classId", Value: 1}}},
		},
		global.MongoDB_ColNames.Classes: {
			{Keys: bson.D{{Key: "classId", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.Settings: {
			{Keys: bson.D{{Key: "settingsKey", Value: 1}}, Options: unique},
		},
		global.MongoDB_ColNames.Calendar: {
			{Keys: bson.D{{Key: "date", Value: 1}}, Options: unique},
		},
	}

	for colName, models := range specs {
		if _, err := db.Collection(colName).Indexes().CreateMany(ctx, models); err != nil {
			logger.GetLogger().WithError(err).WithField("collection", colName).Error("Tạo index thất bại")
			return err
		}
	}

	logger.GetLogger().Info("Đã tạo index cho toàn bộ collection")
	return nil
}
