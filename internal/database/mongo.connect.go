package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"school_records/config"
	"school_records/internal/logger"
)

// ConnectMongo khởi tạo kết nối đến MongoDB và kiểm tra bằng ping
func ConnectMongo(cfg *config.Configuration) (*mongo.Client, error) {
	log := logger.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.WithError(err).Error("Không thể kết nối đến MongoDB")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Error("Ping MongoDB thất bại")
		return nil, err
	}

	log.Info("Kết nối MongoDB thành công")
	return client, nil
}

// Disconnect đóng kết nối MongoDB khi tắt server
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.GetLogger().WithError(err).Error("Đóng kết nối MongoDB thất bại")
	}
}
