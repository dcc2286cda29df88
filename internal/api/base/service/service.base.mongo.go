package baseservice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "school_records/internal/api/base/models"
	"school_records/internal/common"
)

// BaseServiceMongo là service generic thao tác với một collection MongoDB.
// Các service nghiệp vụ embed struct này và bổ sung logic riêng của domain.
type BaseServiceMongo[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo base service cho một collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) BaseServiceMongo[T] {
	return BaseServiceMongo[T]{collection: collection}
}

// Collection trả về collection đang thao tác
func (s *BaseServiceMongo[T]) Collection() *mongo.Collection {
	return s.collection
}

// ===== THAO TÁC ĐỌC =====

// FindOne tìm một document theo filter
func (s *BaseServiceMongo[T]) FindOne(ctx context.Context, filter bson.M) (T, *common.Error) {
	var result T
	err := s.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm nhiều document theo filter với tùy chọn sắp xếp và phân trang
func (s *BaseServiceMongo[T]) Find(ctx context.Context, filter bson.M, opts *basemodels.QueryOptions) ([]T, *common.Error) {
	findOpts := options.Find()
	if opts != nil {
		if len(opts.Sort) > 0 {
			sort := bson.D{}
			for field, dir := range opts.Sort {
				sort = append(sort, bson.E{Key: field, Value: dir})
			}
			findOpts.SetSort(sort)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
	}

	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// Exists kiểm tra có document nào khớp filter hay không
func (s *BaseServiceMongo[T]) Exists(ctx context.Context, filter bson.M) (bool, *common.Error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// Count đếm số document khớp filter
func (s *BaseServiceMongo[T]) Count(ctx context.Context, filter bson.M) (int64, *common.Error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// ===== THAO TÁC GHI =====

// InsertOne thêm một document mới
func (s *BaseServiceMongo[T]) InsertOne(ctx context.Context, doc T) *common.Error {
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// ReplaceUpsert ghi đè toàn bộ document khớp filter, tạo mới nếu chưa có.
// Dùng cho các bản ghi có khóa nghiệp vụ tự nhiên (lớp + ngày, học sinh + kỳ...).
func (s *BaseServiceMongo[T]) ReplaceUpsert(ctx context.Context, filter bson.M, doc T) *common.Error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// UpdateOne cập nhật một document theo filter với dữ liệu UpdateData.
// Trả về NotFound nếu không có document nào khớp (trừ khi upsert = true).
func (s *BaseServiceMongo[T]) UpdateOne(ctx context.Context, filter bson.M, data basemodels.UpdateData, upsert bool) *common.Error {
	update := BuildUpdateDocument(data)
	if len(update) == 0 {
		return common.ErrInvalidInput("Không có dữ liệu cập nhật", nil)
	}

	opts := options.Update().SetUpsert(upsert)
	result, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if !upsert && result.MatchedCount == 0 {
		return common.ErrNotFound("", nil)
	}
	return nil
}

// DeleteOne xóa một document theo filter.
// missingOk = true thì không coi việc không tìm thấy là lỗi.
func (s *BaseServiceMongo[T]) DeleteOne(ctx context.Context, filter bson.M, missingOk bool) *common.Error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if !missingOk && result.DeletedCount == 0 {
		return common.ErrNotFound("", nil)
	}
	return nil
}

// DeleteMany xóa tất cả document khớp filter, trả về số lượng đã xóa
func (s *BaseServiceMongo[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, *common.Error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// BuildUpdateDocument dựng update document MongoDB từ UpdateData
func BuildUpdateDocument(data basemodels.UpdateData) bson.M {
	update := bson.M{}
	if len(data.Set) > 0 {
		update["$set"] = data.Set
	}
	if len(data.SetOnInsert) > 0 {
		update["$setOnInsert"] = data.SetOnInsert
	}
	if len(data.Unset) > 0 {
		unset := bson.M{}
		for _, field := range data.Unset {
			unset[field] = ""
		}
		update["$unset"] = unset
	}
	if len(data.Push) > 0 {
		update["$push"] = data.Push
	}
	if len(data.AddToSet) > 0 {
		update["$addToSet"] = data.AddToSet
	}
	if len(data.Inc) > 0 {
		update["$inc"] = data.Inc
	}
	return update
}
