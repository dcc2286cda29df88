package baseservice

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"school_records/internal/common"
	"school_records/internal/logger"
)

// MaxBatchWriteOps là số thao tác ghi tối đa trong một batch.
// Giữ dưới giới hạn an toàn của một lần ghi gộp để tránh bị từ chối.
const MaxBatchWriteOps = 450

// ChunkBatchSizes chia tổng số thao tác thành các batch không vượt quá maxPerBatch.
// Trả về kích thước từng batch theo thứ tự.
func ChunkBatchSizes(total int, maxPerBatch int) []int {
	if total <= 0 || maxPerBatch <= 0 {
		return nil
	}
	sizes := make([]int, 0, total/maxPerBatch+1)
	for total > 0 {
		n := total
		if n > maxPerBatch {
			n = maxPerBatch
		}
		sizes = append(sizes, n)
		total -= n
	}
	return sizes
}

// BulkWriteChunked thực hiện danh sách write model theo từng batch tuần tự.
// Mỗi batch là một lần ghi gộp riêng: batch sau thất bại thì các batch trước
// đã được ghi và KHÔNG bị rollback. Caller chịu trách nhiệm với trạng thái dở dang.
func BulkWriteChunked(ctx context.Context, collection *mongo.Collection, models []mongo.WriteModel) (int, *common.Error) {
	if len(models) == 0 {
		return 0, nil
	}

	written := 0
	for _, size := range ChunkBatchSizes(len(models), MaxBatchWriteOps) {
		batch := models[written : written+size]
		_, err := collection.BulkWrite(ctx, batch, options.BulkWrite().SetOrdered(false))
		if err != nil {
			logger.GetLogger().WithError(err).WithField("written", written).
				Error("Ghi batch thất bại, các batch trước đó đã được lưu")
			return written, common.ConvertMongoError(err)
		}
		written += size
	}
	return written, nil
}

// normalizeTxnError chuẩn hóa error mà closure transaction trả về trước
// khi đưa cho driver. *common.Error nil gói trong interface error vẫn là
// interface khác nil; đưa thẳng cho driver thì transaction thành công
// cũng bị hủy. Thành công phải trả về nil interface thật.
func normalizeTxnError(err error) error {
	if cerr := common.ConvertMongoError(err); cerr != nil {
		return cerr
	}
	return nil
}

// WithTransaction chạy fn trong một transaction MongoDB.
// Toàn bộ thao tác ghi trong fn hoặc cùng thành công hoặc cùng bị hủy.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(sessCtx mongo.SessionContext) error) *common.Error {
	session, err := client.StartSession()
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, normalizeTxnError(fn(sessCtx))
	}, txnOpts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
