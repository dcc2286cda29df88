package attendanceservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	attendancedto "school_records/internal/api/attendance/dto"
	attendancemodels "school_records/internal/api/attendance/models"
	basemodels "school_records/internal/api/base/models"
	baseservice "school_records/internal/api/base/service"
	"school_records/internal/common"
	"school_records/internal/global"
	"school_records/internal/logger"
)

// Recompute tính lại TOÀN BỘ chuyên cần tích lũy của một lớp trong một kỳ.
// Không cập nhật tăng dần: mỗi lần gọi duyệt hết bản ghi ngày rồi ghi đè
// kết quả, nên bản ghi tích lũy luôn tự sửa sau mọi sửa đổi hay xóa ngày.
// Ghi theo từng batch tuần tự; batch sau thất bại thì các batch trước đã
// được lưu, lần tính lại kế tiếp sẽ đưa dữ liệu về trạng thái đúng.
func (s *AttendanceService) Recompute(ctx context.Context, input attendancedto.RecomputeInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu tính lại không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 1: Đọc toàn bộ bản ghi ngày của lớp trong kỳ, theo thứ tự ngày
	records, cerr := s.daily.Find(ctx, bson.M{
		"classId": input.ClassID,
		"term":    input.Term,
		"session": input.Session,
	}, &basemodels.QueryOptions{Sort: map[string]int{"date": 1}})
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	// Bước 2: Cộng dồn theo học sinh, gồm cả học sinh chưa từng được
	// điểm danh để các em vẫn có bản ghi tích lũy toàn 0
	pupils, cerr := s.roster.PupilsOfClass(ctx, input.ClassID)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	rosterIDs := make([]string, 0, len(pupils))
	for _, p := range pupils {
		rosterIDs = append(rosterIDs, p.PupilID)
	}
	tallies := TallyCumulative(records, rosterIDs)

	sessionTerm := attendancemodels.MakeSessionTerm(input.Session, input.Term)
	now := time.Now().UnixMilli()

	// Bước 3: Dựng các lệnh upsert theo khóa (pupilId, sessionTerm).
	// Dùng $set thay vì replace để giữ các trường khác nếu có.
	writeModels := make([]mongo.WriteModel, 0, len(tallies))
	for pupilID, tally := range tallies {
		filter := bson.M{"pupilId": pupilID, "sessionTerm": sessionTerm}
		update := bson.M{
			"$set": bson.M{
				"classId":      input.ClassID,
				"term":         input.Term,
				"session":      input.Session,
				"timesOpened":  tally.TimesOpened,
				"timesPresent": tally.TimesPresent,
				"timesAbsent":  tally.TimesAbsent,
				"isDerived":    true,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"pupilId":     pupilID,
				"sessionTerm": sessionTerm,
			},
		}
		writeModels = append(writeModels,
			mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
	}

	// Bước 4: Ghi theo từng batch
	written, cerr := baseservice.BulkWriteChunked(ctx, s.cumulative.Collection(), writeModels)
	if cerr != nil {
		return common.OpResult{Success: false, Count: written}, cerr
	}

	// Bước 5: Đưa về 0 các bản ghi tích lũy của học sinh không còn xuất hiện
	// trong bất kỳ ngày nào (ví dụ sau khi xóa hết điểm danh của kỳ)
	pupilIDs := make([]string, 0, len(tallies))
	for pupilID := range tallies {
		pupilIDs = append(pupilIDs, pupilID)
	}
	staleFilter := bson.M{
		"classId":     input.ClassID,
		"sessionTerm": sessionTerm,
		"pupilId":     bson.M{"$nin": pupilIDs},
	}
	if _, err := s.cumulative.Collection().UpdateMany(ctx, staleFilter, bson.M{
		"$set": bson.M{
			"timesOpened":  0,
			"timesPresent": 0,
			"timesAbsent":  0,
			"isDerived":    true,
			"updatedAt":    now,
		},
	}); err != nil {
		return common.OpResult{Success: false, Count: written}, common.ConvertMongoError(err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"classId": input.ClassID,
		"term":    input.Term,
		"session": input.Session,
		"days":    len(records),
		"pupils":  written,
	}).Info("Đã tính lại chuyên cần tích lũy")

	return common.OkResultCount("Đã tính lại chuyên cần", written), nil
}
