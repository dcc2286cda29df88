package attendanceservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	attendancedto "school_records/internal/api/attendance/dto"
	attendancemodels "school_records/internal/api/attendance/models"
	basemodels "school_records/internal/api/base/models"
	baseservice "school_records/internal/api/base/service"
	rosterservice "school_records/internal/api/roster/service"
	"school_records/internal/common"
	"school_records/internal/global"
	"school_records/internal/logger"
	"school_records/internal/utility"
)

// AttendanceService quản lý điểm danh ngày và chuyên cần tích lũy
type AttendanceService struct {
	daily      baseservice.BaseServiceMongo[attendancemodels.DailyRecord]
	cumulative baseservice.BaseServiceMongo[attendancemodels.CumulativeRecord]
	roster     *rosterservice.RosterService
}

// NewAttendanceService tạo AttendanceService từ các collection đã đăng ký
func NewAttendanceService(roster *rosterservice.RosterService) *AttendanceService {
	return &AttendanceService{
		daily:      baseservice.NewBaseServiceMongo[attendancemodels.DailyRecord](global.RegistryCollections.MustGet(global.MongoDB_ColNames.DailyRecords)),
		cumulative: baseservice.NewBaseServiceMongo[attendancemodels.CumulativeRecord](global.RegistryCollections.MustGet(global.MongoDB_ColNames.CumulativeRecords)),
		roster:     roster,
	}
}

// markDayUpdate dựng update document ghi đè bản ghi ngày.
// markedAt chỉ ghi khi tạo mới: ghi lại cùng ngày vẫn giữ thời điểm
// điểm danh đầu tiên.
func markDayUpdate(record attendancemodels.DailyRecord, now int64) (basemodels.UpdateData, error) {
	setDoc, err := utility.ToMap(record)
	if err != nil {
		return basemodels.UpdateData{}, err
	}
	delete(setDoc, "_id")
	delete(setDoc, "markedAt")
	return basemodels.UpdateData{
		Set:         setDoc,
		SetOnInsert: map[string]interface{}{"markedAt": now},
	}, nil
}

// MarkDay ghi điểm danh một lớp trong một ngày rồi tính lại chuyên cần của cả kỳ.
// Ghi lại cùng (lớp, ngày) sẽ ghi đè bản ghi cũ, chỉ giữ lại markedAt.
func (s *AttendanceService) MarkDay(ctx context.Context, input attendancedto.MarkDayInput) (common.OpResult, *common.Error) {
	// Bước 1: Kiểm tra dữ liệu đầu vào
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu điểm danh không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 2: Tra giới tính học sinh để đếm theo nam/nữ
	pupils, cerr := s.roster.PupilsOfClass(ctx, input.ClassID)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	genderByPupil := make(map[string]string, len(pupils))
	for _, p := range pupils {
		genderByPupil[p.PupilID] = p.Gender
	}

	// Bước 3: Tính các tổng đếm của ngày
	counts := ComputeDailyCounts(input.StatusByPupil, genderByPupil)

	now := time.Now().UnixMilli()
	record := attendancemodels.DailyRecord{
		ClassID:       input.ClassID,
		Date:          input.Date,
		Term:          input.Term,
		Session:       input.Session,
		TeacherID:     input.TeacherID,
		StatusByPupil: input.StatusByPupil,
		TotalPresent:  counts.TotalPresent,
		TotalAbsent:   counts.TotalAbsent,
		TotalPupils:   counts.TotalPupils,
		BoysPresent:   counts.BoysPresent,
		BoysAbsent:    counts.BoysAbsent,
		GirlsPresent:  counts.GirlsPresent,
		GirlsAbsent:   counts.GirlsAbsent,
		UpdatedAt:     now,
	}

	// Bước 4: Ghi đè bản ghi ngày theo khóa (lớp, ngày)
	update, merr := markDayUpdate(record, now)
	if merr != nil {
		return common.OpResult{}, common.ErrDatabase(merr)
	}
	if cerr := s.daily.UpdateOne(ctx, bson.M{"classId": input.ClassID, "date": input.Date}, update, true); cerr != nil {
		return common.OpResult{}, cerr
	}

	// Bước 5: Tính lại toàn bộ chuyên cần của kỳ
	result, cerr := s.Recompute(ctx, attendancedto.RecomputeInput{
		ClassID: input.ClassID,
		Term:    input.Term,
		Session: input.Session,
	})
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"classId": input.ClassID,
		"date":    input.Date,
		"pupils":  counts.TotalPupils,
	}).Info("Đã ghi điểm danh ngày")

	return common.OkResultCount("Đã ghi điểm danh và cập nhật chuyên cần", result.Count), nil
}

// UpdateSingleStatus sửa trạng thái một học sinh trong bản ghi ngày đã có.
// Trả về NotFound nếu chưa điểm danh ngày đó.
func (s *AttendanceService) UpdateSingleStatus(ctx context.Context, input attendancedto.UpdateStatusInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu cập nhật không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 1: Đọc bản ghi ngày hiện có
	record, cerr := s.daily.FindOne(ctx, bson.M{"classId": input.ClassID, "date": input.Date})
	if cerr != nil {
		if cerr.Code == common.ErrCodeDatabaseNotFound {
			return common.OpResult{}, common.ErrNotFound("Chưa có điểm danh cho lớp trong ngày này", map[string]interface{}{
				"classId": input.ClassID, "date": input.Date,
			})
		}
		return common.OpResult{}, cerr
	}

	// Bước 2: Cập nhật trạng thái và tính lại tổng đếm
	if record.StatusByPupil == nil {
		record.StatusByPupil = make(map[string]string)
	}
	record.StatusByPupil[input.PupilID] = input.Status

	pupils, cerr := s.roster.PupilsOfClass(ctx, input.ClassID)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	genderByPupil := make(map[string]string, len(pupils))
	for _, p := range pupils {
		genderByPupil[p.PupilID] = p.Gender
	}

	counts := ComputeDailyCounts(record.StatusByPupil, genderByPupil)
	record.TotalPresent = counts.TotalPresent
	record.TotalAbsent = counts.TotalAbsent
	record.TotalPupils = counts.TotalPupils
	record.BoysPresent = counts.BoysPresent
	record.BoysAbsent = counts.BoysAbsent
	record.GirlsPresent = counts.GirlsPresent
	record.GirlsAbsent = counts.GirlsAbsent
	record.UpdatedAt = time.Now().UnixMilli()

	// Cập nhật bằng $set từ struct để không chạm vào _id
	setDoc, merr := utility.ToMap(record)
	if merr != nil {
		return common.OpResult{}, common.ErrDatabase(merr)
	}
	delete(setDoc, "_id")
	if cerr := s.daily.UpdateOne(ctx, bson.M{"classId": input.ClassID, "date": input.Date}, basemodels.UpdateData{
		Set: setDoc,
	}, false); cerr != nil {
		return common.OpResult{}, cerr
	}

	// Bước 3: Tính lại chuyên cần của kỳ
	if _, cerr := s.Recompute(ctx, attendancedto.RecomputeInput{
		ClassID: record.ClassID,
		Term:    record.Term,
		Session: record.Session,
	}); cerr != nil {
		return common.OpResult{}, cerr
	}

	return common.OkResult("Đã cập nhật trạng thái điểm danh"), nil
}

// DeleteDay xóa bản ghi điểm danh của một ngày rồi tính lại chuyên cần.
// Ngày chưa điểm danh thì coi là đã xong, không báo lỗi.
func (s *AttendanceService) DeleteDay(ctx context.Context, input attendancedto.DeleteDayInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu xóa không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	if cerr := s.daily.DeleteOne(ctx, bson.M{"classId": input.ClassID, "date": input.Date}, true); cerr != nil {
		return common.OpResult{}, cerr
	}

	result, cerr := s.Recompute(ctx, attendancedto.RecomputeInput{
		ClassID: input.ClassID,
		Term:    input.Term,
		Session: input.Session,
	})
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"classId": input.ClassID,
		"date":    input.Date,
	}).Info("Đã xóa điểm danh ngày")

	return common.OkResultCount("Đã xóa điểm danh và cập nhật chuyên cần", result.Count), nil
}

// FetchDay đọc bản ghi điểm danh của một lớp trong một ngày.
// Ngày chưa điểm danh trả về NotFound.
func (s *AttendanceService) FetchDay(ctx context.Context, classID, date string) (attendancemodels.DailyRecord, *common.Error) {
	if !global.IsValidDayDate(date) {
		return attendancemodels.DailyRecord{}, common.ErrInvalidFormat("Ngày không đúng định dạng YYYY-MM-DD", map[string]interface{}{"date": date})
	}
	return s.daily.FindOne(ctx, bson.M{"classId": classID, "date": date})
}

// GridResult là lưới điểm danh: bản ghi theo ngày tăng dần kèm danh
// sách các ngày đã điểm danh theo đúng thứ tự đó
type GridResult struct {
	Days        []attendancemodels.DailyRecord `json:"days"`
	MarkedDates []string                       `json:"markedDates"`
}

// FetchGrid lấy toàn bộ bản ghi ngày của lớp trong kỳ, tùy chọn lọc khoảng ngày.
// Chỉ đọc, không có side effect.
func (s *AttendanceService) FetchGrid(ctx context.Context, query attendancedto.GridQuery) (GridResult, *common.Error) {
	if err := global.Validator.Struct(query); err != nil {
		return GridResult{}, common.ErrInvalidInput("Tham số truy vấn không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	filter := bson.M{
		"classId": query.ClassID,
		"term":    query.Term,
		"session": query.Session,
	}
	// Ngày dạng YYYY-MM-DD so sánh chuỗi trùng với so sánh thời gian
	if query.FromDate != "" || query.ToDate != "" {
		dateRange := bson.M{}
		if query.FromDate != "" {
			dateRange["$gte"] = query.FromDate
		}
		if query.ToDate != "" {
			dateRange["$lte"] = query.ToDate
		}
		filter["date"] = dateRange
	}

	days, cerr := s.daily.Find(ctx, filter, &basemodels.QueryOptions{
		Sort: map[string]int{"date": 1},
	})
	if cerr != nil {
		return GridResult{}, cerr
	}

	markedDates := make([]string, 0, len(days))
	for _, d := range days {
		markedDates = append(markedDates, d.Date)
	}

	return GridResult{Days: days, MarkedDates: markedDates}, nil
}

// CumulativeOfPupil đọc chuyên cần tích lũy của một học sinh trong một kỳ
func (s *AttendanceService) CumulativeOfPupil(ctx context.Context, pupilID string, session string, term string) (attendancemodels.CumulativeRecord, *common.Error) {
	return s.cumulative.FindOne(ctx, bson.M{
		"pupilId":     pupilID,
		"sessionTerm": attendancemodels.MakeSessionTerm(session, term),
	})
}

// CumulativeOfClass đọc chuyên cần tích lũy của cả lớp trong một kỳ
func (s *AttendanceService) CumulativeOfClass(ctx context.Context, classID string, session string, term string) ([]attendancemodels.CumulativeRecord, *common.Error) {
	return s.cumulative.Find(ctx, bson.M{
		"classId":     classID,
		"sessionTerm": attendancemodels.MakeSessionTerm(session, term),
	}, &basemodels.QueryOptions{Sort: map[string]int{"pupilId": 1}})
}
