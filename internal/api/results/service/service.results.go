package resultsservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basemodels "school_records/internal/api/base/models"
	baseservice "school_records/internal/api/base/service"
	resultsdto "school_records/internal/api/results/dto"
	resultsmodels "school_records/internal/api/results/models"
	"school_records/internal/common"
	"school_records/internal/global"
)

// ResultsService quản lý bản nháp, nộp duyệt, công bố và khóa kết quả
type ResultsService struct {
	drafts      baseservice.BaseServiceMongo[resultsmodels.ResultDraft]
	submissions baseservice.BaseServiceMongo[resultsmodels.SubmissionRecord]
	published   baseservice.BaseServiceMongo[resultsmodels.PublishedResult]
	locks       baseservice.BaseServiceMongo[resultsmodels.ResultLock]
}

// NewResultsService tạo ResultsService từ các collection đã đăng ký
func NewResultsService() *ResultsService {
	return &ResultsService{
		drafts:      baseservice.NewBaseServiceMongo[resultsmodels.ResultDraft](global.RegistryCollections.MustGet(global.MongoDB_ColNames.ResultDrafts)),
		submissions: baseservice.NewBaseServiceMongo[resultsmodels.SubmissionRecord](global.RegistryCollections.MustGet(global.MongoDB_ColNames.ResultSubmissions)),
		published:   baseservice.NewBaseServiceMongo[resultsmodels.PublishedResult](global.RegistryCollections.MustGet(global.MongoDB_ColNames.ResultPublished)),
		locks:       baseservice.NewBaseServiceMongo[resultsmodels.ResultLock](global.RegistryCollections.MustGet(global.MongoDB_ColNames.ResultLocks)),
	}
}

// termFilter dựng filter theo khóa (classId, term, session)
func termFilter(classID, term, session string) bson.M {
	return bson.M{"classId": classID, "term": term, "session": session}
}

// subjectFilter dựng filter theo khóa (classId, term, session, subject)
func subjectFilter(classID, term, session, subject string) bson.M {
	f := termFilter(classID, term, session)
	f["subject"] = subject
	return f
}

// SaveDraft lưu bản nháp điểm của một học sinh cho một môn.
// Bị từ chối khi kết quả của kỳ đã khóa.
func (s *ResultsService) SaveDraft(ctx context.Context, input resultsdto.SaveDraftInput) (common.OpResult, *common.Error) {
	// Bước 1: Kiểm tra dữ liệu đầu vào
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu bản nháp không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 2: Chặn chỉnh sửa khi kết quả của môn đã khóa
	locked, cerr := s.IsLocked(ctx, input.ClassID, input.Term, input.Session, input.Subject)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	if locked {
		return common.OpResult{}, common.ErrLocked("Kết quả của môn trong kỳ đã khóa, không thể sửa bản nháp", map[string]interface{}{
			"classId": input.ClassID, "subject": input.Subject, "term": input.Term, "session": input.Session,
		})
	}

	// Bước 3: Ghi đè theo khóa (lớp, học sinh, môn, kỳ)
	now := time.Now().UnixMilli()
	draft := resultsmodels.ResultDraft{
		ClassID:   input.ClassID,
		PupilID:   input.PupilID,
		Subject:   input.Subject,
		Term:      input.Term,
		Session:   input.Session,
		Score:     input.Score,
		TeacherID: input.TeacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	filter := bson.M{
		"classId": input.ClassID,
		"pupilId": input.PupilID,
		"subject": input.Subject,
		"term":    input.Term,
		"session": input.Session,
	}
	if cerr := s.drafts.ReplaceUpsert(ctx, filter, draft); cerr != nil {
		return common.OpResult{}, cerr
	}

	return common.OkResult("Đã lưu bản nháp"), nil
}

// DeleteDraft xóa một bản nháp, bị từ chối khi môn đã khóa
func (s *ResultsService) DeleteDraft(ctx context.Context, input resultsdto.SaveDraftInput) (common.OpResult, *common.Error) {
	locked, cerr := s.IsLocked(ctx, input.ClassID, input.Term, input.Session, input.Subject)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	if locked {
		return common.OpResult{}, common.ErrLocked("Kết quả của môn trong kỳ đã khóa, không thể xóa bản nháp", nil)
	}

	filter := bson.M{
		"classId": input.ClassID,
		"pupilId": input.PupilID,
		"subject": input.Subject,
		"term":    input.Term,
		"session": input.Session,
	}
	if cerr := s.drafts.DeleteOne(ctx, filter, true); cerr != nil {
		return common.OpResult{}, cerr
	}
	return common.OkResult("Đã xóa bản nháp"), nil
}

// DraftsOfTerm lấy toàn bộ bản nháp của lớp trong kỳ
func (s *ResultsService) DraftsOfTerm(ctx context.Context, classID, term, session string) ([]resultsmodels.ResultDraft, *common.Error) {
	return s.drafts.Find(ctx, termFilter(classID, term, session), &basemodels.QueryOptions{
		Sort: map[string]int{"pupilId": 1, "subject": 1},
	})
}

// DraftsOfSubject lấy bản nháp của lớp cho một môn trong kỳ
func (s *ResultsService) DraftsOfSubject(ctx context.Context, classID, term, session, subject string) ([]resultsmodels.ResultDraft, *common.Error) {
	return s.drafts.Find(ctx, subjectFilter(classID, term, session, subject), &basemodels.QueryOptions{
		Sort: map[string]int{"pupilId": 1},
	})
}

// PublishedOfTerm lấy kết quả đã công bố của lớp trong kỳ
func (s *ResultsService) PublishedOfTerm(ctx context.Context, classID, term, session string) ([]resultsmodels.PublishedResult, *common.Error) {
	return s.published.Find(ctx, termFilter(classID, term, session), &basemodels.QueryOptions{
		Sort: map[string]int{"pupilId": 1, "subject": 1},
	})
}

// SubmissionOfSubject đọc bản ghi nộp của lớp cho một môn trong kỳ
func (s *ResultsService) SubmissionOfSubject(ctx context.Context, classID, term, session, subject string) (resultsmodels.SubmissionRecord, *common.Error) {
	return s.submissions.FindOne(ctx, subjectFilter(classID, term, session, subject))
}

// CountDistinctPupilsWithScores đếm số học sinh có ít nhất một điểm khác 0.
// Hàm thuần, dùng để tính pupilCount khi nộp.
func CountDistinctPupilsWithScores(drafts []resultsmodels.ResultDraft) int {
	seen := make(map[string]bool)
	for _, d := range drafts {
		if d.Score != 0 {
			seen[d.PupilID] = true
		}
	}
	return len(seen)
}
