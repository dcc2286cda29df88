package resultsservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "school_records/internal/api/base/models"
	baseservice "school_records/internal/api/base/service"
	resultsdto "school_records/internal/api/results/dto"
	resultsmodels "school_records/internal/api/results/models"
	"school_records/internal/common"
	"school_records/internal/global"
	"school_records/internal/logger"
)

// DefaultRejectionReason dùng khi người duyệt không ghi lý do từ chối
const DefaultRejectionReason = "No reason provided"

// submitBlockReason trả về thông báo chặn nếu trạng thái bản nộp hiện có
// không cho phép nộp lại; chuỗi rỗng nghĩa là được nộp. Đang chờ duyệt
// thì phải chờ; đã duyệt là trạng thái kết thúc, muốn nộp lại phải được
// mở khóa và từ chối trước. Chỉ bản nộp bị từ chối mới nộp lại được.
func submitBlockReason(status string) string {
	switch status {
	case resultsmodels.SubmissionPending:
		return "Kết quả của môn trong kỳ đã được nộp và đang chờ duyệt"
	case resultsmodels.SubmissionApproved:
		return "Kết quả của môn trong kỳ đã được duyệt, không thể nộp lại"
	}
	return ""
}

// lookupMeansNoSubmission: đọc bản nộp thất bại vì chưa tồn tại hay vì
// thiếu quyền đọc đều coi là chưa nộp, hai trường hợp này không phân
// biệt được từ phía client
func lookupMeansNoSubmission(cerr *common.Error) bool {
	return cerr != nil && (cerr.Code == common.ErrCodeDatabaseNotFound || cerr.Code == common.ErrCodeAuthRole)
}

// Submit nộp kết quả của một lớp trong một kỳ để chờ duyệt.
// Đã có bản nộp đang chờ thì trả về kết quả nghiệp vụ, không phải lỗi.
func (s *ResultsService) Submit(ctx context.Context, input resultsdto.SubmitInput) (common.OpResult, *common.Error) {
	// Bước 1: Kiểm tra dữ liệu đầu vào
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu nộp không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 2: Kiểm tra bản nộp hiện có
	existing, cerr := s.submissions.FindOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject))
	if cerr == nil {
		if msg := submitBlockReason(existing.Status); msg != "" {
			return common.FailResult(msg), nil
		}
	} else if !lookupMeansNoSubmission(cerr) {
		return common.OpResult{}, cerr
	}

	// Bước 3: Đếm số học sinh có điểm từ bản nháp
	drafts, cerr := s.DraftsOfSubject(ctx, input.ClassID, input.Term, input.Session, input.Subject)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	pupilCount := CountDistinctPupilsWithScores(drafts)

	// Bước 4: Ghi bản nộp ở trạng thái chờ duyệt, giữ lại các trường cũ
	// (lịch sử duyệt trước đó) bằng update thay vì replace
	now := time.Now().UnixMilli()
	cerr = s.submissions.UpdateOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject), basemodels.UpdateData{
		Set: map[string]interface{}{
			"status":      resultsmodels.SubmissionPending,
			"pupilCount":  pupilCount,
			"submittedBy": input.SubmittedBy,
			"submittedAt": now,
		},
		SetOnInsert: map[string]interface{}{
			"classId": input.ClassID,
			"subject": input.Subject,
			"term":    input.Term,
			"session": input.Session,
		},
		Unset: []string{"rejectionReason"},
	}, true)
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.Audit("submit_results", input.SubmittedBy, map[string]interface{}{
		"classId":    input.ClassID,
		"subject":    input.Subject,
		"term":       input.Term,
		"session":    input.Session,
		"pupilCount": pupilCount,
	})

	return common.OkResultCount("Đã nộp kết quả chờ duyệt", pupilCount), nil
}

// Approve duyệt bản nộp của một lớp trong một kỳ.
// Ba thao tác diễn ra trong MỘT transaction: công bố toàn bộ bản nháp,
// chuyển bản nộp sang approved, và khóa chỉnh sửa. Hoặc cả ba cùng
// thành công, hoặc không có gì thay đổi.
func (s *ResultsService) Approve(ctx context.Context, input resultsdto.ReviewInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu duyệt không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 1: Phải có bản nộp đang chờ
	submission, cerr := s.submissions.FindOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject))
	if cerr != nil {
		if cerr.Code == common.ErrCodeDatabaseNotFound {
			return common.OpResult{}, common.ErrNotFound("Chưa có bản nộp cho môn này trong kỳ", map[string]interface{}{
				"classId": input.ClassID, "subject": input.Subject, "term": input.Term, "session": input.Session,
			})
		}
		return common.OpResult{}, cerr
	}
	if submission.Status == resultsmodels.SubmissionApproved {
		return common.FailResult("Bản nộp đã được duyệt trước đó"), nil
	}

	// Bước 2: Đọc bản nháp cần công bố
	drafts, cerr := s.DraftsOfSubject(ctx, input.ClassID, input.Term, input.Session, input.Subject)
	if cerr != nil {
		return common.OpResult{}, cerr
	}
	if len(drafts) == 0 {
		return common.FailResult("Không có bản nháp nào để duyệt"), nil
	}

	now := time.Now().UnixMilli()
	filter := subjectFilter(input.ClassID, input.Term, input.Session, input.Subject)

	// Bước 3: Thực hiện ba thao tác trong một transaction
	cerr = baseservice.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) error {
		// 3a: Công bố từng bản nháp, ghi đè bản công bố cũ nếu có
		for _, d := range drafts {
			pub := resultsmodels.PublishedResult{
				ClassID:     d.ClassID,
				PupilID:     d.PupilID,
				Subject:     d.Subject,
				Term:        d.Term,
				Session:     d.Session,
				Score:       d.Score,
				TeacherID:   d.TeacherID,
				PublishedBy: input.ReviewedBy,
				PublishedAt: now,
			}
			pubFilter := bson.M{
				"classId": d.ClassID,
				"pupilId": d.PupilID,
				"subject": d.Subject,
				"term":    d.Term,
				"session": d.Session,
			}
			if err := s.published.ReplaceUpsert(sessCtx, pubFilter, pub); err != nil {
				return err
			}
		}

		// 3b: Chuyển bản nộp sang approved
		if err := s.submissions.UpdateOne(sessCtx, filter, basemodels.UpdateData{
			Set: map[string]interface{}{
				"status":     resultsmodels.SubmissionApproved,
				"reviewedBy": input.ReviewedBy,
				"reviewedAt": now,
			},
		}, false); err != nil {
			return err
		}

		// 3c: Khóa chỉnh sửa kết quả của kỳ.
		// Không trả thẳng *common.Error qua kết quả error của closure:
		// giá trị nil có kiểu vẫn là interface khác nil và sẽ hủy transaction.
		if err := s.locks.UpdateOne(sessCtx, filter, basemodels.UpdateData{
			Set: map[string]interface{}{
				"locked":   true,
				"lockedAt": now,
				"lockedBy": input.ReviewedBy,
				"reason":   "Kết quả đã được duyệt và công bố",
			},
			SetOnInsert: map[string]interface{}{
				"classId":       input.ClassID,
				"subject":       input.Subject,
				"term":          input.Term,
				"session":       input.Session,
				"unlockHistory": []resultsmodels.UnlockEntry{},
			},
		}, true); err != nil {
			return err
		}
		return nil
	})
	if cerr != nil {
		// Xung đột ghi tạm thời: gợi ý client thử lại
		if cerr.Code == common.ErrCodeBusinessConflict {
			return common.RetryResult("Xung đột khi duyệt, vui lòng thử lại"), nil
		}
		return common.OpResult{}, cerr
	}

	logger.Audit("approve_results", input.ReviewedBy, map[string]interface{}{
		"classId":   input.ClassID,
		"subject":   input.Subject,
		"term":      input.Term,
		"session":   input.Session,
		"published": len(drafts),
	})

	return common.OkResultCount("Đã duyệt và công bố kết quả", len(drafts)), nil
}

// Reject từ chối bản nộp, kèm lý do.
// Không ghi lý do thì dùng lý do mặc định.
func (s *ResultsService) Reject(ctx context.Context, input resultsdto.ReviewInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu từ chối không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	submission, cerr := s.submissions.FindOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject))
	if cerr != nil {
		if cerr.Code == common.ErrCodeDatabaseNotFound {
			return common.OpResult{}, common.ErrNotFound("Chưa có bản nộp cho môn này trong kỳ", nil)
		}
		return common.OpResult{}, cerr
	}
	if submission.Status != resultsmodels.SubmissionPending {
		return common.FailResult("Chỉ từ chối được bản nộp đang chờ duyệt"), nil
	}

	reason := input.Reason
	if reason == "" {
		reason = DefaultRejectionReason
	}

	cerr = s.submissions.UpdateOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject), basemodels.UpdateData{
		Set: map[string]interface{}{
			"status":          resultsmodels.SubmissionRejected,
			"reviewedBy":      input.ReviewedBy,
			"reviewedAt":      time.Now().UnixMilli(),
			"rejectionReason": reason,
		},
	}, false)
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.Audit("reject_results", input.ReviewedBy, map[string]interface{}{
		"classId": input.ClassID,
		"subject": input.Subject,
		"term":    input.Term,
		"session": input.Session,
		"reason":  reason,
	})

	return common.OkResult("Đã từ chối bản nộp"), nil
}
