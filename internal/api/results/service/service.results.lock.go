package resultsservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	basemodels "school_records/internal/api/base/models"
	resultsdto "school_records/internal/api/results/dto"
	resultsmodels "school_records/internal/api/results/models"
	"school_records/internal/common"
	"school_records/internal/global"
	"school_records/internal/logger"
)

// IsLocked kiểm tra kết quả của lớp cho một môn trong kỳ có đang khóa không.
// Chưa có document khóa nghĩa là chưa khóa, không phải lỗi.
func (s *ResultsService) IsLocked(ctx context.Context, classID, term, session, subject string) (bool, *common.Error) {
	lock, cerr := s.locks.FindOne(ctx, subjectFilter(classID, term, session, subject))
	if cerr != nil {
		if cerr.Code == common.ErrCodeDatabaseNotFound {
			return false, nil
		}
		return false, cerr
	}
	return lock.Locked, nil
}

// LockOfSubject đọc document khóa đầy đủ, gồm cả lịch sử mở khóa
func (s *ResultsService) LockOfSubject(ctx context.Context, classID, term, session, subject string) (resultsmodels.ResultLock, *common.Error) {
	return s.locks.FindOne(ctx, subjectFilter(classID, term, session, subject))
}

// Lock khóa chỉnh sửa kết quả của lớp trong kỳ.
// Khóa lại một kỳ đã khóa là thao tác không tác dụng, không báo lỗi.
func (s *ResultsService) Lock(ctx context.Context, input resultsdto.LockInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu khóa không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	cerr := s.locks.UpdateOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject), basemodels.UpdateData{
		Set: map[string]interface{}{
			"locked":   true,
			"lockedAt": time.Now().UnixMilli(),
			"lockedBy": input.LockedBy,
			"reason":   input.Reason,
		},
		SetOnInsert: map[string]interface{}{
			"classId":       input.ClassID,
			"subject":       input.Subject,
			"term":          input.Term,
			"session":       input.Session,
			"unlockHistory": []resultsmodels.UnlockEntry{},
		},
	}, true)
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.Audit("lock_results", input.LockedBy, map[string]interface{}{
		"classId": input.ClassID,
		"subject": input.Subject,
		"term":    input.Term,
		"session": input.Session,
	})

	return common.OkResult("Đã khóa chỉnh sửa kết quả"), nil
}

// Unlock mở khóa chỉnh sửa và ghi một dòng vào lịch sử mở khóa.
// Yêu cầu lý do để mọi lần mở khóa đều truy vết được.
func (s *ResultsService) Unlock(ctx context.Context, input resultsdto.UnlockInput) (common.OpResult, *common.Error) {
	if err := global.Validator.Struct(input); err != nil {
		return common.OpResult{}, common.ErrInvalidInput("Dữ liệu mở khóa không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	// Bước 1: Đọc khóa hiện có để lấy thời điểm khóa trước đó
	lock, cerr := s.locks.FindOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject))
	if cerr != nil {
		if cerr.Code == common.ErrCodeDatabaseNotFound {
			return common.FailResult("Môn này trong kỳ chưa từng bị khóa"), nil
		}
		return common.OpResult{}, cerr
	}
	if !lock.Locked {
		return common.FailResult("Kết quả của kỳ không đang khóa"), nil
	}

	// Bước 2: Mở khóa và thêm bản ghi lịch sử
	entry := resultsmodels.UnlockEntry{
		EntryID:          uuid.NewString(),
		UnlockedAt:       time.Now().UnixMilli(),
		UnlockedBy:       input.UnlockedBy,
		Reason:           input.Reason,
		PreviousLockDate: lock.LockedAt,
	}
	cerr = s.locks.UpdateOne(ctx, subjectFilter(input.ClassID, input.Term, input.Session, input.Subject), basemodels.UpdateData{
		Set: map[string]interface{}{
			"locked": false,
		},
		Push: map[string]interface{}{
			"unlockHistory": entry,
		},
	}, false)
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	logger.Audit("unlock_results", input.UnlockedBy, map[string]interface{}{
		"classId": input.ClassID,
		"subject": input.Subject,
		"term":    input.Term,
		"session": input.Session,
		"reason":  input.Reason,
		"entryId": entry.EntryID,
	})

	return common.OkResult("Đã mở khóa chỉnh sửa kết quả"), nil
}
