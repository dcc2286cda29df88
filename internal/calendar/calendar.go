package calendar

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	baseservice "school_records/internal/api/base/service"
	"school_records/internal/common"
	"school_records/internal/global"
)

// NonSchoolDay là một ngày không học trong lịch của trường
type NonSchoolDay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      string             `bson:"date" json:"date"` // Ngày dạng YYYY-MM-DD
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

// CalendarService quản lý lịch ngày nghỉ với cache trong bộ nhớ.
// Cache được làm mới lười và bị vô hiệu mỗi khi ghi vào lịch.
type CalendarService struct {
	base baseservice.BaseServiceMongo[NonSchoolDay]

	mu     sync.RWMutex
	cache  map[string]bool // date -> là ngày nghỉ
	loaded bool
}

// NewCalendarService tạo CalendarService từ collection đã đăng ký
func NewCalendarService() *CalendarService {
	return &CalendarService{
		base: baseservice.NewBaseServiceMongo[NonSchoolDay](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Calendar)),
	}
}

// load nạp toàn bộ ngày nghỉ vào cache nếu chưa có
func (s *CalendarService) load(ctx context.Context) *common.Error {
	s.mu.RLock()
	if s.loaded {
		s.mu.RUnlock()
		return nil
	}
	s.mu.RUnlock()

	days, err := s.base.Find(ctx, bson.M{}, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]bool, len(days))
	for _, d := range days {
		s.cache[d.Date] = true
	}
	s.loaded = true
	return nil
}

// invalidate xóa cache, lần đọc sau sẽ nạp lại từ cơ sở dữ liệu
func (s *CalendarService) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.cache = nil
}

// IsSchoolDay kiểm tra một ngày có phải ngày học hay không
func (s *CalendarService) IsSchoolDay(ctx context.Context, date string) (bool, *common.Error) {
	if !global.IsValidDayDate(date) {
		return false, common.ErrInvalidFormat("Ngày không hợp lệ, cần dạng YYYY-MM-DD", map[string]interface{}{"date": date})
	}
	if err := s.load(ctx); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.cache[date], nil
}

// NonSchoolDays trả về toàn bộ ngày nghỉ đã khai báo
func (s *CalendarService) NonSchoolDays(ctx context.Context) ([]NonSchoolDay, *common.Error) {
	return s.base.Find(ctx, bson.M{}, nil)
}

// MarkNonSchoolDay khai báo một ngày nghỉ mới, ghi đè nếu đã có
func (s *CalendarService) MarkNonSchoolDay(ctx context.Context, date string, reason string) *common.Error {
	if !global.IsValidDayDate(date) {
		return common.ErrInvalidFormat("Ngày không hợp lệ, cần dạng YYYY-MM-DD", map[string]interface{}{"date": date})
	}

	day := NonSchoolDay{
		Date:      date,
		Reason:    reason,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.base.ReplaceUpsert(ctx, bson.M{"date": date}, day); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

// ClearNonSchoolDay xóa một ngày nghỉ khỏi lịch
func (s *CalendarService) ClearNonSchoolDay(ctx context.Context, date string) *common.Error {
	if err := s.base.DeleteOne(ctx, bson.M{"date": date}, true); err != nil {
		return err
	}

	s.invalidate()
	return nil
}
