package rosterservice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	basemodels "school_records/internal/api/base/models"
	baseservice "school_records/internal/api/base/service"
	rostermodels "school_records/internal/api/roster/models"
	"school_records/internal/common"
	"school_records/internal/global"
)

// RosterService cung cấp dữ liệu học sinh, lớp và cấu hình trường cho các module khác
type RosterService struct {
	pupils   baseservice.BaseServiceMongo[rostermodels.Pupil]
	classes  baseservice.BaseServiceMongo[rostermodels.Class]
	settings baseservice.BaseServiceMongo[rostermodels.SchoolSettings]
}

// NewRosterService tạo RosterService từ các collection đã đăng ký
func NewRosterService() *RosterService {
	return &RosterService{
		pupils:   baseservice.NewBaseServiceMongo[rostermodels.Pupil](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Pupils)),
		classes:  baseservice.NewBaseServiceMongo[rostermodels.Class](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Classes)),
		settings: baseservice.NewBaseServiceMongo[rostermodels.SchoolSettings](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Settings)),
	}
}

// PupilsOfClass trả về danh sách học sinh của một lớp, sắp xếp theo tên
func (s *RosterService) PupilsOfClass(ctx context.Context, classID string) ([]rostermodels.Pupil, *common.Error) {
	return s.pupils.Find(ctx, bson.M{"classId": classID}, &basemodels.QueryOptions{
		Sort: map[string]int{"fullName": 1},
	})
}

// PupilByID tìm một học sinh theo mã
func (s *RosterService) PupilByID(ctx context.Context, pupilID string) (rostermodels.Pupil, *common.Error) {
	return s.pupils.FindOne(ctx, bson.M{"pupilId": pupilID})
}

// AllClasses trả về toàn bộ lớp của trường, sắp xếp theo mã lớp
func (s *RosterService) AllClasses(ctx context.Context) ([]rostermodels.Class, *common.Error) {
	return s.classes.Find(ctx, bson.M{}, &basemodels.QueryOptions{
		Sort: map[string]int{"classId": 1},
	})
}

// ClassByID tìm một lớp theo mã
func (s *RosterService) ClassByID(ctx context.Context, classID string) (rostermodels.Class, *common.Error) {
	return s.classes.FindOne(ctx, bson.M{"classId": classID})
}

// CurrentSettings trả về niên khóa và học kỳ hiện hành.
// Chưa có document cấu hình là lỗi vận hành, không phải trạng thái hợp lệ.
func (s *RosterService) CurrentSettings(ctx context.Context) (rostermodels.SchoolSettings, *common.Error) {
	settings, err := s.settings.FindOne(ctx, bson.M{"settingsKey": rostermodels.SettingsKey})
	if err != nil {
		if err.Code == common.ErrCodeDatabaseNotFound {
			return settings, common.ErrNotFound("Chưa cấu hình niên khóa và học kỳ cho trường", nil)
		}
		return settings, err
	}
	return settings, nil
}

// CountPupilsByGender đếm số học sinh nam và nữ trong một danh sách
func CountPupilsByGender(pupils []rostermodels.Pupil) (boys int, girls int) {
	for _, p := range pupils {
		switch p.Gender {
		case rostermodels.GenderBoy:
			boys++
		case rostermodels.GenderGirl:
			girls++
		}
	}
	return boys, girls
}
