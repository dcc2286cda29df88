package hierarchyservice

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	baseservice "school_records/internal/api/base/service"
	hierarchymodels "school_records/internal/api/hierarchy/models"
	rosterservice "school_records/internal/api/roster/service"
	"school_records/internal/common"
	"school_records/internal/global"
	"school_records/internal/logger"
)

// HierarchyService quản lý thứ tự các lớp trong trường
type HierarchyService struct {
	base   baseservice.BaseServiceMongo[hierarchymodels.ClassHierarchy]
	roster *rosterservice.RosterService
}

// NewHierarchyService tạo HierarchyService từ collection đã đăng ký
func NewHierarchyService(roster *rosterservice.RosterService) *HierarchyService {
	return &HierarchyService{
		base:   baseservice.NewBaseServiceMongo[hierarchymodels.ClassHierarchy](global.RegistryCollections.MustGet(global.MongoDB_ColNames.ClassHierarchy)),
		roster: roster,
	}
}

// initializeRetryable: mã lỗi do nhiều tiến trình cùng khởi tạo, caller
// nên thử lại thay vì coi là thất bại
func initializeRetryable(code common.ErrorCode) bool {
	return code == common.ErrCodeBusinessConflict || code == common.ErrCodeDatabaseDuplicate
}

// Initialize tạo document thứ tự lớp nếu chưa có, thứ tự ban đầu theo
// bảng chữ cái. Danh sách lớp đọc TRƯỚC transaction; transaction chỉ
// kiểm-tra-rồi-tạo để giữ tính tạo-một-lần khi nhiều server cùng boot.
// Xung đột tạo đồng thời trả về kết quả gợi ý thử lại, không phải lỗi.
func (s *HierarchyService) Initialize(ctx context.Context) (common.OpResult, *common.Error) {
	// Bước 1: Đọc danh sách lớp hiện có của trường
	classes, cerr := s.roster.AllClasses(ctx)
	if cerr != nil {
		return common.OpResult{}, cerr
	}

	classIDs := make([]string, 0, len(classes))
	for _, c := range classes {
		classIDs = append(classIDs, c.ClassID)
	}
	sort.Strings(classIDs)

	now := time.Now().UnixMilli()
	doc := hierarchymodels.ClassHierarchy{
		HierarchyKey:    hierarchymodels.HierarchyKey,
		OrderedClassIDs: classIDs,
		CreatedAt:       now,
		LastUpdated:     now,
	}
	// Trường chưa có lớp nào vẫn tạo document, kèm ghi chú
	if len(classIDs) == 0 {
		doc.Note = "Khởi tạo khi trường chưa có lớp nào"
	}

	// Bước 2: Kiểm tra rồi tạo trong một transaction
	created := false
	cerr = baseservice.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) error {
		exists, err := s.base.Exists(sessCtx, bson.M{"hierarchyKey": hierarchymodels.HierarchyKey})
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		created = true
		// Không trả thẳng *common.Error qua kết quả error của closure:
		// giá trị nil có kiểu vẫn là interface khác nil và sẽ hủy transaction.
		if err := s.base.InsertOne(sessCtx, doc); err != nil {
			return err
		}
		return nil
	})
	if cerr != nil {
		if initializeRetryable(cerr.Code) {
			return common.RetryResult("Thứ tự lớp đang được khởi tạo bởi tiến trình khác"), nil
		}
		return common.OpResult{}, cerr
	}

	if !created {
		return common.OkResult("Thứ tự lớp đã tồn tại, giữ nguyên"), nil
	}

	logger.GetLogger().WithField("classes", len(classIDs)).Info("Đã khởi tạo thứ tự lớp")
	return common.OkResultCount("Đã khởi tạo thứ tự lớp", len(classIDs)), nil
}

// GetOrdered trả về thứ tự lớp hiện hành: thứ tự đã lưu cộng các lớp
// mới mở sau khi khởi tạo, nối vào cuối theo bảng chữ cái.
// Chưa từng khởi tạo thì dùng luôn thứ tự bảng chữ cái của danh sách
// lớp hiện có, không báo lỗi.
func (s *HierarchyService) GetOrdered(ctx context.Context) ([]string, *common.Error) {
	var stored []string
	doc, cerr := s.base.FindOne(ctx, bson.M{"hierarchyKey": hierarchymodels.HierarchyKey})
	if cerr != nil {
		if cerr.Code != common.ErrCodeDatabaseNotFound {
			return nil, cerr
		}
	} else {
		stored = doc.OrderedClassIDs
	}

	classes, cerr := s.roster.AllClasses(ctx)
	if cerr != nil {
		return nil, cerr
	}
	current := make([]string, 0, len(classes))
	for _, c := range classes {
		current = append(current, c.ClassID)
	}

	return MergeOrdered(stored, current), nil
}

// GetNext trả về lớp kế tiếp của một lớp trong thứ tự.
// Kết quả rỗng có nghĩa là lớp cuối hoặc lớp không có trong thứ tự.
func (s *HierarchyService) GetNext(ctx context.Context, classID string) (string, *common.Error) {
	ordered, cerr := s.GetOrdered(ctx)
	if cerr != nil {
		return "", cerr
	}
	return NextClass(ordered, classID), nil
}

// IsTerminalClass kiểm tra một lớp có phải lớp cuối trong thứ tự không
func (s *HierarchyService) IsTerminalClass(ctx context.Context, classID string) (bool, *common.Error) {
	ordered, cerr := s.GetOrdered(ctx)
	if cerr != nil {
		return false, cerr
	}
	return IsTerminal(ordered, classID), nil
}

// GetLevel trả về vị trí của lớp trong thứ tự, -1 nếu không có
func (s *HierarchyService) GetLevel(ctx context.Context, classID string) (int, *common.Error) {
	ordered, cerr := s.GetOrdered(ctx)
	if cerr != nil {
		return -1, cerr
	}
	return LevelOf(ordered, classID), nil
}
