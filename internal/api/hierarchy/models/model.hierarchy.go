package hierarchymodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// HierarchyKey là khóa cố định của document thứ tự lớp.
// Collection chỉ chứa đúng một document.
const HierarchyKey = "class_hierarchy"

// ClassHierarchy là thứ tự các lớp trong trường, từ thấp lên cao.
// Học sinh học xong một lớp sẽ lên lớp đứng kế tiếp trong danh sách.
type ClassHierarchy struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HierarchyKey    string             `bson:"hierarchyKey" json:"hierarchyKey"` // Luôn là HierarchyKey
	OrderedClassIDs []string           `bson:"orderedClassIds" json:"orderedClassIds"`
	Note            string             `bson:"note,omitempty" json:"note,omitempty"` // Ghi chú khi khởi tạo không có lớp nào
	CreatedAt       int64              `bson:"createdAt" json:"createdAt"`
	LastUpdated     int64              `bson:"lastUpdated" json:"lastUpdated"`
}
