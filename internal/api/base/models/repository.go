package basemodels

// UpdateData mô tả các thay đổi cần áp dụng lên một document.
// Mỗi trường tương ứng một toán tử update của MongoDB.
type UpdateData struct {
	Set         map[string]interface{} // Gán giá trị mới cho trường ($set)
	SetOnInsert map[string]interface{} // Chỉ gán khi upsert tạo mới ($setOnInsert)
	Unset       []string               // Xóa trường khỏi document ($unset)
	Push        map[string]interface{} // Thêm phần tử vào mảng ($push)
	AddToSet    map[string]interface{} // Thêm phần tử không trùng vào mảng ($addToSet)
	Inc         map[string]interface{} // Tăng giá trị số ($inc)
}

// QueryOptions tùy chọn cho các thao tác tìm kiếm
type QueryOptions struct {
	Sort  map[string]int // Trường và hướng sắp xếp (1 tăng, -1 giảm)
	Limit int64          // Số bản ghi tối đa (0 = không giới hạn)
	Skip  int64          // Số bản ghi bỏ qua
}
