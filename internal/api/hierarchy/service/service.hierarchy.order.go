package hierarchyservice

import "sort"

// MergeOrdered ghép thứ tự đã lưu với danh sách lớp hiện có của trường.
// Lớp đã có trong thứ tự giữ nguyên vị trí; lớp mới chưa có trong thứ tự
// được nối vào cuối theo thứ tự bảng chữ cái. Lớp trong thứ tự đã lưu
// nhưng không còn tồn tại vẫn được giữ lại, việc dọn là của quản trị.
func MergeOrdered(stored []string, current []string) []string {
	inStored := make(map[string]bool, len(stored))
	for _, id := range stored {
		inStored[id] = true
	}

	extra := make([]string, 0)
	for _, id := range current {
		if !inStored[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)

	merged := make([]string, 0, len(stored)+len(extra))
	merged = append(merged, stored...)
	merged = append(merged, extra...)
	return merged
}

// NextClass trả về lớp kế tiếp của classID trong thứ tự.
// Trả về rỗng khi classID là lớp cuối HOẶC không có trong thứ tự:
// hai trường hợp này không phân biệt được, dùng IsTerminal và LevelOf
// khi cần biết chính xác.
func NextClass(ordered []string, classID string) string {
	for i, id := range ordered {
		if id == classID && i+1 < len(ordered) {
			return ordered[i+1]
		}
	}
	return ""
}

// IsTerminal cho biết classID có phải lớp cuối cùng trong thứ tự không.
// Lớp không có trong thứ tự KHÔNG phải lớp cuối.
func IsTerminal(ordered []string, classID string) bool {
	if len(ordered) == 0 {
		return false
	}
	return ordered[len(ordered)-1] == classID
}

// LevelOf trả về vị trí (bắt đầu từ 0) của classID trong thứ tự,
// -1 nếu không có.
func LevelOf(ordered []string, classID string) int {
	for i, id := range ordered {
		if id == classID {
			return i
		}
	}
	return -1
}
