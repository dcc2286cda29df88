package hierarchyservice

import (
	"reflect"
	"testing"

	"school_records/internal/common"
)

func TestMergeOrdered(t *testing.T) {
	stored := []string{"primary-1", "primary-2", "primary-3"}
	current := []string{"primary-2", "nursery-2", "primary-1", "nursery-1", "primary-3"}

	got := MergeOrdered(stored, current)
	want := []string{"primary-1", "primary-2", "primary-3", "nursery-1", "nursery-2"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeOrdered = %v, muốn %v", got, want)
	}
}

func TestMergeOrdered_KeepsMissingClasses(t *testing.T) {
	// Lớp đã đóng vẫn nằm trong thứ tự cho đến khi quản trị dọn
	stored := []string{"a", "b-closed", "c"}
	current := []string{"a", "c"}

	got := MergeOrdered(stored, current)
	want := []string{"a", "b-closed", "c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeOrdered = %v, muốn %v", got, want)
	}
}

func TestMergeOrdered_EmptyStored(t *testing.T) {
	got := MergeOrdered(nil, []string{"b", "a"})
	want := []string{"a", "b"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeOrdered = %v, muốn %v", got, want)
	}
}

// Chưa khởi tạo thứ tự: thứ tự bảng chữ cái của các lớp hiện có vẫn
// cho tra cứu lớp kế tiếp và lớp cuối như bình thường
func TestMergeOrdered_UninitializedLookups(t *testing.T) {
	ordered := MergeOrdered(nil, []string{"primary-2", "nursery-1", "primary-1"})

	if got := NextClass(ordered, "nursery-1"); got != "primary-1" {
		t.Errorf("NextClass(nursery-1) = %q, muốn primary-1", got)
	}
	if !IsTerminal(ordered, "primary-2") {
		t.Error("primary-2 phải là lớp cuối theo bảng chữ cái")
	}
	if got := LevelOf(ordered, "primary-1"); got != 1 {
		t.Errorf("LevelOf(primary-1) = %d, muốn 1", got)
	}
}

func TestInitializeRetryable(t *testing.T) {
	// Xung đột transaction và khóa trùng đều do khởi tạo đồng thời
	if !initializeRetryable(common.ErrCodeBusinessConflict) {
		t.Error("Xung đột transaction phải được thử lại")
	}
	if !initializeRetryable(common.ErrCodeDatabaseDuplicate) {
		t.Error("Khóa trùng phải được thử lại")
	}
	if initializeRetryable(common.ErrCodeDatabase) {
		t.Error("Lỗi cơ sở dữ liệu chung không phải trường hợp thử lại")
	}
}

func TestNextClass(t *testing.T) {
	ordered := []string{"a", "b", "c"}

	if got := NextClass(ordered, "a"); got != "b" {
		t.Errorf("NextClass(a) = %q, muốn b", got)
	}
	if got := NextClass(ordered, "b"); got != "c" {
		t.Errorf("NextClass(b) = %q, muốn c", got)
	}

	// Lớp cuối và lớp không tồn tại đều trả về rỗng
	if got := NextClass(ordered, "c"); got != "" {
		t.Errorf("NextClass(c) = %q, muốn rỗng", got)
	}
	if got := NextClass(ordered, "x"); got != "" {
		t.Errorf("NextClass(x) = %q, muốn rỗng", got)
	}
}

func TestIsTerminal(t *testing.T) {
	ordered := []string{"a", "b", "c"}

	if !IsTerminal(ordered, "c") {
		t.Error("c phải là lớp cuối")
	}
	if IsTerminal(ordered, "a") {
		t.Error("a không phải lớp cuối")
	}
	// Lớp không có trong thứ tự không phải lớp cuối
	if IsTerminal(ordered, "x") {
		t.Error("x không có trong thứ tự, không phải lớp cuối")
	}
	if IsTerminal(nil, "a") {
		t.Error("Thứ tự rỗng thì không lớp nào là lớp cuối")
	}
}

func TestLevelOf(t *testing.T) {
	ordered := []string{"a", "b", "c"}

	if got := LevelOf(ordered, "a"); got != 0 {
		t.Errorf("LevelOf(a) = %d, muốn 0", got)
	}
	if got := LevelOf(ordered, "c"); got != 2 {
		t.Errorf("LevelOf(c) = %d, muốn 2", got)
	}
	if got := LevelOf(ordered, "x"); got != -1 {
		t.Errorf("LevelOf(x) = %d, muốn -1", got)
	}
}

// Phân biệt lớp cuối với lớp không tồn tại bằng LevelOf + NextClass
func TestTerminalVersusMissing(t *testing.T) {
	ordered := []string{"a", "b"}

	// b: có trong thứ tự, không có lớp kế tiếp -> lớp cuối
	if NextClass(ordered, "b") != "" || LevelOf(ordered, "b") == -1 {
		t.Error("b phải là lớp cuối có trong thứ tự")
	}
	// x: không có lớp kế tiếp vì không tồn tại
	if NextClass(ordered, "x") != "" || LevelOf(ordered, "x") != -1 {
		t.Error("x phải là lớp không tồn tại")
	}
}
