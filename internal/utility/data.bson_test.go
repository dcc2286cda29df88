package utility

import "testing"

func TestToMap(t *testing.T) {
	type sample struct {
		Name  string `bson:"name"`
		Count int    `bson:"count"`
	}

	m, err := ToMap(sample{Name: "lop-1", Count: 3})
	if err != nil {
		t.Fatalf("ToMap thất bại: %v", err)
	}

	if m["name"] != "lop-1" {
		t.Errorf("name = %v, muốn lop-1", m["name"])
	}
	// Số nguyên qua bson trở thành int32 hoặc int64 tùy giá trị
	switch m["count"].(type) {
	case int32, int64:
	default:
		t.Errorf("count có kiểu %T, muốn kiểu số nguyên bson", m["count"])
	}
}
