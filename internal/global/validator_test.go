package global

import "testing"

func TestIsValidDayDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2026-09-01", true},
		{"2026-02-29", false}, // 2026 không phải năm nhuận
		{"2024-02-29", true},
		{"2026-13-01", false},
		{"2026-00-10", false},
		{"26-09-01", false},
		{"2026/09/01", false},
		{"", false},
		{"2026-9-1", false},
	}

	for _, c := range cases {
		if got := IsValidDayDate(c.input); got != c.want {
			t.Errorf("IsValidDayDate(%q) = %v, muốn %v", c.input, got, c.want)
		}
	}
}

func TestIsValidAttendanceStatus(t *testing.T) {
	if !IsValidAttendanceStatus("present") {
		t.Error("present phải hợp lệ")
	}
	if !IsValidAttendanceStatus("absent") {
		t.Error("absent phải hợp lệ")
	}
	if IsValidAttendanceStatus("late") {
		t.Error("late không phải trạng thái hợp lệ")
	}
	if IsValidAttendanceStatus("") {
		t.Error("chuỗi rỗng không hợp lệ")
	}
}
