package attendanceservice

import (
	"testing"

	attendancemodels "school_records/internal/api/attendance/models"
)

func TestComputeDailyCounts(t *testing.T) {
	status := map[string]string{
		"p1": "present",
		"p2": "absent",
		"p3": "present",
		"p4": "present",
	}
	gender := map[string]string{
		"p1": "boy",
		"p2": "girl",
		"p3": "girl",
		// p4 không có giới tính trong bảng tra
	}

	c := ComputeDailyCounts(status, gender)

	if c.TotalPupils != 4 {
		t.Errorf("TotalPupils = %d, muốn 4", c.TotalPupils)
	}
	if c.TotalPresent != 3 || c.TotalAbsent != 1 {
		t.Errorf("Present/Absent = %d/%d, muốn 3/1", c.TotalPresent, c.TotalAbsent)
	}
	if c.BoysPresent != 1 || c.BoysAbsent != 0 {
		t.Errorf("Boys = %d/%d, muốn 1/0", c.BoysPresent, c.BoysAbsent)
	}
	if c.GirlsPresent != 1 || c.GirlsAbsent != 1 {
		t.Errorf("Girls = %d/%d, muốn 1/1", c.GirlsPresent, c.GirlsAbsent)
	}

	// Bảo toàn: tổng theo trạng thái bằng tổng học sinh
	if c.TotalPresent+c.TotalAbsent != c.TotalPupils {
		t.Error("Tổng present + absent phải bằng tổng học sinh")
	}
}

func TestComputeDailyCounts_Empty(t *testing.T) {
	c := ComputeDailyCounts(map[string]string{}, nil)
	if c.TotalPupils != 0 || c.TotalPresent != 0 || c.TotalAbsent != 0 {
		t.Errorf("Trạng thái rỗng phải cho tổng đếm 0, có %+v", c)
	}
}

func dayRecord(date string, status map[string]string) attendancemodels.DailyRecord {
	return attendancemodels.DailyRecord{
		ClassID:       "class-1",
		Date:          date,
		Term:          "First Term",
		Session:       "2025/2026",
		StatusByPupil: status,
	}
}

func TestTallyCumulative_TwoDays(t *testing.T) {
	// Hai ngày: p1 có mặt cả hai, p2 có mặt một vắng một
	records := []attendancemodels.DailyRecord{
		dayRecord("2026-01-05", map[string]string{"p1": "present", "p2": "absent"}),
		dayRecord("2026-01-06", map[string]string{"p1": "present", "p2": "present"}),
	}

	tallies := TallyCumulative(records, []string{"p1", "p2"})

	if len(tallies) != 2 {
		t.Fatalf("Số học sinh = %d, muốn 2", len(tallies))
	}

	p1 := tallies["p1"]
	if p1.TimesOpened != 2 || p1.TimesPresent != 2 || p1.TimesAbsent != 0 {
		t.Errorf("p1 = %+v, muốn mở 2 / có mặt 2 / vắng 0", p1)
	}

	p2 := tallies["p2"]
	if p2.TimesOpened != 2 || p2.TimesPresent != 1 || p2.TimesAbsent != 1 {
		t.Errorf("p2 = %+v, muốn mở 2 / có mặt 1 / vắng 1", p2)
	}
}

func TestTallyCumulative_PupilMissingFromSomeDay(t *testing.T) {
	// p3 chỉ xuất hiện ngày thứ hai: ngày đầu vẫn tính vào timesOpened
	// nhưng không tính có mặt hay vắng
	records := []attendancemodels.DailyRecord{
		dayRecord("2026-01-05", map[string]string{"p1": "present"}),
		dayRecord("2026-01-06", map[string]string{"p1": "present", "p3": "absent"}),
	}

	tallies := TallyCumulative(records, []string{"p1"})

	p3 := tallies["p3"]
	if p3.TimesOpened != 2 {
		t.Errorf("p3.TimesOpened = %d, muốn 2", p3.TimesOpened)
	}
	if p3.TimesPresent != 0 || p3.TimesAbsent != 1 {
		t.Errorf("p3 = %+v, muốn có mặt 0 / vắng 1", p3)
	}

	// Bất biến: present + absent <= opened với mọi học sinh
	for id, tally := range tallies {
		if tally.TimesPresent+tally.TimesAbsent > tally.TimesOpened {
			t.Errorf("%s: present + absent vượt quá số ngày mở lớp: %+v", id, tally)
		}
	}
}

func TestTallyCumulative_Idempotent(t *testing.T) {
	records := []attendancemodels.DailyRecord{
		dayRecord("2026-01-05", map[string]string{"p1": "present", "p2": "absent"}),
		dayRecord("2026-01-06", map[string]string{"p1": "absent", "p2": "present"}),
		dayRecord("2026-01-07", map[string]string{"p1": "present", "p2": "present"}),
	}

	roster := []string{"p1", "p2"}
	first := TallyCumulative(records, roster)
	second := TallyCumulative(records, roster)

	if len(first) != len(second) {
		t.Fatal("Hai lần tính cùng dữ liệu phải cho cùng số học sinh")
	}
	for id, a := range first {
		b := second[id]
		if a != b {
			t.Errorf("%s: hai lần tính khác nhau: %+v vs %+v", id, a, b)
		}
	}
}

func TestTallyCumulative_NoRecords(t *testing.T) {
	// Không còn bản ghi ngày nào: mọi học sinh trong danh sách lớp
	// vẫn có bản ghi tích lũy toàn 0, không bị bỏ qua
	tallies := TallyCumulative(nil, []string{"p1", "p2"})
	if len(tallies) != 2 {
		t.Fatalf("Số học sinh = %d, muốn 2", len(tallies))
	}
	for id, tally := range tallies {
		if tally.TimesOpened != 0 || tally.TimesPresent != 0 || tally.TimesAbsent != 0 {
			t.Errorf("%s phải toàn 0, có %+v", id, tally)
		}
	}
}

func TestTallyCumulative_NeverMarkedPupil(t *testing.T) {
	// p9 trong danh sách lớp nhưng chưa từng có trong bản ghi nào:
	// vẫn tính số ngày mở lớp, không tính có mặt hay vắng
	records := []attendancemodels.DailyRecord{
		dayRecord("2026-01-05", map[string]string{"p1": "present"}),
	}
	tallies := TallyCumulative(records, []string{"p1", "p9"})

	p9 := tallies["p9"]
	if p9.TimesOpened != 1 || p9.TimesPresent != 0 || p9.TimesAbsent != 0 {
		t.Errorf("p9 = %+v, muốn mở 1 / có mặt 0 / vắng 0", p9)
	}
}
