package attendanceservice

import (
	"testing"

	attendancemodels "school_records/internal/api/attendance/models"
)

func TestComputeWeekSummary(t *testing.T) {
	records := []attendancemodels.DailyRecord{
		{Date: "2026-01-05", TotalPresent: 18, TotalAbsent: 2, TotalPupils: 20},
		{Date: "2026-01-06", TotalPresent: 20, TotalAbsent: 0, TotalPupils: 20},
		{Date: "2026-01-07", TotalPresent: 15, TotalAbsent: 5, TotalPupils: 20},
	}

	s := ComputeWeekSummary("class-1", "2026-01-05", "2026-01-11", records)

	if s.DaysMarked != 3 {
		t.Errorf("DaysMarked = %d, muốn 3", s.DaysMarked)
	}
	if s.TotalPresent != 53 || s.TotalAbsent != 7 {
		t.Errorf("Tổng tuần = %d/%d, muốn 53/7", s.TotalPresent, s.TotalAbsent)
	}

	wantRate := float64(53) / 60 * 100
	if s.PresentRate < wantRate-0.001 || s.PresentRate > wantRate+0.001 {
		t.Errorf("PresentRate = %f, muốn %f", s.PresentRate, wantRate)
	}
	if len(s.Days) != 3 {
		t.Errorf("Số ngày chi tiết = %d, muốn 3", len(s.Days))
	}
}

func TestComputeWeekSummary_EmptyWeek(t *testing.T) {
	s := ComputeWeekSummary("class-1", "2026-01-05", "2026-01-11", nil)

	if s.DaysMarked != 0 {
		t.Errorf("DaysMarked = %d, muốn 0", s.DaysMarked)
	}
	// Tuần không có dữ liệu thì tỷ lệ là 0, không được chia cho 0
	if s.PresentRate != 0 {
		t.Errorf("PresentRate = %f, muốn 0", s.PresentRate)
	}
	if s.Days == nil || len(s.Days) != 0 {
		t.Error("Days phải là slice rỗng, không phải nil")
	}
	if len(s.PupilRates) != 0 {
		t.Errorf("PupilRates phải rỗng, có %d phần tử", len(s.PupilRates))
	}
}

func TestComputeWeekSummary_PupilRates(t *testing.T) {
	records := []attendancemodels.DailyRecord{
		{
			Date: "2026-01-05",
			StatusByPupil: map[string]string{
				"p1": attendancemodels.StatusPresent,
				"p2": attendancemodels.StatusAbsent,
			},
			TotalPresent: 1, TotalAbsent: 1, TotalPupils: 2,
		},
		{
			Date: "2026-01-06",
			StatusByPupil: map[string]string{
				"p1": attendancemodels.StatusPresent,
				"p2": attendancemodels.StatusPresent,
				"p3": attendancemodels.StatusAbsent,
			},
			TotalPresent: 2, TotalAbsent: 1, TotalPupils: 3,
		},
	}

	s := ComputeWeekSummary("class-1", "2026-01-05", "2026-01-11", records)

	if got := s.PupilRates["p1"]; got != 100 {
		t.Errorf("Tỷ lệ p1 = %f, muốn 100", got)
	}
	if got := s.PupilRates["p2"]; got != 50 {
		t.Errorf("Tỷ lệ p2 = %f, muốn 50", got)
	}
	// p3 chỉ có mặt trong bản ghi ngày 06 nên mẫu số là 1
	if got := s.PupilRates["p3"]; got != 0 {
		t.Errorf("Tỷ lệ p3 = %f, muốn 0", got)
	}
	if len(s.PupilRates) != 3 {
		t.Errorf("Số học sinh có tỷ lệ = %d, muốn 3", len(s.PupilRates))
	}
}

func TestComputeWeekSummary_AllAbsent(t *testing.T) {
	records := []attendancemodels.DailyRecord{
		{Date: "2026-01-05", TotalPresent: 0, TotalAbsent: 10, TotalPupils: 10},
	}
	s := ComputeWeekSummary("class-1", "2026-01-05", "2026-01-11", records)

	if s.PresentRate != 0 {
		t.Errorf("Cả lớp vắng thì PresentRate = 0, có %f", s.PresentRate)
	}
	if s.TotalAbsent != 10 {
		t.Errorf("TotalAbsent = %d, muốn 10", s.TotalAbsent)
	}
}
