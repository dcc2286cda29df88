package attendanceservice

import (
	"context"
	"time"

	attendancedto "school_records/internal/api/attendance/dto"
	attendancemodels "school_records/internal/api/attendance/models"
	"school_records/internal/common"
	"school_records/internal/global"
)

// WeekSummary là thống kê điểm danh của một lớp trong một tuần
type WeekSummary struct {
	ClassID      string       `json:"classId"`
	WeekStart    string       `json:"weekStart"`
	WeekEnd      string       `json:"weekEnd"`
	DaysMarked   int          `json:"daysMarked"`   // Số ngày trong tuần có điểm danh
	TotalPresent int          `json:"totalPresent"` // Tổng lượt có mặt cả tuần
	TotalAbsent  int          `json:"totalAbsent"`  // Tổng lượt vắng cả tuần
	PresentRate  float64      `json:"presentRate"`  // Tỷ lệ có mặt (%), 0 khi không có dữ liệu
	Days         []DaySummary `json:"days"`
	// Tỷ lệ có mặt (%) của từng học sinh trong các ngày đã điểm danh
	PupilRates map[string]float64 `json:"pupilRates"`
}

// DaySummary là thống kê một ngày trong tuần
type DaySummary struct {
	Date         string `json:"date"`
	TotalPresent int    `json:"totalPresent"`
	TotalAbsent  int    `json:"totalAbsent"`
	TotalPupils  int    `json:"totalPupils"`
}

// ComputeWeekSummary dựng thống kê tuần từ các bản ghi ngày đã lọc sẵn.
// Hàm thuần, không chạm cơ sở dữ liệu.
func ComputeWeekSummary(classID string, weekStart string, weekEnd string, records []attendancemodels.DailyRecord) WeekSummary {
	summary := WeekSummary{
		ClassID:   classID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      make([]DaySummary, 0, len(records)),
	}

	presentByPupil := map[string]int{}
	markedByPupil := map[string]int{}

	for _, rec := range records {
		summary.DaysMarked++
		summary.TotalPresent += rec.TotalPresent
		summary.TotalAbsent += rec.TotalAbsent
		summary.Days = append(summary.Days, DaySummary{
			Date:         rec.Date,
			TotalPresent: rec.TotalPresent,
			TotalAbsent:  rec.TotalAbsent,
			TotalPupils:  rec.TotalPupils,
		})
		for pupilID, status := range rec.StatusByPupil {
			markedByPupil[pupilID]++
			if status == attendancemodels.StatusPresent {
				presentByPupil[pupilID]++
			}
		}
	}

	// Tỷ lệ từng học sinh chỉ tính trên những ngày học sinh đó có trong bản ghi
	summary.PupilRates = make(map[string]float64, len(markedByPupil))
	for pupilID, marked := range markedByPupil {
		summary.PupilRates[pupilID] = float64(presentByPupil[pupilID]) / float64(marked) * 100
	}

	// Tránh chia cho 0 khi tuần không có lượt điểm danh nào
	totalMarks := summary.TotalPresent + summary.TotalAbsent
	if totalMarks > 0 {
		summary.PresentRate = float64(summary.TotalPresent) / float64(totalMarks) * 100
	}

	return summary
}

// WeeklySummary thống kê điểm danh của lớp trong tuần bắt đầu từ weekStart.
// Tuần tính 7 ngày liên tiếp kể từ weekStart.
func (s *AttendanceService) WeeklySummary(ctx context.Context, query attendancedto.WeeklySummaryQuery) (WeekSummary, *common.Error) {
	if err := global.Validator.Struct(query); err != nil {
		return WeekSummary{}, common.ErrInvalidInput("Tham số thống kê không hợp lệ", map[string]interface{}{"error": err.Error()})
	}

	start, err := time.Parse("2006-01-02", query.WeekStart)
	if err != nil {
		return WeekSummary{}, common.ErrInvalidFormat("Ngày đầu tuần không hợp lệ", map[string]interface{}{"weekStart": query.WeekStart})
	}
	weekEnd := start.AddDate(0, 0, 6).Format("2006-01-02")

	grid, cerr := s.FetchGrid(ctx, attendancedto.GridQuery{
		ClassID:  query.ClassID,
		Term:     query.Term,
		Session:  query.Session,
		FromDate: query.WeekStart,
		ToDate:   weekEnd,
	})
	if cerr != nil {
		return WeekSummary{}, cerr
	}

	return ComputeWeekSummary(query.ClassID, query.WeekStart, weekEnd, grid.Days), nil
}
