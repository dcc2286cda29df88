package attendanceservice

import (
	"testing"

	attendancemodels "school_records/internal/api/attendance/models"
)

func TestMarkDayUpdate_KeepsFirstMarkedAt(t *testing.T) {
	record := attendancemodels.DailyRecord{
		ClassID:       "class-1",
		Date:          "2026-01-05",
		Term:          "First Term",
		Session:       "2025/2026",
		StatusByPupil: map[string]string{"p1": "present"},
		TotalPresent:  1,
		TotalPupils:   1,
		UpdatedAt:     1700000000000,
	}

	update, err := markDayUpdate(record, 1700000000000)
	if err != nil {
		t.Fatalf("markDayUpdate lỗi: %v", err)
	}

	// markedAt là thời điểm điểm danh lần đầu: ghi lại không được đè
	if _, ok := update.Set["markedAt"]; ok {
		t.Error("markedAt không được nằm trong $set, ghi lại sẽ đè mất thời điểm lần đầu")
	}
	if _, ok := update.SetOnInsert["markedAt"]; !ok {
		t.Error("markedAt phải nằm trong $setOnInsert để ghi khi tạo mới")
	}
	if _, ok := update.Set["_id"]; ok {
		t.Error("_id không được nằm trong $set")
	}

	// Các trường còn lại vẫn bị ghi đè như bình thường
	if update.Set["classId"] != "class-1" || update.Set["date"] != "2026-01-05" {
		t.Errorf("$set thiếu trường định danh: %v", update.Set)
	}
}
