package attendanceservice

import (
	attendancemodels "school_records/internal/api/attendance/models"
	rostermodels "school_records/internal/api/roster/models"
)

// DailyCounts là các tổng đếm suy ra từ trạng thái điểm danh một ngày
type DailyCounts struct {
	TotalPresent int
	TotalAbsent  int
	TotalPupils  int
	BoysPresent  int
	BoysAbsent   int
	GirlsPresent int
	GirlsAbsent  int
}

// ComputeDailyCounts tính tổng đếm theo trạng thái và giới tính.
// genderByPupil tra giới tính theo mã học sinh; học sinh không có trong
// bảng tra vẫn được đếm vào tổng chung, chỉ không vào tổng theo giới.
func ComputeDailyCounts(statusByPupil map[string]string, genderByPupil map[string]string) DailyCounts {
	var c DailyCounts
	for pupilID, status := range statusByPupil {
		c.TotalPupils++
		gender := genderByPupil[pupilID]

		switch status {
		case attendancemodels.StatusPresent:
			c.TotalPresent++
			switch gender {
			case rostermodels.GenderBoy:
				c.BoysPresent++
			case rostermodels.GenderGirl:
				c.GirlsPresent++
			}
		case attendancemodels.StatusAbsent:
			c.TotalAbsent++
			switch gender {
			case rostermodels.GenderBoy:
				c.BoysAbsent++
			case rostermodels.GenderGirl:
				c.GirlsAbsent++
			}
		}
	}
	return c
}

// CumulativeTally là chuyên cần tích lũy đếm được của một học sinh
type CumulativeTally struct {
	TimesOpened  int
	TimesPresent int
	TimesAbsent  int
}

// TallyCumulative duyệt toàn bộ bản ghi ngày và cộng dồn theo học sinh.
// Kết quả gồm mọi học sinh trong rosterIDs cộng với học sinh từng xuất
// hiện trong bản ghi, khởi đầu từ 0: học sinh chưa từng được điểm danh
// vẫn có bản ghi toàn 0, không bị bỏ qua. Mỗi ngày lớp có điểm danh tính
// là một ngày mở lớp cho tất cả học sinh trong kết quả, kể cả ngày học
// sinh đó không có trong bản ghi.
func TallyCumulative(records []attendancemodels.DailyRecord, rosterIDs []string) map[string]CumulativeTally {
	tallies := make(map[string]CumulativeTally)

	for _, pupilID := range rosterIDs {
		tallies[pupilID] = CumulativeTally{}
	}
	for _, rec := range records {
		for pupilID := range rec.StatusByPupil {
			if _, ok := tallies[pupilID]; !ok {
				tallies[pupilID] = CumulativeTally{}
			}
		}
	}

	for _, rec := range records {
		for pupilID, tally := range tallies {
			tally.TimesOpened++
			switch rec.StatusByPupil[pupilID] {
			case attendancemodels.StatusPresent:
				tally.TimesPresent++
			case attendancemodels.StatusAbsent:
				tally.TimesAbsent++
			}
			tallies[pupilID] = tally
		}
	}

	// Không cho giá trị âm lọt ra ngoài dù dữ liệu nguồn bất thường
	for pupilID, tally := range tallies {
		if tally.TimesOpened < 0 {
			tally.TimesOpened = 0
		}
		if tally.TimesPresent < 0 {
			tally.TimesPresent = 0
		}
		if tally.TimesAbsent < 0 {
			tally.TimesAbsent = 0
		}
		tallies[pupilID] = tally
	}

	return tallies
}
