package resultsservice

import (
	"testing"

	resultsmodels "school_records/internal/api/results/models"
	"school_records/internal/common"
)

func draft(pupilID, subject string, score float64) resultsmodels.ResultDraft {
	return resultsmodels.ResultDraft{
		ClassID: "class-1",
		PupilID: pupilID,
		Subject: subject,
		Term:    "First Term",
		Session: "2025/2026",
		Score:   score,
	}
}

func TestCountDistinctPupilsWithScores(t *testing.T) {
	drafts := []resultsmodels.ResultDraft{
		draft("p1", "Math", 75),
		draft("p1", "English", 80), // p1 đếm một lần dù có hai môn
		draft("p2", "Math", 0),     // điểm 0 không tính
		draft("p3", "Math", 45),
	}

	got := CountDistinctPupilsWithScores(drafts)
	if got != 2 {
		t.Errorf("CountDistinctPupilsWithScores = %d, muốn 2", got)
	}
}

func TestCountDistinctPupilsWithScores_Empty(t *testing.T) {
	if got := CountDistinctPupilsWithScores(nil); got != 0 {
		t.Errorf("Danh sách rỗng phải cho 0, có %d", got)
	}

	allZero := []resultsmodels.ResultDraft{
		draft("p1", "Math", 0),
		draft("p2", "Math", 0),
	}
	if got := CountDistinctPupilsWithScores(allZero); got != 0 {
		t.Errorf("Toàn điểm 0 phải cho 0, có %d", got)
	}
}

func TestSubmitBlockReason(t *testing.T) {
	// Đang chờ duyệt: không được nộp chồng
	if msg := submitBlockReason(resultsmodels.SubmissionPending); msg == "" {
		t.Error("Bản nộp đang chờ duyệt phải chặn nộp lại")
	}
	// Đã duyệt là trạng thái kết thúc: không được nộp lại để tránh
	// bản nộp quay về pending trong khi khóa vẫn đang giữ
	if msg := submitBlockReason(resultsmodels.SubmissionApproved); msg == "" {
		t.Error("Bản nộp đã duyệt phải chặn nộp lại")
	}
	// Bị từ chối thì nộp lại được
	if msg := submitBlockReason(resultsmodels.SubmissionRejected); msg != "" {
		t.Errorf("Bản nộp bị từ chối phải được nộp lại, bị chặn: %q", msg)
	}
}

func TestLookupMeansNoSubmission(t *testing.T) {
	// Chưa tồn tại và thiếu quyền đọc đều coi là chưa nộp
	if !lookupMeansNoSubmission(common.ErrNotFound("", nil)) {
		t.Error("NotFound phải được coi là chưa nộp")
	}
	if !lookupMeansNoSubmission(common.ErrPermission("", nil)) {
		t.Error("Thiếu quyền đọc phải được coi là chưa nộp")
	}

	// Lỗi khác và không lỗi thì không
	if lookupMeansNoSubmission(common.ErrUnavailable("", nil)) {
		t.Error("Lỗi kết nối không được coi là chưa nộp")
	}
	if lookupMeansNoSubmission(nil) {
		t.Error("Không có lỗi thì không phải trường hợp chưa nộp")
	}
}
