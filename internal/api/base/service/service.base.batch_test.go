package baseservice

import (
	"errors"
	"testing"

	"school_records/internal/common"
)

func TestChunkBatchSizes(t *testing.T) {
	cases := []struct {
		total int
		max   int
		want  []int
	}{
		{0, 450, nil},
		{-5, 450, nil},
		{10, 0, nil},
		{1, 450, []int{1}},
		{450, 450, []int{450}},
		{451, 450, []int{450, 1}},
		{900, 450, []int{450, 450}},
		{1000, 450, []int{450, 450, 100}},
	}

	for _, c := range cases {
		got := ChunkBatchSizes(c.total, c.max)
		if len(got) != len(c.want) {
			t.Errorf("ChunkBatchSizes(%d, %d) có %d batch, muốn %d", c.total, c.max, len(got), len(c.want))
			continue
		}
		sum := 0
		for i, n := range got {
			if n != c.want[i] {
				t.Errorf("ChunkBatchSizes(%d, %d)[%d] = %d, muốn %d", c.total, c.max, i, n, c.want[i])
			}
			if n > c.max {
				t.Errorf("Batch %d vượt giới hạn: %d > %d", i, n, c.max)
			}
			sum += n
		}
		if c.total > 0 && c.max > 0 && sum != c.total {
			t.Errorf("Tổng các batch = %d, muốn %d", sum, c.total)
		}
	}
}

func TestNormalizeTxnError_TypedNil(t *testing.T) {
	// Closure trả *common.Error nil qua kết quả error: interface khác nil
	// nhưng phải được chuẩn hóa về nil thật, nếu không driver sẽ hủy
	// transaction đã thành công
	var cerr *common.Error
	var asErr error = cerr
	if asErr == nil {
		t.Fatal("Tiền đề sai: *common.Error nil gói trong interface phải khác nil")
	}

	if got := normalizeTxnError(asErr); got != nil {
		t.Errorf("normalizeTxnError(typed nil) = %v, muốn nil", got)
	}
}

func TestNormalizeTxnError_Nil(t *testing.T) {
	if got := normalizeTxnError(nil); got != nil {
		t.Errorf("normalizeTxnError(nil) = %v, muốn nil", got)
	}
}

func TestNormalizeTxnError_KeepsRealError(t *testing.T) {
	appErr := common.ErrConflict("Xung đột ghi dữ liệu", nil)
	got := normalizeTxnError(appErr)
	if got == nil {
		t.Fatal("Lỗi thật không được nuốt mất")
	}
	var back *common.Error
	if !errors.As(got, &back) || back.Code != common.ErrCodeBusinessConflict {
		t.Errorf("Mã lỗi sau chuẩn hóa = %v, muốn %s", got, common.ErrCodeBusinessConflict)
	}

	if got := normalizeTxnError(errors.New("socket closed")); got == nil {
		t.Error("Lỗi driver trần phải được giữ lại sau chuẩn hóa")
	}
}
