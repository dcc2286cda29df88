package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	if err := r.Register("a", "giá trị a"); err != nil {
		t.Fatalf("Register thất bại: %v", err)
	}

	v, ok := r.Get("a")
	if !ok {
		t.Fatal("Không tìm thấy đối tượng vừa đăng ký")
	}
	if v != "giá trị a" {
		t.Errorf("Giá trị không khớp: có %q", v)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry[int]()

	if err := r.Register("x", 1); err != nil {
		t.Fatalf("Register lần đầu thất bại: %v", err)
	}
	if err := r.Register("x", 2); err == nil {
		t.Error("Đăng ký trùng tên phải trả về lỗi")
	}

	// Giá trị cũ phải được giữ nguyên
	v, _ := r.Get("x")
	if v != 1 {
		t.Errorf("Giá trị bị ghi đè: có %d, muốn 1", v)
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[string]()
	_, ok := r.Get("không tồn tại")
	if ok {
		t.Error("Get với tên chưa đăng ký phải trả về false")
	}
}

func TestRegistry_MustGetPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet với tên chưa đăng ký phải panic")
		}
	}()
	r := NewRegistry[string]()
	r.MustGet("không tồn tại")
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item-%d", n)
			if err := r.Register(name, n); err != nil {
				t.Errorf("Register song song thất bại: %v", err)
			}
			if _, ok := r.Get(name); !ok {
				t.Errorf("Không đọc lại được %s", name)
			}
		}(i)
	}
	wg.Wait()

	if r.Count() != 50 {
		t.Errorf("Số lượng không đúng: có %d, muốn 50", r.Count())
	}
}
