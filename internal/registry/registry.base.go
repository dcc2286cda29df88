package registry

import (
	"fmt"
	"sync"
)

// Registry là cấu trúc generic quản lý các đối tượng theo tên, an toàn với goroutine
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry tạo một Registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một đối tượng với tên cho trước.
// Trả về lỗi nếu tên đã tồn tại.
func (r *Registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("đối tượng với tên '%s' đã được đăng ký", name)
	}
	r.items[name] = item
	return nil
}

// Get lấy đối tượng theo tên
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// MustGet lấy đối tượng theo tên, panic nếu không có.
// Chỉ dùng cho các collection bắt buộc đã đăng ký lúc boot.
func (r *Registry[T]) MustGet(name string) T {
	item, exists := r.Get(name)
	if !exists {
		panic(fmt.Sprintf("đối tượng với tên '%s' chưa được đăng ký", name))
	}
	return item
}

// Names trả về danh sách tên đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Count trả về số lượng đối tượng đã đăng ký
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
