package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)

	assert.NotNil(t, err)
	assert.Equal(t, ErrCodeDatabaseNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestConvertMongoError_PassThrough(t *testing.T) {
	orig := ErrConflict("xung đột", nil)
	err := ConvertMongoError(orig)

	// Lỗi đã chuẩn hóa phải được giữ nguyên, không bọc lại
	assert.Equal(t, orig, err)
}

func TestConvertMongoError_Generic(t *testing.T) {
	err := ConvertMongoError(errors.New("lỗi bất kỳ"))

	assert.Equal(t, ErrCodeDatabase, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestErrorHelpers(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidInput("x", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, ErrNotFound("", nil).StatusCode)
	assert.Equal(t, http.StatusConflict, ErrConflict("x", nil).StatusCode)
	assert.Equal(t, http.StatusConflict, ErrLocked("x", nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, ErrPermission("", nil).StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, ErrUnavailable("", nil).StatusCode)

	// Message mặc định khi không truyền
	assert.NotEmpty(t, ErrNotFound("", nil).Message)
	assert.NotEmpty(t, ErrPermission("", nil).Message)
}

func TestOpResultConstructors(t *testing.T) {
	ok := OkResultCount("xong", 5)
	assert.True(t, ok.Success)
	assert.Equal(t, 5, ok.Count)

	fail := FailResult("chưa có bản nộp")
	assert.False(t, fail.Success)
	assert.False(t, fail.Retry)

	retry := RetryResult("xung đột")
	assert.False(t, retry.Success)
	assert.True(t, retry.Retry)
}
