package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCause(t *testing.T) {
	base := New(ErrCodeCartNotFound, "购物车不存在")
	cause := errors.New("record not found")

	err := WithCause(base, cause)

	assert.True(t, errors.Is(err, base), "复制后的错误应该与原错误匹配")
	assert.True(t, errors.Is(err, cause), "应该能解包到内部原因")
	assert.Nil(t, base.Err, "预定义错误不能被修改")

	wrapped := fmt.Errorf("add book: %w", err)
	assert.Equal(t, ErrCodeCartNotFound, GetAppError(wrapped).Code)
}

func TestIsDifferentCode(t *testing.T) {
	a := New(ErrCodeCartNotFound, "购物车不存在")
	b := New(ErrCodeBookNotFound, "图书不存在")
	assert.False(t, errors.Is(a, b))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		0:                        http.StatusOK,
		ErrCodeInternal:          http.StatusInternalServerError,
		ErrCodeDatabaseError:     http.StatusInternalServerError,
		ErrCodeUnauthorized:      http.StatusUnauthorized,
		ErrCodeCartForbidden:     http.StatusForbidden,
		ErrCodeCartNotFound:      http.StatusNotFound,
		ErrCodeCartExists:        http.StatusBadRequest,
		ErrCodeInvalidQuantity:   http.StatusBadRequest,
		ErrCodeInsufficientStock: http.StatusBadRequest,
		ErrCodeCartBookDelisted:  http.StatusBadRequest,
		ErrCodeCartPersist:       http.StatusBadRequest,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code=%d", code)
	}
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.EqualError(t, appErr.Unwrap(), "boom")
}
