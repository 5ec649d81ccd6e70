package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"资源不存在", apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在"), http.StatusNotFound, apperrors.ErrCodeCartNotFound},
		{"业务冲突", apperrors.New(apperrors.ErrCodeCartExists, "已有购物车"), http.StatusBadRequest, apperrors.ErrCodeCartExists},
		{"参数错误", apperrors.ErrInvalidParams, http.StatusBadRequest, apperrors.ErrCodeInvalidParams},
		{"无权限", apperrors.ErrForbidden, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"未登录", apperrors.ErrUnauthorized, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"普通错误按内部错误处理", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, decode(t, w).Code)
}

func TestNewPageData(t *testing.T) {
	assert.Equal(t, 3, NewPageData(nil, 21, 1, 10).TotalPages)
	assert.Equal(t, 2, NewPageData(nil, 20, 1, 10).TotalPages)
	assert.Equal(t, 0, NewPageData(nil, 0, 1, 10).TotalPages)
}
