package author

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var (
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")
	ErrInvalidAuthor  = apperrors.New(apperrors.ErrCodeInvalidParams, "作者信息不合法（姓、名、笔名必填且不超过32字，简介不超过256字）")
)
