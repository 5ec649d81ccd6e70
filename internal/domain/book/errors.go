package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误
var (
	ErrBookNotFound      = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")
	ErrISBNDuplicate     = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")
	ErrInvalidPrice      = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须在0.01-9999.99元之间")
	ErrInvalidStock      = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidQuantity, "数量必须大于0")
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")
	ErrInvalidISBN       = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")
	ErrNotPublisher      = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此图书")
)
