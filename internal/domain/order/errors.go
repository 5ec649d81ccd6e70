package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var (
	ErrOrderNotFound     = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")
	ErrInvalidOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidQuantity, "购买数量必须大于0")
	ErrOrderForbidden    = apperrors.New(apperrors.ErrCodeForbidden, "无权查看该订单")
)
