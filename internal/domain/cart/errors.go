package cart

import (
	"fmt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 购物车领域错误
var (
	ErrCartNotFound      = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")
	ErrCartAlreadyExists = apperrors.New(apperrors.ErrCodeCartExists, "用户已有购物车")
	ErrBookNotInCart     = apperrors.New(apperrors.ErrCodeCartBookAbsent, "购物车中没有该图书")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidQuantity, "数量必须在1-999之间")
	ErrCartForbidden     = apperrors.New(apperrors.ErrCodeCartForbidden, "无权操作该购物车")
	ErrCartEmpty         = apperrors.New(apperrors.ErrCodeCartEmpty, "购物车为空")

	// ErrCartPersist 写入影响行数为0，购物车在读写之间被删除
	ErrCartPersist = apperrors.New(apperrors.ErrCodeCartPersist, "购物车保存失败，请刷新后重试")
)

// BookDelisted 结算时发现购物车里的图书已下架，提示里带上图书ID
func BookDelisted(bookID uint) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeCartBookDelisted,
		fmt.Sprintf("图书(ID %d)已下架，请先从购物车移除", bookID))
}
