package cart

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// GetCartUseCase 查询当前用户的购物车
type GetCartUseCase struct {
	cartRepo cart.Repository
}

func NewGetCartUseCase(cartRepo cart.Repository) *GetCartUseCase {
	return &GetCartUseCase{cartRepo: cartRepo}
}

// Execute 用户没有购物车时返回ErrCartNotFound
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (resp *CartResponse, err error) {
	ctx, done := startOperation(ctx, "get", "cart.GetCart", attribute.Int64("user_id", int64(userID)))
	defer func() { done(err) }()

	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}
