package cart

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// CreateCartUseCase 为用户创建空购物车
type CreateCartUseCase struct {
	cartRepo  cart.Repository
	publisher EventPublisher
}

func NewCreateCartUseCase(cartRepo cart.Repository, publisher EventPublisher) *CreateCartUseCase {
	return &CreateCartUseCase{
		cartRepo:  cartRepo,
		publisher: publisher,
	}
}

// Execute 用户已有购物车时返回ErrCartAlreadyExists
// 单条INSERT由唯一索引判重，不需要事务
func (uc *CreateCartUseCase) Execute(ctx context.Context, userID uint) (resp *CartResponse, err error) {
	ctx, done := startOperation(ctx, "create", "cart.CreateCart", attribute.Int64("user_id", int64(userID)))
	defer func() { done(err) }()

	c := cart.NewCart(userID)
	if err := uc.cartRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.publisher, EventCartCreated, newCartEvent(c, 0))
	return toCartResponse(c), nil
}
