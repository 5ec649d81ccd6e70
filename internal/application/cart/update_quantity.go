package cart

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
)

// UpdateQuantityUseCase 修改购物车中某本图书的数量
type UpdateQuantityUseCase struct {
	cartRepo  cart.Repository
	txManager *mysql.TxManager
	publisher EventPublisher
}

func NewUpdateQuantityUseCase(
	cartRepo cart.Repository,
	txManager *mysql.TxManager,
	publisher EventPublisher,
) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{
		cartRepo:  cartRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// UpdateQuantityRequest Quantity为0时删除该行
type UpdateQuantityRequest struct {
	UserID   uint
	CartID   uuid.UUID
	BookID   uint
	Quantity int
}

func (uc *UpdateQuantityUseCase) Execute(ctx context.Context, req UpdateQuantityRequest) (resp *CartResponse, err error) {
	ctx, done := startOperation(ctx, "update_quantity", "cart.UpdateBookQuantity",
		attribute.Int64("book_id", int64(req.BookID)),
		attribute.Int("quantity", req.Quantity),
	)
	defer func() { done(err) }()

	var result *cart.Cart
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		c, err := lockOwnedCart(txCtx, uc.cartRepo, req.UserID, req.CartID)
		if err != nil {
			return err
		}

		if err := c.SetQuantity(req.BookID, req.Quantity); err != nil {
			return err
		}

		if err := uc.cartRepo.Save(txCtx, c); err != nil {
			return err
		}

		result = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	routingKey := EventCartBookUpdated
	if req.Quantity == 0 {
		routingKey = EventCartBookRemoved
	}
	publishEvent(ctx, uc.publisher, routingKey, newCartEvent(result, req.BookID))
	return toCartResponse(result), nil
}
