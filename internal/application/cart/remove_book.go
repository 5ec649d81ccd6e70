package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
)

// RemoveBookUseCase 从购物车移除图书(整行删除)
type RemoveBookUseCase struct {
	cartRepo  cart.Repository
	bookRepo  book.Repository
	txManager *mysql.TxManager
	publisher EventPublisher
}

func NewRemoveBookUseCase(
	cartRepo cart.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
	publisher EventPublisher,
) *RemoveBookUseCase {
	return &RemoveBookUseCase{
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

type RemoveBookRequest struct {
	UserID uint
	CartID uuid.UUID
	BookID uint
}

// Execute 图书不存在且不在购物车里返回ErrBookNotFound，图书不在购物车里返回ErrBookNotInCart
func (uc *RemoveBookUseCase) Execute(ctx context.Context, req RemoveBookRequest) (resp *CartResponse, err error) {
	ctx, done := startOperation(ctx, "remove_book", "cart.RemoveBookFromCart",
		attribute.Int64("book_id", int64(req.BookID)),
	)
	defer func() { done(err) }()

	var result *cart.Cart
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		c, err := lockOwnedCart(txCtx, uc.cartRepo, req.UserID, req.CartID)
		if err != nil {
			return err
		}

		// 已下架的图书只要还在购物车里就允许移除
		if _, err := uc.bookRepo.FindByID(txCtx, req.BookID); err != nil {
			if !errors.Is(err, book.ErrBookNotFound) || c.FindItem(req.BookID) == nil {
				return err
			}
		}

		if err := c.RemoveBook(req.BookID); err != nil {
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

	publishEvent(ctx, uc.publisher, EventCartBookRemoved, newCartEvent(result, req.BookID))
	return toCartResponse(result), nil
}
