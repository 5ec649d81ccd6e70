package cart

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
)

// AddBookUseCase 加入图书
type AddBookUseCase struct {
	cartRepo  cart.Repository
	bookRepo  book.Repository
	txManager *mysql.TxManager
	publisher EventPublisher
}

func NewAddBookUseCase(
	cartRepo cart.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
	publisher EventPublisher,
) *AddBookUseCase {
	return &AddBookUseCase{
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// AddBookRequest CartID为空时使用当前用户的购物车，Quantity为0时按1处理
type AddBookRequest struct {
	UserID   uint
	CartID   uuid.UUID
	BookID   uint
	Quantity int
}

// Execute 流程(同一事务)：
//  1. 锁定购物车行
//  2. 查询图书，单价取当前价格
//  3. 已有该图书则累加数量，否则新增一行
//  4. 重算小计并写回
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (resp *CartResponse, err error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, done := startOperation(ctx, "add_book", "cart.AddBookToCart",
		attribute.Int64("book_id", int64(req.BookID)),
		attribute.Int("quantity", req.Quantity),
	)
	defer func() { done(err) }()

	if req.Quantity < 0 || req.Quantity > cart.MaxQuantity {
		return nil, cart.ErrInvalidQuantity
	}

	var result *cart.Cart
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		c, err := lockOwnedCart(txCtx, uc.cartRepo, req.UserID, req.CartID)
		if err != nil {
			return err
		}

		b, err := uc.bookRepo.FindByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		if _, err := c.AddBook(b.ID, req.Quantity, b.Price); err != nil {
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

	publishEvent(ctx, uc.publisher, EventCartBookAdded, newCartEvent(result, req.BookID))
	return toCartResponse(result), nil
}
