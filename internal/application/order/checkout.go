package order

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// CheckoutUseCase 购物车结算为订单
type CheckoutUseCase struct {
	cartRepo  cart.Repository
	bookRepo  book.Repository
	orderRepo order.Repository
	txManager *mysql.TxManager
}

func NewCheckoutUseCase(
	cartRepo cart.Repository,
	bookRepo book.Repository,
	orderRepo order.Repository,
	txManager *mysql.TxManager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

// Execute 流程(同一事务)：
//  1. 锁定用户购物车，空购物车返回ErrCartEmpty
//  2. 按图书ID升序逐本加锁并检查库存，固定加锁顺序避免死锁
//     图书已下架返回cart.BookDelisted，购物车保持不变
//  3. 以当前价格生成订单
//  4. 扣减库存
//  5. 清空购物车
func (uc *CheckoutUseCase) Execute(ctx context.Context, userID uint) (resp *OrderResponse, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "cart.Checkout")
	span.SetAttributes(attribute.Int64("user_id", int64(userID)))
	defer func() {
		code := 0
		if err != nil {
			code = apperrors.GetAppError(err).Code
		}
		metrics.ObserveCartOperation("checkout", start, code)
		tracing.EndSpan(span, err)
	}()

	var result *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		owned, err := uc.cartRepo.FindByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		c, err := uc.cartRepo.LockByID(txCtx, owned.ID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return cart.ErrCartEmpty
		}

		bookIDs := c.BookIDs()
		slices.Sort(bookIDs)

		books := make(map[uint]*book.Book, len(bookIDs))
		for _, id := range bookIDs {
			b, err := uc.bookRepo.LockByID(txCtx, id)
			if errors.Is(err, book.ErrBookNotFound) {
				return cart.BookDelisted(id)
			}
			if err != nil {
				return err
			}
			if err := b.CheckStock(c.FindItem(id).Quantity); err != nil {
				return apperrors.WithCause(book.ErrInsufficientStock,
					fmt.Errorf("book %d stock %d, want %d: %w", b.ID, b.Stock, c.FindItem(id).Quantity, err))
			}
			books[id] = b
		}

		items := make([]order.OrderItem, len(c.Items))
		for i, line := range c.Items {
			b := books[line.BookID]
			items[i] = order.OrderItem{
				BookID:   b.ID,
				Title:    b.Title,
				Quantity: line.Quantity,
				Price:    b.Price,
			}
		}

		o, err := order.NewOrder(userID, c.ID, items)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		for _, id := range bookIDs {
			if err := uc.bookRepo.UpdateStock(txCtx, id, -c.FindItem(id).Quantity); err != nil {
				return err
			}
		}

		c.Clear()
		if err := uc.cartRepo.Save(txCtx, c); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	logger.FromContext(ctx).
		WithField("order_no", result.OrderNo).
		WithField("total", result.Total).
		Info("订单已创建")

	return toOrderResponse(result), nil
}
