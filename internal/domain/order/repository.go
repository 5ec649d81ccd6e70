package order

import "context"

type Repository interface {
	// Create 订单和明细一并写入，结算事务内调用
	Create(ctx context.Context, order *Order) error

	FindByID(ctx context.Context, id uint) (*Order, error)

	// ListByUserID 最新的订单在前
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
