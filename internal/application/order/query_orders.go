package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// GetOrderUseCase 订单详情，只能查看自己的订单
type GetOrderUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID, userID uint) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderForbidden
	}
	return toOrderResponse(o), nil
}

// ListOrdersUseCase 我的订单
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

type ListOrdersResponse struct {
	List     []*OrderResponse
	Total    int64
	Page     int
	PageSize int
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListOrdersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = toOrderResponse(o)
	}
	return &ListOrdersResponse{List: list, Total: total, Page: page, PageSize: pageSize}, nil
}
