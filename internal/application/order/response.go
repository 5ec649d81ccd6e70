package order

import (
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

type OrderResponse struct {
	ID        uint                `json:"id"`
	OrderNo   string              `json:"order_no"`
	CartID    string              `json:"cart_id"`
	BookCount int                 `json:"book_count"`
	Total     int64               `json:"total"`      // 分
	TotalYuan string              `json:"total_yuan"` // 元
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"created_at"`
}

type OrderItemResponse struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderResponse{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		CartID:    o.CartID.String(),
		BookCount: o.BookCount(),
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		Status:    o.Status.String(),
		Items:     items,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%d.%02d", priceFen/100, priceFen%100)
}
