package cart

import (
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// CartResponse 购物车视图
type CartResponse struct {
	ID            string             `json:"id"`
	UserID        uint               `json:"user_id"`
	Subtotal      int64              `json:"subtotal"`      // 小计(分)
	SubtotalYuan  string             `json:"subtotal_yuan"` // 小计(元)
	TotalQuantity int                `json:"total_quantity"`
	Items         []CartItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

// CartItemResponse 购物车明细
type CartItemResponse struct {
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`  // 单价(分)
	Amount   int64 `json:"amount"` // 单价×数量(分)
}

func toCartResponse(c *cart.Cart) *CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemResponse{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   item.Price * int64(item.Quantity),
		}
	}

	return &CartResponse{
		ID:            c.ID.String(),
		UserID:        c.UserID,
		Subtotal:      c.Subtotal,
		SubtotalYuan:  formatPrice(c.Subtotal),
		TotalQuantity: c.TotalQuantity(),
		Items:         items,
		CreatedAt:     c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%d.%02d", priceFen/100, priceFen%100)
}
