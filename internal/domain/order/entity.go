package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus 订单状态，结算只产生待支付订单，支付流程不在本服务
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusPaid      OrderStatus = 2
	OrderStatusShipped   OrderStatus = 3
	OrderStatusCompleted OrderStatus = 4
	OrderStatusCancelled OrderStatus = 5
)

var statusNames = map[OrderStatus]string{
	OrderStatusPending:   "待支付",
	OrderStatusPaid:      "已支付",
	OrderStatusShipped:   "已发货",
	OrderStatusCompleted: "已完成",
	OrderStatusCancelled: "已取消",
}

func (s OrderStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "未知状态"
}

// Order 由购物车结算生成的订单
// CartID记录来源购物车，Total恒等于各明细Amount之和
type Order struct {
	ID        uint
	OrderNo   string
	UserID    uint
	CartID    uuid.UUID
	Total     int64 // 分
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem 书名和单价是结算时刻的快照
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Title    string
	Quantity int
	Price    int64
}

// Amount 明细金额(分)
func (i OrderItem) Amount() int64 {
	return i.Price * int64(i.Quantity)
}

// NewOrder 用购物车明细生成待支付订单
func NewOrder(userID uint, cartID uuid.UUID, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrInvalidOrderItems
	}

	var total int64
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		total += item.Amount()
	}

	now := time.Now()
	return &Order{
		OrderNo:   GenerateOrderNo(),
		UserID:    userID,
		CartID:    cartID,
		Total:     total,
		Status:    OrderStatusPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// BookCount 订单内图书总册数
func (o *Order) BookCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
