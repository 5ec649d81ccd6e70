package cart

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// 事件routing key，exchange见配置mq.exchange
const (
	EventCartCreated     = "cart.created"
	EventCartBookAdded   = "cart.book_added"
	EventCartBookRemoved = "cart.book_removed"
	EventCartBookUpdated = "cart.book_updated"
)

// EventPublisher 领域事件发布，mq.Publisher满足该接口
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// CartEvent 购物车变更事件
// Quantity是该图书变更后的数量，删除时为0
type CartEvent struct {
	CartID     string    `json:"cart_id"`
	UserID     uint      `json:"user_id"`
	BookID     uint      `json:"book_id,omitempty"`
	Quantity   int       `json:"quantity"`
	Subtotal   int64     `json:"subtotal"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newCartEvent(c *cart.Cart, bookID uint) CartEvent {
	ev := CartEvent{
		CartID:     c.ID.String(),
		UserID:     c.UserID,
		BookID:     bookID,
		Subtotal:   c.Subtotal,
		OccurredAt: time.Now(),
	}
	if item := c.FindItem(bookID); item != nil {
		ev.Quantity = item.Quantity
	}
	return ev
}

// publishEvent 事务提交后调用，失败只记日志
func publishEvent(ctx context.Context, p EventPublisher, routingKey string, ev CartEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, ev); err != nil {
		logger.FromContext(ctx).
			WithError(err).
			WithField("routing_key", routingKey).
			WithField("cart_id", ev.CartID).
			Warn("购物车事件发布失败")
	}
}
