package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 明细随订单一起插入，回填自增ID
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		CartID:    o.CartID.String(),
		Total:     o.Total,
		Status:    int(o.Status),
		Items:     make([]OrderItemModel, 0, len(o.Items)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, item := range o.Items {
		model.Items = append(model.Items, OrderItemModel{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return dbError("create order", err)
	}

	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := r.withItems(ctx).First(&model, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, order.ErrOrderNotFound
	case err != nil:
		return nil, dbError("find order", err)
	}
	return model.toEntity(), nil
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var total int64
	if err := dbFrom(ctx, r.db).Model(&OrderModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, dbError("count orders", err)
	}
	if total == 0 {
		return []*order.Order{}, 0, nil
	}

	var models []OrderModel
	err := r.withItems(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Scopes(paginate(page, pageSize)).
		Find(&models).Error
	if err != nil {
		return nil, 0, dbError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(models))
	for i := range models {
		orders = append(orders, models[i].toEntity())
	}
	return orders, total, nil
}

// withItems 明细按ID排序，保持和下单时一致的顺序
func (r *orderRepository) withItems(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (m *OrderModel) toEntity() *order.Order {
	o := &order.Order{
		ID:        m.ID,
		OrderNo:   m.OrderNo,
		UserID:    m.UserID,
		Total:     m.Total,
		Status:    order.OrderStatus(m.Status),
		Items:     make([]order.OrderItem, 0, len(m.Items)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	// 历史订单可能没有来源购物车
	if id, err := uuid.Parse(m.CartID); err == nil {
		o.CartID = id
	}
	for _, item := range m.Items {
		o.Items = append(o.Items, order.OrderItem{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return o
}
