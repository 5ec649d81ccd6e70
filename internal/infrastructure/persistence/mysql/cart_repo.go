package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// cartRepository 购物车仓储(MySQL)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 插入空购物车
// 不做先查后插，一人一车完全交给user_id唯一索引
func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	model := &CartModel{
		ID:       c.ID.String(),
		UserID:   c.UserID,
		Subtotal: c.Subtotal,
	}

	result := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return cart.ErrCartAlreadyExists
		}
		return dbError("create cart", result.Error)
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartPersist
	}

	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	var model CartModel
	err := dbFrom(ctx, r.db).
		Preload("Items", orderItems).
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		return nil, r.notFound(err, "find cart by user")
	}
	return toCartEntity(&model), nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var model CartModel
	err := dbFrom(ctx, r.db).
		Preload("Items", orderItems).
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		return nil, r.notFound(err, "find cart")
	}
	return toCartEntity(&model), nil
}

// LockByID 锁住carts行后再读明细
// 明细查询发生在拿到行锁之后，读到的是上一个持锁事务提交后的数据
func (r *cartRepository) LockByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	db := dbFrom(ctx, r.db)

	var model CartModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		return nil, r.notFound(err, "lock cart")
	}

	if err := orderItems(db.Where("cart_id = ?", model.ID)).Find(&model.Items).Error; err != nil {
		return nil, dbError("load cart items", err)
	}
	return toCartEntity(&model), nil
}

// Save 整体写回聚合
//  1. UPDATE carts，影响0行视为写入失败
//  2. 删除聚合里已不存在的明细
//  3. INSERT ... ON DUPLICATE KEY UPDATE 写入剩余明细
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	db := dbFrom(ctx, r.db)
	cartID := c.ID.String()

	result := db.Model(&CartModel{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"subtotal":   c.Subtotal,
			"updated_at": c.UpdatedAt,
		})
	if result.Error != nil {
		return dbError("update cart", result.Error)
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartPersist
	}

	del := db.Where("cart_id = ?", cartID)
	if bookIDs := c.BookIDs(); len(bookIDs) > 0 {
		del = del.Where("book_id NOT IN ?", bookIDs)
	}
	if err := del.Delete(&CartBookModel{}).Error; err != nil {
		return dbError("delete cart items", err)
	}

	if c.IsEmpty() {
		return nil
	}

	items := make([]CartBookModel, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartBookModel{
			CartID:   cartID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "book_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "price", "updated_at"}),
		}).
		Create(&items).Error
	if err != nil {
		return dbError("upsert cart items", err)
	}
	return nil
}

func (r *cartRepository) notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.ErrCartNotFound
	}
	return dbError(op, err)
}

// orderItems 明细按加入顺序返回
func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, book_id ASC")
}

func toCartEntity(model *CartModel) *cart.Cart {
	id, _ := uuid.Parse(model.ID)

	items := make([]*cart.CartBook, len(model.Items))
	for i, item := range model.Items {
		items[i] = &cart.CartBook{
			CartID:   id,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &cart.Cart{
		ID:        id,
		UserID:    model.UserID,
		Subtotal:  model.Subtotal,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
