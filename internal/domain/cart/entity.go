package cart

import (
	"time"

	"github.com/google/uuid"
)

// 单本图书在购物车中的数量上限
const MaxQuantity = 999

// Cart 购物车(聚合根)
// 一个用户最多一个购物车，Items按BookID唯一
// Subtotal是派生值，每次修改明细后重新计算
type Cart struct {
	ID        uuid.UUID
	UserID    uint
	Subtotal  int64 // 小计(分)
	Items     []*CartBook
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartBook 购物车明细
// (CartID, BookID)是复合主键
type CartBook struct {
	CartID   uuid.UUID
	BookID   uint
	Quantity int
	Price    int64 // 首次加入时的单价快照(分)
}

// NewCart 为用户创建空购物车
func NewCart(userID uint) *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     []*CartBook{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItem 查找明细，不存在返回nil
func (c *Cart) FindItem(bookID uint) *CartBook {
	for _, item := range c.Items {
		if item.BookID == bookID {
			return item
		}
	}
	return nil
}

// AddBook 加入图书
// 已存在则累加数量，否则新增一行；两种情况都使用调用方给出的数量
func (c *Cart) AddBook(bookID uint, quantity int, price int64) (*CartBook, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if item := c.FindItem(bookID); item != nil {
		if item.Quantity+quantity > MaxQuantity {
			return nil, ErrInvalidQuantity
		}
		item.Quantity += quantity
		c.touch()
		return item, nil
	}

	if quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	item := &CartBook{
		CartID:   c.ID,
		BookID:   bookID,
		Quantity: quantity,
		Price:    price,
	}
	c.Items = append(c.Items, item)
	c.touch()
	return item, nil
}

// RemoveBook 整行删除，不做按数量递减
func (c *Cart) RemoveBook(bookID uint) error {
	for i, item := range c.Items {
		if item.BookID == bookID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return nil
		}
	}
	return ErrBookNotInCart
}

// SetQuantity 直接设置数量，0表示删除
func (c *Cart) SetQuantity(bookID uint, quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.RemoveBook(bookID)
	}

	item := c.FindItem(bookID)
	if item == nil {
		return ErrBookNotInCart
	}
	item.Quantity = quantity
	c.touch()
	return nil
}

// Clear 清空购物车(结算后)
func (c *Cart) Clear() {
	c.Items = []*CartBook{}
	c.touch()
}

// IsEmpty 是否没有任何明细
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// IsOwnedBy 是否属于指定用户
func (c *Cart) IsOwnedBy(userID uint) bool {
	return c.UserID == userID
}

// TotalQuantity 图书总件数
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// BookIDs 明细中的图书ID
func (c *Cart) BookIDs() []uint {
	ids := make([]uint, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.BookID
	}
	return ids
}

// Recalculate 重新计算小计
func (c *Cart) Recalculate() {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	c.Subtotal = subtotal
}

func (c *Cart) touch() {
	c.Recalculate()
	c.UpdatedAt = time.Now()
}
