package book

import (
	"time"
)

// 价格范围(分)：1分 - 9999.99元
const (
	MinPrice = 1
	MaxPrice = 999999
)

// Book 可加入购物车的图书
// Price是当前售价(分)，购物车行里另存加入时的单价
type Book struct {
	ID          uint
	ISBN        string // 只含数字
	Title       string
	Author      string
	Publisher   string
	Price       int64
	Stock       int
	CoverURL    string
	Description string
	PublisherID uint // 上架的用户
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft 上架时提交的图书信息
type Draft struct {
	ISBN        string
	Title       string
	Author      string
	Publisher   string
	Price       int64
	Stock       int
	CoverURL    string
	Description string
	PublisherID uint
}

// NewBook 不做校验，校验在Service.PublishBook里
func NewBook(d Draft) *Book {
	now := time.Now()
	return &Book{
		ISBN:        NormalizeISBN(d.ISBN),
		Title:       d.Title,
		Author:      d.Author,
		Publisher:   d.Publisher,
		Price:       d.Price,
		Stock:       d.Stock,
		CoverURL:    d.CoverURL,
		Description: d.Description,
		PublisherID: d.PublisherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice < MinPrice || newPrice > MaxPrice {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// CheckStock 结算前确认库存够quantity本
func (b *Book) CheckStock(quantity int) error {
	switch {
	case quantity <= 0:
		return ErrInvalidQuantity
	case b.Stock < quantity:
		return ErrInsufficientStock
	}
	return nil
}

func (b *Book) IsOwnedBy(userID uint) bool {
	return b.PublisherID == userID
}
