package book

import (
	"context"
)

// Repository 图书仓储接口
// 购物车只依赖FindByID，作为外部的图书查询能力
type Repository interface {
	Create(ctx context.Context, book *Book) error

	// FindByID 不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	Update(ctx context.Context, book *Book) error

	// Delete 软删除
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID SELECT FOR UPDATE，必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 原子增减库存，delta为负表示扣减
	// 扣减后为负时返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 从1开始
	PageSize int
	Keyword  string // 匹配书名、作者、出版社
	SortBy   string // price_asc | price_desc | created_at_desc
}
