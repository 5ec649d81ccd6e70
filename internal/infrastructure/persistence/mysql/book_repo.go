package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// bookOrders 列表排序，未知取值按上架时间倒序
var bookOrders = map[string]string{
	"price_asc":       "price ASC, id ASC",
	"price_desc":      "price DESC, id ASC",
	"created_at_desc": "created_at DESC, id DESC",
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := newBookModel(b)
	err := dbFrom(ctx, r.db).Create(model).Error
	switch {
	case isDuplicateError(err):
		return book.ErrISBNDuplicate
	case err != nil:
		return dbError("create book", err)
	}

	b.ID, b.CreatedAt, b.UpdatedAt = model.ID, model.CreatedAt, model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.first(dbFrom(ctx, r.db).Where("id = ?", id), "find book")
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.first(dbFrom(ctx, r.db).Where("isbn = ?", isbn), "find book by isbn")
}

// LockByID 持有行锁直到事务结束，sqlite忽略FOR UPDATE
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	db := dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(db.Where("id = ?", id), "lock book")
}

func (r *bookRepository) first(db *gorm.DB, op string) (*book.Book, error) {
	var model BookModel
	if err := db.First(&model).Error; err != nil {
		return nil, bookNotFound(err, op)
	}
	return model.toEntity(), nil
}

// Update 只写可变字段，ISBN和上架者不随更新改变
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := dbFrom(ctx, r.db).Model(&BookModel{ID: b.ID}).
		Select("title", "author", "publisher", "price", "stock", "cover_url", "description", "updated_at").
		Updates(newBookModel(b))
	if result.Error != nil {
		return dbError("update book", result.Error)
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return dbError("delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := dbFrom(ctx, r.db).Model(&BookModel{}).Scopes(matchKeyword(params.Keyword))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, dbError("count books", err)
	}

	order, ok := bookOrders[params.SortBy]
	if !ok {
		order = bookOrders["created_at_desc"]
	}

	var models []BookModel
	if err := query.Order(order).Scopes(paginate(params.Page, params.PageSize)).Find(&models).Error; err != nil {
		return nil, 0, dbError("list books", err)
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, models[i].toEntity())
	}
	return books, total, nil
}

// UpdateStock 条件UPDATE保证库存不会减成负数
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := dbFrom(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return dbError("update stock", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 没有命中：图书不存在，或者库存不够
	if _, err := r.first(db.Where("id = ?", id), "find book"); err != nil {
		return err
	}
	return book.ErrInsufficientStock
}

func matchKeyword(keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if keyword == "" {
			return db
		}
		like := "%" + keyword + "%"
		return db.Where("title LIKE ? OR author LIKE ? OR publisher LIKE ?", like, like, like)
	}
}

func bookNotFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return book.ErrBookNotFound
	}
	return dbError(op, err)
}

func newBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		PublisherID: b.PublisherID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (m *BookModel) toEntity() *book.Book {
	return &book.Book{
		ID:          m.ID,
		ISBN:        m.ISBN,
		Title:       m.Title,
		Author:      m.Author,
		Publisher:   m.Publisher,
		Price:       m.Price,
		Stock:       m.Stock,
		CoverURL:    m.CoverURL,
		Description: m.Description,
		PublisherID: m.PublisherID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
