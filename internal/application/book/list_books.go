package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// 分页参数
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListBooksUseCase 图书列表
type ListBooksUseCase struct {
	bookService book.Service
}

func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

type ListBooksRequest struct {
	Page     int
	PageSize int
	Keyword  string // 匹配书名、作者、出版社
	SortBy   string // price_asc | price_desc | created_at_desc
}

// ListBooksResponse 列表项不带description
type ListBooksResponse struct {
	List     []*BookResponse
	Total    int64
	Page     int
	PageSize int
}

func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	})
	if err != nil {
		return nil, err
	}

	list := make([]*BookResponse, len(books))
	for i, b := range books {
		item := toBookResponse(b)
		item.Description = ""
		list[i] = item
	}

	return &ListBooksResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
