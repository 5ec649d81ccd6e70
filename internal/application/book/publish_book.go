package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

type PublishBookUseCase struct {
	bookService book.Service
}

func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{bookService: bookService}
}

// PublishBookRequest PublisherID取自登录用户
type PublishBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Publisher   string
	Price       int64 // 分
	Stock       int
	CoverURL    string
	Description string
	PublisherID uint
}

func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.PublishBook(ctx, book.Draft{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Publisher:   req.Publisher,
		Price:       req.Price,
		Stock:       req.Stock,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		PublisherID: req.PublisherID,
	})
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}
