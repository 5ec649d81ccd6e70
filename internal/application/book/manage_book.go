package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// UpdatePriceUseCase 上架者改价
// 已在购物车里的图书保持加入时的单价，结算时按新价格
type UpdatePriceUseCase struct {
	bookService book.Service
}

func NewUpdatePriceUseCase(bookService book.Service) *UpdatePriceUseCase {
	return &UpdatePriceUseCase{bookService: bookService}
}

type UpdatePriceRequest struct {
	BookID uint
	UserID uint
	Price  int64
}

func (uc *UpdatePriceUseCase) Execute(ctx context.Context, req UpdatePriceRequest) (*BookResponse, error) {
	b, err := uc.bookService.UpdateBookPrice(ctx, req.BookID, req.UserID, req.Price)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// DeleteBookUseCase 上架者下架图书
type DeleteBookUseCase struct {
	bookService book.Service
}

func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID, userID uint) error {
	return uc.bookService.DeleteBook(ctx, bookID, userID)
}
