package book

import (
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// BookResponse 图书详情
type BookResponse struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"`      // 价格(分)
	PriceYuan   string `json:"price_yuan"` // 价格(元)
	Stock       int    `json:"stock"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description,omitempty"`
	PublisherID uint   `json:"publisher_id"`
	CreatedAt   string `json:"created_at"`
}

func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		PriceYuan:   fmt.Sprintf("%d.%02d", b.Price/100, b.Price%100),
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		PublisherID: b.PublisherID,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
