package book

import (
	"context"
	"errors"
	"regexp"
)

// Service 图书领域服务
type Service interface {
	// PublishBook ISBN为10或13位数字(可带连字符)，价格1-999999分，库存>=0，ISBN不能重复
	PublishBook(ctx context.Context, d Draft) (*Book, error)

	GetBook(ctx context.Context, id uint) (*Book, error)

	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// UpdateBookPrice 只有上架者可以改价
	UpdateBookPrice(ctx context.Context, id, userID uint, newPrice int64) (*Book, error)

	// DeleteBook 只有上架者可以下架
	DeleteBook(ctx context.Context, id, userID uint) error
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

func (s *service) PublishBook(ctx context.Context, d Draft) (*Book, error) {
	isbn := NormalizeISBN(d.ISBN)
	switch {
	case len(isbn) != 10 && len(isbn) != 13:
		return nil, ErrInvalidISBN
	case d.Price < MinPrice || d.Price > MaxPrice:
		return nil, ErrInvalidPrice
	case d.Stock < 0:
		return nil, ErrInvalidStock
	}

	// 提前查一次给出友好提示，并发情况下仍由唯一索引兜底
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	b := NewBook(d)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *service) UpdateBookPrice(ctx context.Context, id, userID uint, newPrice int64) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsOwnedBy(userID) {
		return nil, ErrNotPublisher
	}
	if err := b.UpdatePrice(newPrice); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteBook(ctx context.Context, id, userID uint) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !b.IsOwnedBy(userID) {
		return ErrNotPublisher
	}
	return s.repo.Delete(ctx, id)
}

// NormalizeISBN 去掉连字符和空格，不校验校验位
func NormalizeISBN(isbn string) string {
	return nonDigit.ReplaceAllString(isbn, "")
}
