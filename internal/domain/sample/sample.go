// Package sample 是/api/v1/tests背后的演示实体，用来做连通性和冒烟测试
package sample

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

const MaxTextLength = 128

var (
	ErrSampleNotFound = apperrors.New(apperrors.ErrCodeSampleNotFound, "测试数据不存在")
	ErrInvalidText    = apperrors.New(apperrors.ErrCodeInvalidParams, "text不能为空且不超过128字")
)

type Sample struct {
	ID        uint
	Text      string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, s *Sample) error
	FindByID(ctx context.Context, id uint) (*Sample, error)
	List(ctx context.Context) ([]*Sample, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Sample, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*Sample, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, text string) (*Sample, error) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > MaxTextLength {
		return nil, ErrInvalidText
	}

	item := &Sample{Text: text, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
