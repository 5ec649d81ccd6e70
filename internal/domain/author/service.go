package author

import (
	"context"

	"github.com/google/uuid"
)

// Service 作者领域服务
type Service interface {
	ListAuthors(ctx context.Context) ([]*Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*Author, error)
	CreateAuthor(ctx context.Context, forename, surname, penName, biography string) (*Author, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, ch Changes) (*Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService 创建作者服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}

func (s *service) GetAuthor(ctx context.Context, id uuid.UUID) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CreateAuthor(ctx context.Context, forename, surname, penName, biography string) (*Author, error) {
	a, err := NewAuthor(forename, surname, penName, biography)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAuthor 先查后改，作者不存在返回ErrAuthorNotFound
func (s *service) UpdateAuthor(ctx context.Context, id uuid.UUID, ch Changes) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.Apply(ch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
