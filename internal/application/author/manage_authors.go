package author

import (
	"context"

	"github.com/google/uuid"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

// CreateAuthorUseCase 新建作者
type CreateAuthorUseCase struct {
	authorService author.Service
}

func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

type CreateAuthorRequest struct {
	Forename  string
	Surname   string
	PenName   string
	Biography string
}

func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	a, err := uc.authorService.CreateAuthor(ctx, req.Forename, req.Surname, req.PenName, req.Biography)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

// UpdateAuthorUseCase 部分更新，未提供的字段保持不变
type UpdateAuthorUseCase struct {
	authorService author.Service
}

func NewUpdateAuthorUseCase(authorService author.Service) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorService: authorService}
}

type UpdateAuthorRequest struct {
	ID        uuid.UUID
	Forename  *string
	Surname   *string
	PenName   *string
	Biography *string
}

func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (*AuthorResponse, error) {
	a, err := uc.authorService.UpdateAuthor(ctx, req.ID, author.Changes{
		Forename:  req.Forename,
		Surname:   req.Surname,
		PenName:   req.PenName,
		Biography: req.Biography,
	})
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

// DeleteAuthorUseCase 删除作者
type DeleteAuthorUseCase struct {
	authorService author.Service
}

func NewDeleteAuthorUseCase(authorService author.Service) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorService: authorService}
}

func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.authorService.DeleteAuthor(ctx, id)
}
