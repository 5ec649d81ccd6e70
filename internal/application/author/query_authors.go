package author

import (
	"context"

	"github.com/google/uuid"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

// ListAuthorsUseCase 作者列表
type ListAuthorsUseCase struct {
	authorService author.Service
}

func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]*AuthorResponse, error) {
	authors, err := uc.authorService.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = toAuthorResponse(a)
	}
	return list, nil
}

// GetAuthorUseCase 作者详情
type GetAuthorUseCase struct {
	authorService author.Service
}

func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uuid.UUID) (*AuthorResponse, error) {
	a, err := uc.authorService.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}
