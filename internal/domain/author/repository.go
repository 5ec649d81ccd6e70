package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository 作者仓储接口
type Repository interface {
	Create(ctx context.Context, author *Author) error

	// FindByID 不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List 按姓、名排序返回全部作者
	List(ctx context.Context) ([]*Author, error)

	Update(ctx context.Context, author *Author) error

	// Delete 不存在返回ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
