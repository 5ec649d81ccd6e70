package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository 购物车仓储接口
// LockByID和Save必须在TxManager.Transaction内调用，否则行锁在语句结束时就释放了
type Repository interface {
	// Create 插入空购物车，user_id唯一索引冲突时返回ErrCartAlreadyExists
	Create(ctx context.Context, cart *Cart) error

	// FindByUserID 查询用户的购物车(含明细)
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// FindByID 根据ID查询购物车(含明细)
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// LockByID SELECT ... FOR UPDATE 锁定购物车行并加载明细
	LockByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// Save 整体写回聚合：更新购物车行、upsert现有明细、删除已移除的明细
	Save(ctx context.Context, cart *Cart) error
}
