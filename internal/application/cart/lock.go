package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// lockOwnedCart 在事务内锁定购物车并校验归属
// cartID为空时使用当前用户的购物车
func lockOwnedCart(ctx context.Context, repo cart.Repository, userID uint, cartID uuid.UUID) (*cart.Cart, error) {
	if cartID == uuid.Nil {
		owned, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		cartID = owned.ID
	}

	c, err := repo.LockByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(userID) {
		return nil, cart.ErrCartForbidden
	}
	return c, nil
}
