package user

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/user"
)

// GetProfileUseCase 当前用户信息
type GetProfileUseCase struct {
	userService user.Service
}

func NewGetProfileUseCase(userService user.Service) *GetProfileUseCase {
	return &GetProfileUseCase{userService: userService}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}
