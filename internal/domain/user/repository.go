package user

import "context"

type Repository interface {
	// Create 邮箱冲突返回errors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 和FindByEmail查不到时都返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
