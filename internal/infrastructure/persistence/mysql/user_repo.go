package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/user"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Email:    u.Email,
		Password: u.PasswordHash,
		Nickname: u.Nickname,
	}

	err := dbFrom(ctx, r.db).Create(model).Error
	switch {
	case isDuplicateError(err):
		return apperrors.ErrEmailDuplicate
	case err != nil:
		return dbError("create user", err)
	}

	u.ID, u.CreatedAt, u.UpdatedAt = model.ID, model.CreatedAt, model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(dbFrom(ctx, r.db).Where("id = ?", id), "find user")
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(dbFrom(ctx, r.db).Where("email = ?", email), "find user by email")
}

func (r *userRepository) first(db *gorm.DB, op string) (*user.User, error) {
	var m UserModel
	if err := db.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dbError(op, err)
	}
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
		Nickname:     m.Nickname,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
