package user

import (
	"strings"
	"time"
)

// User 购物车和订单的所有者
type User struct {
	ID           uint
	Email        string
	PasswordHash string // bcrypt
	Nickname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser 邮箱统一转小写，登录时用同样规则查询
func NewUser(email, passwordHash, nickname string) *User {
	now := time.Now()
	return &User{
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Nickname:     strings.TrimSpace(nickname),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
