package user

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Service 账号相关的领域规则，bcrypt只出现在这一层
type Service interface {
	Register(ctx context.Context, email, password, nickname string) (*User, error)

	// Login 邮箱不存在和密码错误都返回ErrInvalidPassword
	Login(ctx context.Context, email, password string) (*User, error)

	GetProfile(ctx context.Context, id uint) (*User, error)

	ValidatePassword(hashedPassword, plainPassword string) error
}

// DefaultCost bcrypt cost，每+1耗时翻倍
const DefaultCost = 12

type service struct {
	repo Repository
	cost int
}

func NewService(repo Repository) Service {
	return &service{repo: repo, cost: DefaultCost}
}

// NewServiceWithCost 指定bcrypt cost，测试里用bcrypt.MinCost加速
func NewServiceWithCost(repo Repository, cost int) Service {
	return &service{repo: repo, cost: cost}
}

// Register 邮箱唯一由数据库UNIQUE索引判定
func (s *service) Register(ctx context.Context, email, password, nickname string) (*User, error) {
	email = NormalizeEmail(email)
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if n := utf8.RuneCountInString(nickname); n < 2 || n > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "昵称长度应为2-50个字符")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(email, string(hashedPassword), nickname)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return nil, apperrors.ErrInvalidPassword
	case err != nil:
		return nil, err
	}

	if err := s.ValidatePassword(u.PasswordHash, password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetProfile(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePasswordStrength 8-20位，字母数字都要有
func validatePasswordStrength(password string) error {
	if n := len(password); n < 8 || n > 20 || !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
