package author

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// 字段长度限制(按字符计)
const (
	MaxNameLength      = 32
	MaxBiographyLength = 256
)

// Author 作者实体
type Author struct {
	ID        uuid.UUID
	Forename  string
	Surname   string
	PenName   string // 笔名
	Biography string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建作者，字段校验失败返回ErrInvalidAuthor
func NewAuthor(forename, surname, penName, biography string) (*Author, error) {
	a := &Author{
		ID:        uuid.New(),
		Forename:  strings.TrimSpace(forename),
		Surname:   strings.TrimSpace(surname),
		PenName:   strings.TrimSpace(penName),
		Biography: strings.TrimSpace(biography),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

// Changes 部分更新，nil字段保持不变
type Changes struct {
	Forename  *string
	Surname   *string
	PenName   *string
	Biography *string
}

// Apply 应用修改并重新校验
// 校验失败时实体保持原样
func (a *Author) Apply(ch Changes) error {
	next := *a
	if ch.Forename != nil {
		next.Forename = strings.TrimSpace(*ch.Forename)
	}
	if ch.Surname != nil {
		next.Surname = strings.TrimSpace(*ch.Surname)
	}
	if ch.PenName != nil {
		next.PenName = strings.TrimSpace(*ch.PenName)
	}
	if ch.Biography != nil {
		next.Biography = strings.TrimSpace(*ch.Biography)
	}
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now()
	*a = next
	return nil
}

// Validate 名字三项必填且不超过32字，简介不超过256字
func (a *Author) Validate() error {
	for _, name := range []string{a.Forename, a.Surname, a.PenName} {
		n := utf8.RuneCountInString(name)
		if n == 0 || n > MaxNameLength {
			return ErrInvalidAuthor
		}
	}
	if utf8.RuneCountInString(a.Biography) > MaxBiographyLength {
		return ErrInvalidAuthor
	}
	return nil
}

// DisplayName 展示用名字
func (a *Author) DisplayName() string {
	if a.PenName != "" {
		return a.PenName
	}
	return a.Forename + " " + a.Surname
}
