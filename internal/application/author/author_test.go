package author

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/testutil"
)

func newAuthorService(t *testing.T) author.Service {
	t.Helper()
	return author.NewService(mysql.NewAuthorRepository(testutil.NewTestDB(t)))
}

func strPtr(s string) *string { return &s }

func TestAuthorUseCases(t *testing.T) {
	ctx := context.Background()
	svc := newAuthorService(t)

	create := NewCreateAuthorUseCase(svc)
	get := NewGetAuthorUseCase(svc)
	list := NewListAuthorsUseCase(svc)
	update := NewUpdateAuthorUseCase(svc)
	del := NewDeleteAuthorUseCase(svc)

	created, err := create.Execute(ctx, CreateAuthorRequest{
		Forename:  "树人",
		Surname:   "周",
		PenName:   "鲁迅",
		Biography: "中国现代文学的奠基人之一",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	t.Run("查询详情", func(t *testing.T) {
		got, err := get.Execute(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "鲁迅", got.PenName)
	})

	t.Run("列表", func(t *testing.T) {
		_, err := create.Execute(ctx, CreateAuthorRequest{Forename: "Rob", Surname: "Pike", PenName: "rob"})
		require.NoError(t, err)

		got, err := list.Execute(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("部分更新", func(t *testing.T) {
		got, err := update.Execute(ctx, UpdateAuthorRequest{ID: id, Biography: strPtr("小说家、思想家")})
		require.NoError(t, err)
		assert.Equal(t, "小说家、思想家", got.Biography)
		assert.Equal(t, "鲁迅", got.PenName)

		stored, err := get.Execute(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "小说家、思想家", stored.Biography)
	})

	t.Run("更新校验失败不落库", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateAuthorRequest{ID: id, PenName: strPtr(strings.Repeat("长", 33))})
		assert.ErrorIs(t, err, author.ErrInvalidAuthor)

		stored, err := get.Execute(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "鲁迅", stored.PenName)
	})

	t.Run("更新不存在的作者", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateAuthorRequest{ID: uuid.New(), PenName: strPtr("x")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("创建校验失败", func(t *testing.T) {
		_, err := create.Execute(ctx, CreateAuthorRequest{Forename: "A", Surname: "B"})
		assert.ErrorIs(t, err, author.ErrInvalidAuthor)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, del.Execute(ctx, id))

		_, err := get.Execute(ctx, id)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)

		assert.ErrorIs(t, del.Execute(ctx, id), author.ErrAuthorNotFound)
	})
}
