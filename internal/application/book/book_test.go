package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/testutil"
)

func newBookService(t *testing.T) book.Service {
	t.Helper()
	return book.NewService(mysql.NewBookRepository(testutil.NewTestDB(t)))
}

func TestPublishAndGetBook(t *testing.T) {
	ctx := context.Background()
	svc := newBookService(t)
	publish := NewPublishBookUseCase(svc)
	get := NewGetBookUseCase(svc)

	created, err := publish.Execute(ctx, PublishBookRequest{
		ISBN:        "978-7-111-55842-2",
		Title:       "Go程序设计语言",
		Author:      "Alan A. A. Donovan",
		Publisher:   "机械工业出版社",
		Price:       7900,
		Stock:       10,
		Description: "Go语言圣经",
		PublisherID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "79.00", created.PriceYuan)
	assert.Equal(t, "9787111558422", created.ISBN)

	t.Run("查询详情", func(t *testing.T) {
		got, err := get.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go程序设计语言", got.Title)
		assert.Equal(t, "Go语言圣经", got.Description)
	})

	t.Run("ISBN重复", func(t *testing.T) {
		_, err := publish.Execute(ctx, PublishBookRequest{
			ISBN: "978-7-111-55842-2", Title: "x", Author: "y", Publisher: "z", Price: 100, PublisherID: 2,
		})
		assert.ErrorIs(t, err, book.ErrISBNDuplicate)

		// 连字符不影响判重
		_, err = publish.Execute(ctx, PublishBookRequest{
			ISBN: "9787111558422", Title: "x", Author: "y", Publisher: "z", Price: 100, PublisherID: 2,
		})
		assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	})

	t.Run("参数不合法", func(t *testing.T) {
		_, err := publish.Execute(ctx, PublishBookRequest{ISBN: "123", Title: "x", Price: 100})
		assert.ErrorIs(t, err, book.ErrInvalidISBN)

		_, err = publish.Execute(ctx, PublishBookRequest{ISBN: "9787111558423", Title: "x", Price: 0})
		assert.ErrorIs(t, err, book.ErrInvalidPrice)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := get.Execute(ctx, 9999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	svc := newBookService(t)
	publish := NewPublishBookUseCase(svc)
	list := NewListBooksUseCase(svc)

	for i, title := range []string{"Go并发编程", "Redis设计与实现", "MySQL技术内幕"} {
		_, err := publish.Execute(ctx, PublishBookRequest{
			ISBN:        "978711155842" + string(rune('0'+i)),
			Title:       title,
			Author:      "作者",
			Publisher:   "出版社",
			Price:       int64(1000 * (i + 1)),
			Description: "简介",
			PublisherID: 1,
		})
		require.NoError(t, err)
	}

	t.Run("分页参数修正", func(t *testing.T) {
		resp, err := list.Execute(ctx, ListBooksRequest{Page: 0, PageSize: 500})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, MaxPageSize, resp.PageSize)
		assert.Equal(t, int64(3), resp.Total)
		assert.Empty(t, resp.List[0].Description)
	})

	t.Run("按价格降序", func(t *testing.T) {
		resp, err := list.Execute(ctx, ListBooksRequest{SortBy: "price_desc"})
		require.NoError(t, err)
		require.Len(t, resp.List, 3)
		assert.Equal(t, int64(3000), resp.List[0].Price)
	})

	t.Run("关键词", func(t *testing.T) {
		resp, err := list.Execute(ctx, ListBooksRequest{Keyword: "Redis"})
		require.NoError(t, err)
		require.Len(t, resp.List, 1)
		assert.Equal(t, "Redis设计与实现", resp.List[0].Title)
	})
}

func TestManageBook(t *testing.T) {
	ctx := context.Background()
	svc := newBookService(t)

	created, err := NewPublishBookUseCase(svc).Execute(ctx, PublishBookRequest{
		ISBN: "9787111558422", Title: "t", Author: "a", Publisher: "p", Price: 1000, PublisherID: 1,
	})
	require.NoError(t, err)

	update := NewUpdatePriceUseCase(svc)
	del := NewDeleteBookUseCase(svc)

	t.Run("非上架者不能改价", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdatePriceRequest{BookID: created.ID, UserID: 2, Price: 500})
		assert.ErrorIs(t, err, book.ErrNotPublisher)
	})

	t.Run("改价", func(t *testing.T) {
		got, err := update.Execute(ctx, UpdatePriceRequest{BookID: created.ID, UserID: 1, Price: 500})
		require.NoError(t, err)
		assert.Equal(t, int64(500), got.Price)
	})

	t.Run("下架", func(t *testing.T) {
		assert.ErrorIs(t, del.Execute(ctx, created.ID, 2), book.ErrNotPublisher)
		require.NoError(t, del.Execute(ctx, created.ID, 1))

		_, err := NewGetBookUseCase(svc).Execute(ctx, created.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}
