package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/testutil"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, message any) error {
	args := m.Called(ctx, routingKey, message)
	return args.Error(0)
}

type fixture struct {
	cartRepo cart.Repository
	bookRepo book.Repository
	pub      *mockPublisher

	get    *GetCartUseCase
	create *CreateCartUseCase
	add    *AddBookUseCase
	remove *RemoveBookUseCase
	update *UpdateQuantityUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	cartRepo := mysql.NewCartRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	tx := mysql.NewTxManager(db, "")
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return &fixture{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
		pub:      pub,
		get:      NewGetCartUseCase(cartRepo),
		create:   NewCreateCartUseCase(cartRepo, pub),
		add:      NewAddBookUseCase(cartRepo, bookRepo, tx, pub),
		remove:   NewRemoveBookUseCase(cartRepo, bookRepo, tx, pub),
		update:   NewUpdateQuantityUseCase(cartRepo, tx, pub),
	}
}

func (f *fixture) seedBook(t *testing.T, price int64) *book.Book {
	t.Helper()
	b := book.NewBook(book.Draft{ISBN: fmt.Sprintf("978%010d", price), Title: "Go语言实战", Author: "William", Publisher: "人民邮电出版社", Price: price, Stock: 100, PublisherID: 1})
	require.NoError(t, f.bookRepo.Create(context.Background(), b))
	return b
}

func TestCreateCart(t *testing.T) {
	ctx := context.Background()

	t.Run("创建空购物车", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.UserID)
		assert.Empty(t, resp.Items)
		assert.Equal(t, int64(0), resp.Subtotal)
		f.pub.AssertCalled(t, "Publish", mock.Anything, EventCartCreated, mock.Anything)
	})

	t.Run("同一用户重复创建", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.create.Execute(ctx, 1)
		assert.ErrorIs(t, err, cart.ErrCartAlreadyExists)
	})

	t.Run("不同用户互不影响", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)
		_, err = f.create.Execute(ctx, 2)
		assert.NoError(t, err)
	})
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.get.Execute(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)

	created, err := f.create.Execute(ctx, 1)
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestAddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("新增再累加", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 4500)
		created, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)
		cartID := uuid.MustParse(created.ID)

		resp, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, CartID: cartID, BookID: b.ID})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Items[0].Quantity)
		assert.Equal(t, int64(4500), resp.Subtotal)

		resp, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, CartID: cartID, BookID: b.ID, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
		assert.Equal(t, int64(13500), resp.Subtotal)
		assert.Equal(t, "135.00", resp.SubtotalYuan)

		// 持久化后重新读取
		stored, err := f.cartRepo.FindByID(ctx, cartID)
		require.NoError(t, err)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, 3, stored.Items[0].Quantity)
		assert.Equal(t, int64(13500), stored.Subtotal)

		f.pub.AssertCalled(t, "Publish", mock.Anything, EventCartBookAdded, mock.MatchedBy(func(ev CartEvent) bool {
			return ev.BookID == b.ID && ev.Quantity == 3
		}))
	})

	t.Run("新增时使用请求数量", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		resp, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID, Quantity: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Items[0].Quantity)
		assert.Equal(t, int64(4000), resp.Subtotal)
	})

	t.Run("多本图书", func(t *testing.T) {
		f := newFixture(t)
		b1 := f.seedBook(t, 1000)
		b2 := f.seedBook(t, 2550)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b1.ID, Quantity: 2})
		require.NoError(t, err)
		resp, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b2.ID})
		require.NoError(t, err)

		assert.Len(t, resp.Items, 2)
		assert.Equal(t, 3, resp.TotalQuantity)
		assert.Equal(t, int64(4550), resp.Subtotal)
	})

	t.Run("购物车不存在", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)

		_, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, CartID: uuid.New(), BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrCartNotFound)

		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})

	t.Run("图书不存在", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: 999})
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		got, err := f.get.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})

	t.Run("数量不合法", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		for _, q := range []int{-1, cart.MaxQuantity + 1} {
			_, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID, Quantity: q})
			assert.ErrorIs(t, err, cart.ErrInvalidQuantity, "quantity=%d", q)
		}

		// 累加超过上限时整个事务回滚
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID, Quantity: cart.MaxQuantity})
		require.NoError(t, err)
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		got, err := f.get.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, cart.MaxQuantity, got.Items[0].Quantity)
	})

	t.Run("不能操作他人购物车", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		other, err := f.create.Execute(ctx, 2)
		require.NoError(t, err)

		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, CartID: uuid.MustParse(other.ID), BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrCartForbidden)
	})

	t.Run("事件发布失败不影响结果", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		failing := &mockPublisher{}
		failing.On("Publish", mock.Anything, EventCartBookAdded, mock.Anything).Return(errors.New("broker down")).Once()
		uc := NewAddBookUseCase(f.cartRepo, f.bookRepo, f.add.txManager, failing)

		resp, err := uc.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		failing.AssertExpectations(t)
	})
}

func TestRemoveBook(t *testing.T) {
	ctx := context.Background()

	t.Run("加三次再删除", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
		require.NoError(t, err)
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID, Quantity: 2})
		require.NoError(t, err)

		resp, err := f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: b.ID})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Equal(t, int64(0), resp.Subtotal)

		got, err := f.get.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		f.pub.AssertCalled(t, "Publish", mock.Anything, EventCartBookRemoved, mock.Anything)
	})

	t.Run("只删除指定图书", func(t *testing.T) {
		f := newFixture(t)
		b1 := f.seedBook(t, 1000)
		b2 := f.seedBook(t, 2000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b1.ID})
		require.NoError(t, err)
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b2.ID, Quantity: 2})
		require.NoError(t, err)

		resp, err := f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: b1.ID})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, b2.ID, resp.Items[0].BookID)
		assert.Equal(t, int64(4000), resp.Subtotal)
	})

	t.Run("图书不在购物车", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrBookNotInCart)
	})

	t.Run("图书不存在", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)

		_, err = f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: 42})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("已下架的图书仍可移除", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)
		_, err := f.create.Execute(ctx, 1)
		require.NoError(t, err)
		_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID, Quantity: 2})
		require.NoError(t, err)
		require.NoError(t, f.bookRepo.Delete(ctx, b.ID))

		resp, err := f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: b.ID})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Equal(t, int64(0), resp.Subtotal)

		// 再删一次：图书既不存在也不在购物车里
		_, err = f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, BookID: b.ID})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("购物车不存在", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBook(t, 1000)

		_, err := f.remove.Execute(ctx, RemoveBookRequest{UserID: 1, CartID: uuid.New(), BookID: b.ID})
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.seedBook(t, 1000)
	_, err := f.create.Execute(ctx, 1)
	require.NoError(t, err)
	_, err = f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
	require.NoError(t, err)

	resp, err := f.update.Execute(ctx, UpdateQuantityRequest{UserID: 1, BookID: b.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, int64(5000), resp.Subtotal)

	_, err = f.update.Execute(ctx, UpdateQuantityRequest{UserID: 1, BookID: b.ID, Quantity: -1})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	_, err = f.update.Execute(ctx, UpdateQuantityRequest{UserID: 1, BookID: 777, Quantity: 1})
	assert.ErrorIs(t, err, cart.ErrBookNotInCart)

	resp, err = f.update.Execute(ctx, UpdateQuantityRequest{UserID: 1, BookID: b.ID, Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

// TestAddBookConcurrent 并发加购不丢失更新
func TestAddBookConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.seedBook(t, 1000)
	_, err := f.create.Execute(ctx, 1)
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.add.Execute(ctx, AddBookRequest{UserID: 1, BookID: b.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	resp, err := f.get.Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, workers, resp.Items[0].Quantity)
	assert.Equal(t, int64(workers*1000), resp.Subtotal)
}
