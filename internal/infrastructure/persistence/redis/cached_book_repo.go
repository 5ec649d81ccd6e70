package redis

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// cachedBookRepository 在book.Repository外面加一层cache-aside
// 只缓存FindByID，写操作后删除缓存。Redis故障时熔断器打开，所有读直接落到MySQL
type cachedBookRepository struct {
	book.Repository
	cache   *BookCache
	breaker *circuitbreaker.CircuitBreaker
}

// NewCachedBookRepository 包装图书仓储
func NewCachedBookRepository(repo book.Repository, cache *BookCache, breaker *circuitbreaker.CircuitBreaker) book.Repository {
	return &cachedBookRepository{
		Repository: repo,
		cache:      cache,
		breaker:    breaker,
	}
}

// NewCacheBreaker 缓存专用熔断器，未命中不算失败
func NewCacheBreaker(name string, maxFailures uint32, timeout time.Duration) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Settings{
		Name:        name,
		MaxFailures: maxFailures,
		Timeout:     timeout,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCacheMiss)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			logger.L().WithField("breaker", name).Warnf("熔断器状态变化: %s -> %s", from, to)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

func (r *cachedBookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var cached *book.Book
	err := r.breaker.Execute(func() error {
		b, err := r.cache.Get(ctx, id)
		cached = b
		return err
	})
	switch {
	case err == nil:
		metrics.CacheRequestsTotal.WithLabelValues("book", "hit").Inc()
		return cached, nil
	case errors.Is(err, errCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues("book", "miss").Inc()
	default:
		metrics.CacheRequestsTotal.WithLabelValues("book", "error").Inc()
		if !errors.Is(err, circuitbreaker.ErrOpenState) {
			logger.FromContext(ctx).WithError(err).Warn("读取图书缓存失败，回源MySQL")
		}
	}

	b, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 回填失败不影响本次请求
	_ = r.breaker.Execute(func() error {
		return r.cache.Set(ctx, b)
	})
	return b, nil
}

func (r *cachedBookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := r.Repository.Update(ctx, b); err != nil {
		return err
	}
	r.evict(ctx, b.ID)
	return nil
}

func (r *cachedBookRepository) Delete(ctx context.Context, id uint) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedBookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	if err := r.Repository.UpdateStock(ctx, id, delta); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

// evict 事务内的写操作等提交后再删缓存
// 提交前删除的话，并发的读会把未提交前的旧值重新写回缓存
func (r *cachedBookRepository) evict(ctx context.Context, id uint) {
	mysql.AfterCommit(ctx, func() {
		err := r.breaker.Execute(func() error {
			return r.cache.Delete(context.WithoutCancel(ctx), id)
		})
		if err != nil {
			logger.FromContext(ctx).WithError(err).WithField("book_id", id).Warn("删除图书缓存失败")
		}
	})
}
