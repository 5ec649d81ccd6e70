package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// errCacheMiss 只在包内流转，调用方看到的是(nil, nil)
var errCacheMiss = errors.New("cache miss")

// BookCache 图书详情缓存
//
//	book:detail:{id}  JSON，TTL来自cache.book_ttl
type BookCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client redis.UniversalClient, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// Get 未命中返回errCacheMiss
func (c *BookCache) Get(ctx context.Context, id uint) (*book.Book, error) {
	val, err := c.client.Get(ctx, bookDetailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errCacheMiss
		}
		return nil, fmt.Errorf("get book cache: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal(val, &b); err != nil {
		return nil, fmt.Errorf("decode book cache: %w", err)
	}
	return &b, nil
}

func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode book cache: %w", err)
	}
	if err := c.client.Set(ctx, bookDetailKey(b.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set book cache: %w", err)
	}
	return nil
}

func (c *BookCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, bookDetailKey(id)).Err(); err != nil {
		return fmt.Errorf("delete book cache: %w", err)
	}
	return nil
}

func bookDetailKey(id uint) string {
	return fmt.Sprintf("book:detail:%d", id)
}
