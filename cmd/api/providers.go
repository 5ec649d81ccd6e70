package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// 以下Provider需要从Config里挑字段，Wire无法直接推断

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideRedisClient(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func provideTxManager(db *gorm.DB, cfg *config.Config) *mysql.TxManager {
	return mysql.NewTxManager(db, cfg.Database.TxIsolation)
}

// provideBookRepository 图书详情走Redis缓存，缓存故障时熔断直接查库
func provideBookRepository(db *gorm.DB, client *goredis.Client, cfg *config.Config) book.Repository {
	return redis.NewCachedBookRepository(
		mysql.NewBookRepository(db),
		redis.NewBookCache(client, cfg.Cache.BookTTL),
		redis.NewCacheBreaker("book_cache", uint32(cfg.Cache.BreakerMaxFailures), cfg.Cache.BreakerTimeout),
	)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	cfg *config.Config,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

// provideEventPublisher mq未启用时事件直接丢弃
func provideEventPublisher(cfg *config.Config) (appcart.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return mq.NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewRabbitPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, nil, err
	}
	logger.L().WithField("exchange", cfg.MQ.Exchange).Info("✓ RabbitMQ连接成功")

	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.L().WithError(err).Warn("关闭RabbitMQ连接失败")
		}
	}
	return p, cleanup, nil
}
