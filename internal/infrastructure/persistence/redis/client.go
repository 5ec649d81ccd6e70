package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/logger"
)

const pingAttempts = 3

// NewClient 连不上时重试几次，容器编排下Redis可能晚于服务启动
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			break
		}
		logger.L().WithError(err).WithField("attempt", attempt).Warn("Redis连接失败，稍后重试")
		time.Sleep(time.Duration(attempt) * 200 * time.Millisecond)
	}
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	if err := registerPoolMetrics(client); err != nil {
		logger.L().WithError(err).Warn("Redis连接池指标注册失败")
	}

	logger.L().WithField("addr", cfg.Addr()).Info("✓ Redis连接成功")
	return client, nil
}

// registerPoolMetrics 连接池状态在抓取时读取
func registerPoolMetrics(client *redis.Client) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "redis_pool_total_conns",
			Help: "Redis连接池中的连接总数",
		}, func() float64 { return float64(client.PoolStats().TotalConns) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "redis_pool_idle_conns",
			Help: "Redis连接池中的空闲连接数",
		}, func() float64 { return float64(client.PoolStats().IdleConns) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "redis_pool_timeouts_total",
			Help: "等待连接超时次数",
		}, func() float64 { return float64(client.PoolStats().Timeouts) }),
	}

	for _, g := range gauges {
		if err := prometheus.Register(g); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return err
			}
		}
	}
	return nil
}
