// Package metrics Prometheus指标
// 指标在包初始化时注册到默认Registry，通过/metrics暴露
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookshop"

var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时（秒）",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "正在处理的HTTP请求数",
		},
	)

	// 购物车

	// CartOperationsTotal operation: get|create|add_book|remove_book|update_quantity|checkout
	// result: success|<错误码>
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_operations_total",
			Help:      "购物车操作次数",
		},
		[]string{"operation", "result"},
	)

	CartOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_operation_duration_seconds",
			Help:      "购物车操作耗时（秒），包含事务等锁时间",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "结算生成的订单数",
		},
	)

	// 缓存与熔断

	// CacheRequestsTotal result: hit|miss|error
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "缓存读取次数",
		},
		[]string{"cache", "result"},
	)

	// CircuitBreakerState 0=CLOSED 1=OPEN 2=HALF_OPEN
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	// 消息

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "消息发布次数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
)

// ObserveCartOperation 记录一次购物车操作
// code为0表示成功，否则为业务错误码
//
//	start := time.Now()
//	defer func() { metrics.ObserveCartOperation("add_book", start, code) }()
func ObserveCartOperation(operation string, start time.Time, code int) {
	result := "success"
	if code != 0 {
		result = strconv.Itoa(code)
	}
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
	CartOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
