// Package circuitbreaker 熔断器
//
// 状态机：
//
//	CLOSED --连续失败达到阈值--> OPEN --超时--> HALF_OPEN --成功--> CLOSED
//	                                          HALF_OPEN --失败--> OPEN
//
// 图书缓存用它保护Redis：Redis不可用时直接查MySQL，不必每次等Redis超时
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断中，请求被直接拒绝
var ErrOpenState = errors.New("circuit breaker is open")

// Settings 熔断器配置
type Settings struct {
	Name string

	// 连续失败多少次后打开，默认5
	MaxFailures uint32

	// OPEN持续多久后进入HALF_OPEN，默认30s
	Timeout time.Duration

	// HALF_OPEN时放行的探测请求数，默认1
	HalfOpenRequests uint32

	// IsSuccessful 判断err是否算成功，默认只有nil算成功
	// 缓存未命中这类业务错误不应该计为失败
	IsSuccessful func(err error) bool

	// OnStateChange 状态变化回调，在锁内调用，不要阻塞
	OnStateChange func(name string, from, to State)
}

// CircuitBreaker 并发安全
type CircuitBreaker struct {
	settings Settings

	mu                  sync.Mutex
	state               State
	generation          uint64
	consecutiveFailures uint32
	halfOpenInFlight    uint32
	openedAt            time.Time
	now                 func() time.Time
}

// New 创建熔断器
func New(s Settings) *CircuitBreaker {
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.HalfOpenRequests == 0 {
		s.HalfOpenRequests = 1
	}
	if s.IsSuccessful == nil {
		s.IsSuccessful = func(err error) bool { return err == nil }
	}

	return &CircuitBreaker{
		settings: s,
		state:    StateClosed,
		now:      time.Now,
	}
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.settings.Name
}

// Execute 在熔断器保护下执行fn
// 熔断中返回ErrOpenState且不调用fn
func (cb *CircuitBreaker) Execute(fn func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = fn()
	cb.afterRequest(generation, cb.settings.IsSuccessful(err))
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.currentState()
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.currentState() {
	case StateOpen:
		return cb.generation, ErrOpenState
	case StateHalfOpen:
		if cb.halfOpenInFlight >= cb.settings.HalfOpenRequests {
			return cb.generation, ErrOpenState
		}
		cb.halfOpenInFlight++
	}
	return cb.generation, nil
}

func (cb *CircuitBreaker) afterRequest(generation uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.currentState()
	// 请求期间状态已经切换过，结果作废
	if generation != cb.generation {
		return
	}

	if success {
		cb.consecutiveFailures = 0
		if state == StateHalfOpen {
			cb.setState(StateClosed)
		}
		return
	}

	cb.consecutiveFailures++
	switch state {
	case StateClosed:
		if cb.consecutiveFailures >= cb.settings.MaxFailures {
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		cb.setState(StateOpen)
	}
}

// currentState 调用方持有锁
func (cb *CircuitBreaker) currentState() State {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.settings.Timeout {
		cb.setState(StateHalfOpen)
	}
	return cb.state
}

func (cb *CircuitBreaker) setState(to State) {
	if cb.state == to {
		return
	}

	from := cb.state
	cb.state = to
	cb.generation++
	cb.consecutiveFailures = 0
	cb.halfOpenInFlight = 0
	if to == StateOpen {
		cb.openedAt = cb.now()
	}

	if cb.settings.OnStateChange != nil {
		cb.settings.OnStateChange(cb.settings.Name, from, to)
	}
}
