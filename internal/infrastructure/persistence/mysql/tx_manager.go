package mysql

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"gorm.io/gorm"
)

type (
	txKey          struct{}
	afterCommitKey struct{}
)

// afterCommitHooks 最外层事务提交后依次执行
type afterCommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *afterCommitHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *afterCommitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// TxManager 事务管理器
// 事务DB通过context传递，fn里所有仓储调用共享同一个事务
//
// 隔离级别是显式约定：MySQL默认REPEATABLE READ。购物车写操作先对carts行加
// SELECT ... FOR UPDATE，再读明细，所以同一购物车的并发修改在行锁上串行化
type TxManager struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewTxManager 创建事务管理器
// isolation为空时使用数据库默认隔离级别
func NewTxManager(db *gorm.DB, isolation string) *TxManager {
	m := &TxManager{db: db}
	if level := parseIsolation(isolation); level != sql.LevelDefault {
		m.opts = &sql.TxOptions{Isolation: level}
	}
	return m
}

// Transaction 执行事务
// fn返回error时ROLLBACK，返回nil时COMMIT
// ctx里已有事务时嵌套执行(GORM使用SAVEPOINT)
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    c, err := cartRepo.LockByID(ctx, cartID)
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	    return cartRepo.Save(ctx, c)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.Transaction(func(inner *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, inner))
		})
	}

	hooks := &afterCommitHooks{}
	ctx = context.WithValue(ctx, afterCommitKey{}, hooks)
	run := func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	}

	var err error
	if m.opts != nil {
		err = m.db.WithContext(ctx).Transaction(run, m.opts)
	} else {
		err = m.db.WithContext(ctx).Transaction(run)
	}
	if err != nil {
		return err
	}
	hooks.run()
	return nil
}

// AfterCommit 登记fn在最外层事务提交后执行，回滚时丢弃
// ctx里没有事务时立即执行。嵌套事务回滚到SAVEPOINT不会撤销已登记的fn
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(afterCommitKey{}).(*afterCommitHooks); ok {
		hooks.add(fn)
		return
	}
	fn()
}

// dbFrom 优先使用context中的事务DB
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

func parseIsolation(s string) sql.IsolationLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "READ COMMITTED":
		return sql.LevelReadCommitted
	case "REPEATABLE READ":
		return sql.LevelRepeatableRead
	case "SERIALIZABLE":
		return sql.LevelSerializable
	default:
		return sql.LevelDefault
	}
}
