package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options 日志配置
// 与config.LogConfig字段一一对应，pkg层不依赖internal包
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

type ctxKey struct{}

var std = logrus.New()

// Init 按配置初始化全局logger
// 返回的io.Closer用于关闭日志文件（输出到标准流时为空操作）
func Init(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}
	std = l
	return closer, nil
}

// New 创建独立的logger实例
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if opts.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}
	l.SetReportCaller(opts.EnableCaller)

	var closer io.Closer = nopCloser{}
	switch opts.Output {
	case "", "stdout":
		l.SetOutput(os.Stdout)
	case "stderr":
		l.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
		closer = f
	}

	return l, closer, nil
}

// L 返回全局logger
func L() *logrus.Logger {
	return std
}

// SetLogger 替换全局logger（测试里用来捕获输出）
func SetLogger(l *logrus.Logger) {
	std = l
}

// WithContext 把带字段的entry放进context
func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext 取出请求级entry，没有则返回全局logger的entry
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(std)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
