package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("非法级别回落到info", func(t *testing.T) {
		l, closer, err := New(Options{Level: "verbose"})
		require.NoError(t, err)
		defer closer.Close()

		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	})

	t.Run("json格式", func(t *testing.T) {
		l, closer, err := New(Options{Level: "debug", Format: "json"})
		require.NoError(t, err)
		defer closer.Close()

		var buf bytes.Buffer
		l.SetOutput(&buf)
		l.WithField("cart_id", "c-1").Debug("hello")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "c-1", line["cart_id"])
	})

	t.Run("输出到文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, closer, err := New(Options{Level: "info", Output: path})
		require.NoError(t, err)

		l.Info("written")
		require.NoError(t, closer.Close())
		assert.FileExists(t, path)
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	ctx := WithContext(context.Background(), l.WithField("request_id", "req-1"))
	FromContext(ctx).Info("in request")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	// 没有entry时回落到全局logger
	assert.NotNil(t, FromContext(context.Background()))
}
