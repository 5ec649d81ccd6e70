package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	// 走Add保证键名规范化，和真实请求一致
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newAuth(t *testing.T) (*AuthMiddleware, *jwt.Manager, *redis.SessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	manager := jwt.NewManager("test-secret", "bookshop", time.Hour, 24*time.Hour)
	store := redis.NewSessionStore(client)
	return NewAuthMiddleware(manager, store), manager, store
}

func TestRequireAuth(t *testing.T) {
	auth, manager, store := newAuth(t)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": MustGetUserID(c), "email": GetEmail(c), "token": GetAccessToken(c)})
	})

	pair, err := manager.GenerateToken(7, "reader@example.com", "读者")
	require.NoError(t, err)

	t.Run("有效Token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + pair.AccessToken}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), "reader@example.com")
	})

	t.Run("缺少Header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("格式错误", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Token " + pair.AccessToken}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "40101")
	})

	t.Run("伪造Token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer not-a-jwt"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("黑名单Token", func(t *testing.T) {
		require.NoError(t, store.AddToBlacklist(context.Background(), pair.AccessToken, time.Minute))

		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + pair.AccessToken}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "40102")
	})
}

func TestOptionalAuth(t *testing.T) {
	auth, manager, _ := newAuth(t)

	r := gin.New()
	r.GET("/books", auth.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})

	pair, err := manager.GenerateToken(3, "a@example.com", "a")
	require.NoError(t, err)

	w := serve(r, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)

	w = serve(r, http.MethodGet, "/books", http.Header{"Authorization": {"Bearer " + pair.AccessToken}})
	assert.Contains(t, w.Body.String(), `"user_id":3`)

	// 无效Token按匿名处理
	w = serve(r, http.MethodGet, "/books", http.Header{"Authorization": {"Bearer broken"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)
}

func TestRequestLogger(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		seen, _ = logger.FromContext(c.Request.Context()).Data["request_id"].(string)
		c.Status(http.StatusOK)
	})

	t.Run("生成request_id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)
		id := w.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, seen)
	})

	t.Run("沿用上游request_id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", http.Header{HeaderRequestID: {"req-123"}})
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("请求头大小写不敏感", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", http.Header{"x-request-id": {"req-456"}})
		assert.Equal(t, "req-456", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-456", seen)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "50000")
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/v1/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/books/:id", "200")
	before := promtestutil.ToFloat64(counter)
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	unmatchedBefore := promtestutil.ToFloat64(unmatched)

	serve(r, http.MethodGet, "/api/v1/books/1", nil)
	serve(r, http.MethodGet, "/api/v1/books/2", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	// 不同ID落在同一个路由模板标签下
	assert.Equal(t, 2.0, promtestutil.ToFloat64(counter)-before)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(unmatched)-unmatchedBefore)
	assert.Equal(t, 0.0, promtestutil.ToFloat64(metrics.HTTPRequestsInProgress))
}

func TestTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	shutdown, err := tracing.Install(context.Background(), tracing.Options{ServiceName: "bookshop-test"},
		sdktrace.WithSyncer(exporter))
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	var traceID string
	r := gin.New()
	r.Use(Tracing(), RequestLogger())
	r.GET("/api/v1/cart", func(c *gin.Context) {
		traceID, _ = logger.FromContext(c.Request.Context()).Data["trace_id"].(string)
		c.Status(http.StatusOK)
	})
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	t.Run("每个请求一个span", func(t *testing.T) {
		exporter.Reset()
		serve(r, http.MethodGet, "/api/v1/cart", nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "GET /api/v1/cart", spans[0].Name)
		assert.Equal(t, spans[0].SpanContext.TraceID().String(), traceID)
	})

	t.Run("延续上游traceparent", func(t *testing.T) {
		exporter.Reset()
		parent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
		serve(r, http.MethodGet, "/api/v1/cart", http.Header{"Traceparent": {parent}})

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	})

	t.Run("5xx标记错误", func(t *testing.T) {
		exporter.Reset()
		serve(r, http.MethodGet, "/fail", nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "Error", spans[0].Status.Code.String())
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization"},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.GET("/api/v1/books", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("白名单Origin", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/books", http.Header{"Origin": {"http://localhost:3000"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("预检请求", func(t *testing.T) {
		w := serve(r, http.MethodOptions, "/api/v1/books", http.Header{"Origin": {"http://localhost:3000"}})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("未知Origin", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/books", http.Header{"Origin": {"http://evil.example.com"}})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("同源请求不处理", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
