package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	User   *handler.UserHandler
	Book   *handler.BookHandler
	Order  *handler.OrderHandler
	Cart   *handler.CartHandler
	Author *handler.AuthorHandler
	Sample *handler.SampleHandler
}

// New 创建Gin引擎并注册路由
// 中间件顺序：Recovery -> CORS -> Tracing -> RequestLogger -> Metrics，日志里才能带上trace_id
func New(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.RequestLogger())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Server.EnableSwagger {
		// http://localhost:8080/swagger/index.html
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", h.User.Register)
			users.POST("/login", h.User.Login)
			users.POST("/refresh", h.User.Refresh)
			users.POST("/logout", auth.RequireAuth(), h.User.Logout)
			users.GET("/me", auth.RequireAuth(), h.User.Me)
		}

		books := v1.Group("/books")
		{
			books.GET("", h.Book.ListBooks)
			books.GET("/:id", h.Book.GetBook)
			books.POST("", auth.RequireAuth(), h.Book.PublishBook)
			books.PUT("/:id/price", auth.RequireAuth(), h.Book.UpdatePrice)
			books.DELETE("/:id", auth.RequireAuth(), h.Book.DeleteBook)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", h.Author.ListAuthors)
			authors.GET("/:id", h.Author.GetAuthor)
			authors.POST("", auth.RequireAuth(), h.Author.CreateAuthor)
			authors.PUT("/:id", auth.RequireAuth(), h.Author.UpdateAuthor)
			authors.DELETE("/:id", auth.RequireAuth(), h.Author.DeleteAuthor)
		}

		samples := v1.Group("/tests")
		{
			samples.GET("", h.Sample.List)
			samples.GET("/:id", h.Sample.Get)
			samples.POST("", h.Sample.Create)
		}

		cart := v1.Group("/cart")
		cart.Use(auth.RequireAuth())
		{
			cart.GET("", h.Cart.GetCart)
			cart.POST("", h.Cart.CreateCart)
			cart.POST("/books", h.Cart.AddBook)
			cart.DELETE("/books/:bookId", h.Cart.RemoveBook)
			cart.PUT("/books/:bookId", h.Cart.UpdateQuantity)
		}

		orders := v1.Group("/orders")
		orders.Use(auth.RequireAuth())
		{
			orders.POST("", h.Order.Checkout)
			orders.GET("", h.Order.ListOrders)
			orders.GET("/:id", h.Order.GetOrder)
		}
	}

	return r
}
