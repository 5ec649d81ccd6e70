//go:build wireinject
// +build wireinject

// 修改Provider后执行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appauthor "github.com/xiebiao/bookshop/internal/application/author"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appsample "github.com/xiebiao/bookshop/internal/application/sample"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/sample"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedisClient,
	provideTxManager,
	provideEventPublisher,
)

var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewAuthorRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewSampleRepository,
	provideBookRepository,
	provideSessionStore,
)

var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	author.NewService,
	sample.NewService,
)

var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewGetProfileUseCase,

	appbook.NewPublishBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdatePriceUseCase,
	appbook.NewDeleteBookUseCase,

	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,

	appcart.NewGetCartUseCase,
	appcart.NewCreateCartUseCase,
	appcart.NewAddBookUseCase,
	appcart.NewRemoveBookUseCase,
	appcart.NewUpdateQuantityUseCase,

	apporder.NewCheckoutUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,

	appsample.NewListSamplesUseCase,
	appsample.NewGetSampleUseCase,
	appsample.NewCreateSampleUseCase,
)

var interfaceSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewSampleHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用，cleanup按创建的逆序释放连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}
