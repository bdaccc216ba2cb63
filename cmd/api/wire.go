//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauth "github.com/xiebiao/library/internal/application/auth"
	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appcomment "github.com/xiebiao/library/internal/application/comment"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/domain/comment"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/mq"
	"github.com/xiebiao/library/pkg/response"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,    // 图书仓储
	mysql.NewAuthorRepository,  // 作者仓储
	mysql.NewCommentRepository, // 评论仓储
	mysql.NewTxManager,         // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,       // 图书领域服务
	author.NewService,     // 作者领域服务
	comment.NewService,    // 评论领域服务
	catalog.NewReconciler, // 关系调和引擎
)

// applicationSet 应用层依赖
// 带配置参数的用例通过下方自定义Provider构造
var applicationSet = wire.NewSet(
	provideCreateBookUseCase,
	provideUpdateBookUseCase,
	appbook.NewGetBookUseCase,
	provideListBooksUseCase,
	appbook.NewDeleteBookUseCase,
	provideCreateAuthorUseCase,
	provideUpdateAuthorUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appcomment.NewCreateCommentUseCase,
	appcomment.NewListCommentsUseCase,
	appcomment.NewGetCommentUseCase,
	provideLoginUseCase,
	appauth.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideTokenStore,
	providePublisher,
	provideAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewCommentHandler,
	handler.NewAuthHandler,
	handler.NewPageHandler,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 有些依赖的构造参数需要从Config中提取，Wire无法自动推导

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideTokenStore(client *goredis.Client) *redis.TokenStore {
	return redis.NewTokenStore(client)
}

func providePublisher(cfg *config.Config) (mq.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return mq.NopPublisher{}, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

func provideAuthMiddleware(cfg *config.Config, jwtManager *jwt.Manager, tokenStore *redis.TokenStore) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(cfg.Auth.Enabled, jwtManager, tokenStore)
}

func provideLoginUseCase(cfg *config.Config, jwtManager *jwt.Manager) *appauth.LoginUseCase {
	return appauth.NewLoginUseCase(cfg.Auth, jwtManager)
}

func provideCreateBookUseCase(
	bookService book.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	cfg *config.Config,
) *appbook.CreateBookUseCase {
	return appbook.NewCreateBookUseCase(bookService, reconciler, txManager, publisher, cfg.Database.ReconcileInTx)
}

func provideUpdateBookUseCase(
	bookService book.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	cfg *config.Config,
) *appbook.UpdateBookUseCase {
	return appbook.NewUpdateBookUseCase(bookService, reconciler, txManager, publisher, cfg.Database.ReconcileInTx)
}

func provideListBooksUseCase(bookService book.Service, cfg *config.Config) *appbook.ListBooksUseCase {
	return appbook.NewListBooksUseCase(bookService, cfg.Catalog.PageSize)
}

func provideCreateAuthorUseCase(
	authorService author.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	cfg *config.Config,
) *appauthor.CreateAuthorUseCase {
	return appauthor.NewCreateAuthorUseCase(authorService, reconciler, txManager, publisher, cfg.Database.ReconcileInTx)
}

func provideUpdateAuthorUseCase(
	authorService author.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	cfg *config.Config,
) *appauthor.UpdateAuthorUseCase {
	return appauthor.NewUpdateAuthorUseCase(authorService, reconciler, txManager, publisher, cfg.Database.ReconcileInTx)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	commentHandler *handler.CommentHandler,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*")
	r.Static("/static", "web/static")

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Swagger文档：http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/books/", pageHandler.BooksPage)
	r.GET("/book/:id/", pageHandler.BookPage)

	api := r.Group("/api")
	{
		if cfg.Auth.Enabled {
			auth := api.Group("/auth")
			{
				auth.POST("/login", authHandler.Login)
				auth.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
			}
		}

		requireAuth := authMiddleware.RequireAuth()

		api.GET("/books/", bookHandler.ListBooks)
		api.POST("/books/", requireAuth, bookHandler.CreateBook)
		api.GET("/book/:id/", bookHandler.GetBook)
		api.PUT("/book/:id/", requireAuth, bookHandler.UpdateBook)
		api.DELETE("/book/:id/", requireAuth, bookHandler.DeleteBook)

		api.GET("/authors/", authorHandler.ListAuthors)
		api.POST("/authors/", requireAuth, authorHandler.CreateAuthor)
		api.GET("/author/:id/", authorHandler.GetAuthor)
		api.PUT("/author/:id/", requireAuth, authorHandler.UpdateAuthor)
		api.DELETE("/author/:id/", requireAuth, authorHandler.DeleteAuthor)

		api.GET("/comments/", commentHandler.ListComments)
		api.POST("/comments/", requireAuth, commentHandler.CreateComment)
		api.GET("/comments/:book_id/", commentHandler.ListCommentsByBook)
		api.GET("/comment/:id/", commentHandler.GetComment)
	}

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
