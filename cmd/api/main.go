package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
	"github.com/xiebiao/library/pkg/response"
	"github.com/xiebiao/library/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供Wire版本的组装配置）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - 认证开关: %t\n", cfg.Auth.Enabled)

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 可选组件：Redis（仅认证开启时需要）
	var tokenStore *redis.TokenStore
	var jwtManager *jwt.Manager
	if cfg.Auth.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		tokenStore = redis.NewTokenStore(redisClient)
		jwtManager = jwt.NewManager(
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenExpire,
			cfg.JWT.RefreshTokenExpire,
		)
	}

	// 4. 可选组件：消息队列（未启用时注入空发布者）
	var publisher mq.EventPublisher = mq.NopPublisher{}
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// 5. 可选组件：指标与追踪
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorURL)
		if err != nil {
			log.Fatalf("初始化追踪失败: %v", err)
		}
		defer shutdown(context.Background())
	}

	// 6. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	bookService := book.NewService(bookRepo)
	authorService := author.NewService(authorRepo)
	commentService := comment.NewService(commentRepo)
	reconciler := catalog.NewReconciler(bookRepo, authorRepo)

	// 应用层
	reconcileInTx := cfg.Database.ReconcileInTx
	createBookUC := appbook.NewCreateBookUseCase(bookService, reconciler, txManager, publisher, reconcileInTx)
	updateBookUC := appbook.NewUpdateBookUseCase(bookService, reconciler, txManager, publisher, reconcileInTx)
	getBookUC := appbook.NewGetBookUseCase(bookService)
	listBooksUC := appbook.NewListBooksUseCase(bookService, cfg.Catalog.PageSize)
	deleteBookUC := appbook.NewDeleteBookUseCase(bookService, publisher)

	createAuthorUC := appauthor.NewCreateAuthorUseCase(authorService, reconciler, txManager, publisher, reconcileInTx)
	updateAuthorUC := appauthor.NewUpdateAuthorUseCase(authorService, reconciler, txManager, publisher, reconcileInTx)
	getAuthorUC := appauthor.NewGetAuthorUseCase(authorService)
	listAuthorsUC := appauthor.NewListAuthorsUseCase(authorService)
	deleteAuthorUC := appauthor.NewDeleteAuthorUseCase(authorService, publisher)

	createCommentUC := appcomment.NewCreateCommentUseCase(commentService, bookService, publisher)
	listCommentsUC := appcomment.NewListCommentsUseCase(commentService)
	getCommentUC := appcomment.NewGetCommentUseCase(commentService)

	// 接口层
	bookHandler := handler.NewBookHandler(createBookUC, updateBookUC, getBookUC, listBooksUC, deleteBookUC)
	authorHandler := handler.NewAuthorHandler(createAuthorUC, updateAuthorUC, getAuthorUC, listAuthorsUC, deleteAuthorUC)
	commentHandler := handler.NewCommentHandler(createCommentUC, listCommentsUC, getCommentUC)
	pageHandler := handler.NewPageHandler()
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.Enabled, jwtManager, tokenStore)

	var authHandler *handler.AuthHandler
	if cfg.Auth.Enabled {
		loginUC := appauth.NewLoginUseCase(cfg.Auth, jwtManager)
		logoutUC := appauth.NewLogoutUseCase(tokenStore, jwtManager)
		authHandler = handler.NewAuthHandler(loginUC, logoutUC)
	}

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}

	// 页面模板与静态资源
	r.LoadHTMLGlob("web/templates/*")
	r.Static("/static", "web/static")

	// 8. 注册路由
	registerRoutes(r, cfg, bookHandler, authorHandler, commentHandler, authHandler, pageHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   图书列表: GET http://localhost%s/api/books/\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 写接口挂RequireAuth中间件：auth.enabled=false时中间件直接放行
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	commentHandler *handler.CommentHandler,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 服务端渲染页面
	r.GET("/books/", pageHandler.BooksPage)
	r.GET("/book/:id/", pageHandler.BookPage)

	api := r.Group("/api")
	{
		// 认证模块（仅开关打开时注册）
		if cfg.Auth.Enabled && authHandler != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/login", authHandler.Login)
				auth.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
			}
		}

		requireAuth := authMiddleware.RequireAuth()

		// 图书模块
		api.GET("/books/", bookHandler.ListBooks)
		api.POST("/books/", requireAuth, bookHandler.CreateBook)
		api.GET("/book/:id/", bookHandler.GetBook)
		api.PUT("/book/:id/", requireAuth, bookHandler.UpdateBook)
		api.DELETE("/book/:id/", requireAuth, bookHandler.DeleteBook)

		// 作者模块
		api.GET("/authors/", authorHandler.ListAuthors)
		api.POST("/authors/", requireAuth, authorHandler.CreateAuthor)
		api.GET("/author/:id/", authorHandler.GetAuthor)
		api.PUT("/author/:id/", requireAuth, authorHandler.UpdateAuthor)
		api.DELETE("/author/:id/", requireAuth, authorHandler.DeleteAuthor)

		// 评论模块
		api.GET("/comments/", commentHandler.ListComments)
		api.POST("/comments/", requireAuth, commentHandler.CreateComment)
		api.GET("/comments/:book_id/", commentHandler.ListCommentsByBook)
		api.GET("/comment/:id/", commentHandler.GetComment)
	}
}
