package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/api/handlers"
	"github.com/AutoHubWeb/AdminPanel/internal/api/middleware"
	"github.com/AutoHubWeb/AdminPanel/internal/auth"
	"github.com/AutoHubWeb/AdminPanel/internal/config"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// Services 路由依赖的全部业务服务
type Services struct {
	User        *services.UserService
	Tool        *services.ToolService
	Vps         *services.VpsService
	Proxy       *services.ProxyService
	Order       *services.OrderService
	Transaction *services.TransactionService
	Dashboard   *services.DashboardService
	File        *services.FileService
}

// NewRouter 创建API路由
func NewRouter(cfg *config.Config, svc Services, jwtService *auth.JWTService) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())

	// 添加中间件
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	// 健康检查路由
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 初始化handlers
	authHandler := handlers.NewAuthHandler(svc.User, jwtService)
	usersHandler := handlers.NewUsersHandler(svc.User)
	toolsHandler := handlers.NewToolsHandler(svc.Tool)
	vpsHandler := handlers.NewVpsHandler(svc.Vps)
	proxiesHandler := handlers.NewProxiesHandler(svc.Proxy)
	ordersHandler := handlers.NewOrdersHandler(svc.Order)
	transactionsHandler := handlers.NewTransactionsHandler(svc.Transaction)
	dashboardsHandler := handlers.NewDashboardsHandler(svc.Dashboard)
	filesHandler := handlers.NewFilesHandler(svc.File)

	authRequired := middleware.AuthMiddleware(jwtService)
	adminOnly := middleware.AdminOnly()

	// API路由组
	apiV1 := router.Group("/api/v1")
	{
		// 认证路由
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/refresh-tokens", authHandler.RefreshTokens)

			// 需要认证的路由
			authProtected := authGroup.Group("")
			authProtected.Use(authRequired)
			{
				authProtected.GET("/me", authHandler.GetMe)
				authProtected.PUT("/me", authHandler.UpdateMe)
				authProtected.PUT("/change-password", authHandler.ChangePassword)
			}
		}

		// 用户管理路由 - 仅管理员
		users := apiV1.Group("/users")
		users.Use(authRequired, adminOnly)
		{
			users.GET("", usersHandler.FindAll)
			users.POST("", usersHandler.Create)
			users.GET("/:id", usersHandler.FindOne)
			users.PUT("/:id", usersHandler.Update)
			users.DELETE("/:id", usersHandler.Delete)
			users.PUT("/:id/lock", usersHandler.Lock)
			users.PUT("/:id/unlock", usersHandler.Unlock)
			users.POST("/:id/balance", usersHandler.AdjustBalance)
			users.POST("/:id/reset-password", usersHandler.ResetPassword)
		}

		// 工具商品路由
		tools := apiV1.Group("/tools")
		{
			tools.GET("", toolsHandler.FindAll)
			tools.GET("/:id", toolsHandler.FindOne)

			toolsAdmin := tools.Group("")
			toolsAdmin.Use(authRequired, adminOnly)
			{
				toolsAdmin.POST("", toolsHandler.Create)
				toolsAdmin.PUT("/:id", toolsHandler.Update)
				toolsAdmin.PUT("/:id/active", toolsHandler.Activate)
				toolsAdmin.PUT("/:id/pause", toolsHandler.Pause)
				toolsAdmin.DELETE("/:id", toolsHandler.Delete)
			}
		}

		// VPS商品路由
		vps := apiV1.Group("/vps")
		{
			vps.GET("", vpsHandler.FindAll)
			vps.GET("/:id", vpsHandler.FindOne)

			vpsAdmin := vps.Group("")
			vpsAdmin.Use(authRequired, adminOnly)
			{
				vpsAdmin.POST("", vpsHandler.Create)
				vpsAdmin.PUT("/:id", vpsHandler.Update)
				vpsAdmin.PUT("/:id/active", vpsHandler.Activate)
				vpsAdmin.PUT("/:id/pause", vpsHandler.Pause)
				vpsAdmin.DELETE("/:id", vpsHandler.Delete)
			}
		}

		// 代理商品路由，路径沿用单数形式
		proxy := apiV1.Group("/proxy")
		{
			proxy.GET("", proxiesHandler.FindAll)
			proxy.GET("/:id", proxiesHandler.FindOne)

			proxyAdmin := proxy.Group("")
			proxyAdmin.Use(authRequired, adminOnly)
			{
				proxyAdmin.POST("", proxiesHandler.Create)
				proxyAdmin.PUT("/:id", proxiesHandler.Update)
				proxyAdmin.PUT("/:id/active", proxiesHandler.Activate)
				proxyAdmin.PUT("/:id/pause", proxiesHandler.Pause)
				proxyAdmin.DELETE("/:id", proxiesHandler.Delete)
			}
		}

		// 订单路由 - 仅管理员
		orders := apiV1.Group("/orders")
		orders.Use(authRequired, adminOnly)
		{
			orders.GET("", ordersHandler.FindAll)
			orders.GET("/:id", ordersHandler.FindOne)
			orders.PUT("/:id/setup-vps", ordersHandler.SetupVps)
			orders.PUT("/:id/setup-proxy", ordersHandler.SetupProxy)
			orders.PUT("/:id/update-api-key", ordersHandler.UpdateApiKey)
		}

		// 交易路由 - 仅管理员，只读
		transactions := apiV1.Group("/transactions")
		transactions.Use(authRequired, adminOnly)
		{
			transactions.GET("", transactionsHandler.FindAll)
			transactions.GET("/:id", transactionsHandler.FindOne)
		}

		// 统计路由 - 仅管理员
		dashboards := apiV1.Group("/dashboards")
		dashboards.Use(authRequired, adminOnly)
		{
			dashboards.GET("/summary", dashboardsHandler.Summary)
			dashboards.GET("/summary-user", dashboardsHandler.SummaryUser)
			dashboards.GET("/summary-revenue", dashboardsHandler.SummaryRevenue)
		}

		// 文件路由 - 仅管理员
		files := apiV1.Group("/files")
		files.Use(authRequired, adminOnly)
		{
			files.POST("/upload/single", filesHandler.UploadSingle)
			files.POST("/upload/multiple", filesHandler.UploadMultiple)
			files.DELETE("/delete-multiple", filesHandler.DeleteMultiple)
			files.DELETE("/:id", filesHandler.Delete)
		}
	}

	return router
}
