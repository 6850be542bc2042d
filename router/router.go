package router

import (
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(middleware.RequestID())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（登录接口限流：5 分钟内最多 10 次尝试）
		authHandler := api.NewAuthHandler(cfg)
		v1.POST("/auth/login", middleware.LoginRateLimit(10, 5*time.Minute), authHandler.Login)

		// 分类枚举（无需登录）
		categoryHandler := api.NewCategoryHandler()
		v1.GET("/categories", categoryHandler.List)

		// 需要 JWT 认证的路由（auth.enabled=false 时中间件直接放行）
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.Profile)

			// 账单
			billHandler := api.NewBillHandler()
			bills := authorized.Group("/bills")
			{
				bills.POST("", billHandler.Create)
				bills.GET("", billHandler.List)
				bills.GET("/:id", billHandler.Get)
				bills.PUT("/:id", billHandler.Update)
				bills.DELETE("/:id", billHandler.Delete)
			}

			// 周期账单模板
			templateHandler := api.NewBillTemplateHandler()
			templates := authorized.Group("/bill-templates")
			{
				templates.GET("", templateHandler.List)
				templates.POST("", templateHandler.Create)
				templates.POST("/generate", templateHandler.Generate)
				templates.PUT("/:id", templateHandler.Update)
				templates.DELETE("/:id", templateHandler.Delete)
			}

			// 收入
			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/income")
			{
				incomes.POST("", incomeHandler.Create)
				incomes.GET("", incomeHandler.List)
				incomes.PUT("/:id", incomeHandler.Update)
				incomes.DELETE("/:id", incomeHandler.Delete)
				// 兼容 ?id= 形式的删除
				incomes.DELETE("", incomeHandler.Delete)
			}

			// 统计分析
			analyticsHandler := api.NewAnalyticsHandler()
			analytics := authorized.Group("/analytics")
			{
				analytics.GET("/overview", analyticsHandler.Overview)
				analytics.GET("/trends", analyticsHandler.Trends)
				analytics.GET("/categories", analyticsHandler.Categories)
			}

			// 数据导出
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}

			// 账单提醒
			reminderHandler := api.NewReminderHandler()
			authorized.POST("/reminders/upcoming-bills", reminderHandler.SendUpcomingBills)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
