package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/zenithpay/travel-api/internal/auth"
	"github.com/zenithpay/travel-api/internal/cache"
	"github.com/zenithpay/travel-api/internal/config"
	"github.com/zenithpay/travel-api/internal/handlers"
	"github.com/zenithpay/travel-api/internal/repo"
	"github.com/zenithpay/travel-api/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	issuer, err := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL.Duration())
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, issuer)
	authHandler := handlers.NewAuthHandler(userSvc)
	api.POST("/users", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	taskRepo := repo.NewPGTaskRepo(db)
	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(taskRepo, userSvc, taskCache)
	taskHandler := handlers.NewTaskHandler(taskSvc)

	busHandler := handlers.NewBusHandler(service.NewBusService(repo.NewPGBusRepo(db)))
	hotelHandler := handlers.NewHotelHandler(service.NewHotelService(repo.NewPGHotelRepo(db)))
	trainHandler := handlers.NewTrainHandler(service.NewTrainService(repo.NewPGTrainRepo(db)))

	// Catalog reads are public, like the original dashboard expects.
	api.GET("/buses", busHandler.List)
	api.GET("/buses/:id", busHandler.GetByID)
	api.GET("/hotels", hotelHandler.List)
	api.GET("/hotels/:id", hotelHandler.GetByID)
	api.GET("/trains", trainHandler.List)
	api.GET("/trains/:id", trainHandler.GetByID)

	protected := api.Group("", auth.RequireAuth(issuer))
	registerTaskRoutes(protected, taskHandler)
	registerCatalogRoutes(protected, busHandler, hotelHandler, trainHandler)

	return nil
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Travel API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks/search", h.Search)
	api.GET("/tasks/:id", h.GetByID)
	api.PUT("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)
	api.GET("/users/:id/tasks", h.ListByUser)
}

func registerCatalogRoutes(api *gin.RouterGroup, bus *handlers.BusHandler, hotel *handlers.HotelHandler, train *handlers.TrainHandler) {
	api.POST("/buses", bus.Create)
	api.PUT("/buses/:id", bus.Update)
	api.DELETE("/buses/:id", bus.Delete)

	api.POST("/hotels", hotel.Create)
	api.PUT("/hotels/:id", hotel.Update)
	api.DELETE("/hotels/:id", hotel.Delete)

	api.POST("/trains", train.Create)
	api.PUT("/trains/:id", train.Update)
	api.DELETE("/trains/:id", train.Delete)
}
