package handler

import (
	"time"

	_ "gamecatalog/backend/docs" // registers the OpenAPI document with swag
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/metrics"
	"gamecatalog/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig carries everything NewRouter wires together. Nil optional
// fields switch the matching feature off.
type RouterConfig struct {
	Games       GameService
	Hub         *hub.Hub
	Logger      logrus.FieldLogger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
	Now         func() time.Time
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	if cfg.Logger != nil {
		router.Use(middleware.AccessLog(cfg.Logger))
	}
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Handler())
	}

	health := NewHealthHandler(cfg.Now)
	router.GET("/health", health.CheckHealth)

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	games := NewGameHandler(cfg.Games, cfg.Metrics)
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", games.GetGames)
		gameRoutes.POST("", games.CreateGame)
		if cfg.Hub != nil {
			gameRoutes.GET("/events", NewEventsHandler(cfg.Hub).StreamEvents)
		}
		gameRoutes.GET("/:id", games.GetGameByID)
		gameRoutes.PUT("/:id", games.UpdateGame)
		gameRoutes.DELETE("/:id", games.DeleteGame)
	}

	return router
}
