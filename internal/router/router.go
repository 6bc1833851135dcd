package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/moodscape-io/moodscape/docs"
	"github.com/moodscape-io/moodscape/internal/config"
	"github.com/moodscape-io/moodscape/internal/middleware"
	"github.com/moodscape-io/moodscape/internal/modules/handler"
	"github.com/moodscape-io/moodscape/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config            *config.Config
	DB                *gorm.DB
	Log               *zap.Logger
	SpaceHandler      *handler.SpaceHandler
	ReflectionHandler *handler.ReflectionHandler
	CatalogHandler    *handler.CatalogHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.UserAuth(d.Config, d.DB))

		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		space := v1.Group("/space")
		{
			space.GET("", d.SpaceHandler.GetSpaces)
			space.POST("", d.SpaceHandler.CreateSpace)
			space.POST("/generate", d.SpaceHandler.GenerateSpace)

			space.GET("/:space_id", d.SpaceHandler.GetSpace)
			space.PATCH("/:space_id", d.SpaceHandler.UpdateSpace)
			space.DELETE("/:space_id", d.SpaceHandler.DeleteSpace)

			space.POST("/:space_id/checkout", d.ReflectionHandler.Checkout)
			space.PUT("/:space_id/duration", d.ReflectionHandler.FinalizeDuration)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/backgrounds", d.CatalogHandler.GetBackgrounds)
			catalog.GET("/tracks", d.CatalogHandler.GetTracks)
			catalog.GET("/clock-fonts", d.CatalogHandler.GetClockFonts)
			catalog.GET("/text-fonts", d.CatalogHandler.GetTextFonts)
			catalog.GET("/media-url", d.CatalogHandler.GetMediaURL)
			catalog.POST("/media-upload-url", d.CatalogHandler.CreateMediaUploadURL)
		}
	}
	return r
}
