package handler

import (
	"net/http"
	"time"

	"github.com/gamassss/urlist/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Lists  *ListHandler
	URLs   *URLHandler
	Public *PublicHandler
	Health *HealthHandler
}

// NewRouter wires every route. corsOrigins may contain "*"; an empty slice
// disables CORS handling.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	if len(corsOrigins) > 0 {
		router.Use(cors.New(corsConfig(corsOrigins)))
	}

	router.GET("/healthz", h.Health.Healthz)
	router.GET("/readyz", h.Health.Readyz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		lists := api.Group("/lists")
		lists.GET("", h.Lists.ListLists)
		lists.POST("", h.Lists.CreateList)
		lists.GET("/:id", h.Lists.GetList)
		lists.PUT("/:id", h.Lists.UpdateList)
		lists.DELETE("/:id", h.Lists.DeleteList)
		lists.PATCH("/:id/publish", h.Lists.PublishList)

		lists.GET("/:id/urls", h.URLs.ListURLs)
		lists.POST("/:id/urls", h.URLs.CreateURL)
		lists.PUT("/:id/urls/positions", h.URLs.ReorderURLs)

		api.GET("/urls/:urlId", h.URLs.GetURL)
		api.PUT("/urls/:urlId", h.URLs.UpdateURL)
		api.DELETE("/urls/:urlId", h.URLs.DeleteURL)

		api.GET("/metadata", h.URLs.GetMetadata)
		api.GET("/s/:slug", h.Public.GetSharedList)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}

	cfg.AllowOrigins = origins
	return cfg
}
