package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/handlers/contact"
	"github.com/masfiqurnehal/portfolio-backend/internal/server/handlers/status"
	"github.com/masfiqurnehal/portfolio-backend/internal/server/middlewares"
)

func SetupRoutes(svc *Services, config *Config) http.Handler {
	r := gin.New()

	statusH := status.New(svc.Store)
	contactH := contact.New(svc.Store, svc.Mailer)

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.GZIP())
	r.Use(middlewares.CORS(config.CORSOrigins))

	api := r.Group("/api")
	{
		api.GET("/", RootHandler)
		api.POST("/status", statusH.Create)
		api.GET("/status", statusH.List)
		api.POST("/contact", contactH.Submit)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method not allowed",
		})
	})

	return r.Handler()
}

// RootHandler answers the liveness probe with a static greeting.
func RootHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"message": "Hello World",
	})
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
