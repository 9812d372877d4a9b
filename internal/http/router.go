package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Banana-Clint/Bricool/internal/config"
	"github.com/Banana-Clint/Bricool/internal/http/middleware"
)

const serviceVersion = "1.0.0"

func NewRouter(customers *CustomerHandler, contractors *ContractorHandler, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/health", health)
	router.GET("/", welcome)

	api := router.Group("/api")
	customers.Register(api)
	contractors.Register(api)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	allowAll := len(cfg.CORS.AllowedOrigins) == 0
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return corsCfg
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Bricool Directory API",
		"version":   serviceVersion,
	})
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Bricool Directory API",
		"endpoints": gin.H{
			"customers": gin.H{
				"getAll":  "GET /api/customers",
				"getById": "GET /api/customers/:id",
				"search":  "GET /api/customers/search?q=term",
				"create":  "POST /api/customers",
				"update":  "PUT /api/customers/:id",
				"delete":  "DELETE /api/customers/:id",
			},
			"contractors": gin.H{
				"getAll":      "GET /api/contractors",
				"getById":     "GET /api/contractors/:id",
				"search":      "GET /api/contractors/search?q=term",
				"filter":      "GET /api/contractors/filter",
				"stats":       "GET /api/contractors/stats",
				"statusCount": "GET /api/contractors/status-count",
				"typeCount":   "GET /api/contractors/type-count",
				"export":      "GET /api/contractors/export",
				"exportPdf":   "GET /api/contractors/export/pdf",
				"create":      "POST /api/contractors",
				"update":      "PUT /api/contractors/:id",
				"delete":      "DELETE /api/contractors/:id",
				"deactivate":  "PATCH /api/contractors/:id/deactivate",
				"activate":    "PATCH /api/contractors/:id/activate",
				"rating":      "PATCH /api/contractors/:id/rating",
				"addJob":      "PATCH /api/contractors/:id/add-job",
				"bulkUpdate":  "POST /api/contractors/bulk/update",
				"bulkDeact":   "POST /api/contractors/bulk/deactivate",
			},
			"health": "GET /health",
		},
	})
}
