package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"listify/internal/api/handlers"
	"listify/internal/api/middleware"
	"listify/internal/brand"
	"listify/internal/config"
	"listify/internal/database"
	"listify/internal/logger"
	"listify/internal/validator"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, log *logger.Logger, db *database.Database) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// The brand lookup reads the catalog stored in the products table.
	v := validator.New(log, brand.NewCatalog(db.DB))

	// Initialize handlers
	productHandler := handlers.NewProductHandler(db.DB, log)
	validateHandler := handlers.NewValidateHandler(db.DB, log, v)
	reportHandler := handlers.NewReportHandler(db.DB, log)

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Validation
		v1.POST("/validate", validateHandler.Validate)
		v1.POST("/validate/batch", validateHandler.ValidateBatch)

		// Reports
		reports := v1.Group("/reports")
		{
			reports.GET("", reportHandler.List)
			reports.GET("/stats", reportHandler.Stats)
			reports.GET("/:id", reportHandler.Get)
		}

		// Products (brand catalog)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}
	}

	return &Server{
		config: cfg,
		logger: log,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}
