package main

import (
	"net/http"

	"github.com/Matoxx01/mikes-backend/internal/handler"
	mid "github.com/Matoxx01/mikes-backend/internal/middleware"
	"github.com/Matoxx01/mikes-backend/internal/store"
	"github.com/Matoxx01/mikes-backend/pkg/config"
	"github.com/Matoxx01/mikes-backend/pkg/database"
	"github.com/Matoxx01/mikes-backend/pkg/jwtutil"
	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting mikes-backend",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.Auth)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.Open(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if appConfig.Auth.APIKey == "" {
		log.Warn("API_KEY is not configured, write endpoints will refuse requests")
	}

	st := store.New(db, appConfig.Store.StatementTimeout)
	h := handler.New(st)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Every write goes through the API key gate
	apiKey := mid.APIKeyMiddleware(appConfig.Auth.APIKey)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Authentication
	e.POST("/login", h.Login)

	// Clients
	e.GET("/client", h.ListClients)
	e.POST("/client", h.CreateClient, apiKey)
	e.DELETE("/client/:id", h.DeleteClient, apiKey)
	e.PUT("/client/:id", h.RenameClient, apiKey)

	// Nominas
	e.GET("/nomina", h.ListNominas)
	e.POST("/nomina", h.CreateNomina, apiKey)
	e.DELETE("/nomina/:id", h.DeleteNomina, apiKey)
	e.PUT("/nomina/changeName", h.RenameNomina, apiKey)

	// Users
	e.GET("/users", h.ListUsers)
	e.GET("/users/search", h.SearchUsers)
	e.POST("/user", h.CreateUser, apiKey)
	e.DELETE("/user/:id", h.DeleteUser, apiKey)
	e.PUT("/user/:id/comment", h.UpdateUserComment, apiKey)

	// Products
	e.GET("/products", h.ListProducts)
	e.GET("/allproducts", h.ListAllProducts)
	e.POST("/product/add", h.AddProduct, apiKey)
	e.PUT("/product/:id", h.UpdateProductQuantity, apiKey)
	e.PUT("/product/saveSize/:id", h.UpdateProductSize, apiKey)
	e.DELETE("/product/del/:id", h.DeleteProduct, apiKey)

	// Bulk import and aggregated reads
	e.POST("/import_bulk", h.BulkImport, apiKey)
	e.GET("/users_with_products", h.UsersWithProducts)
	e.GET("/report", h.Report)
	e.GET("/exportExcel", h.ExportExcel)
	e.GET("/exportOptimized", h.ExportOptimized)

	// Employees
	e.GET("/employees", h.ListEmployees)
	e.POST("/employee", h.CreateEmployee, apiKey)
	e.PUT("/employee/:id", h.UpdateEmployee, apiKey)
	e.DELETE("/employee/:id", h.DeleteEmployee, apiKey)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
