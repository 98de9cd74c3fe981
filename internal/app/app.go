// Package app wires the application together: infrastructure, domain
// services, adapters, and routes.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	// Domains
	"github.com/washdesk/server/internal/domain/catalog"
	"github.com/washdesk/server/internal/domain/customer"
	"github.com/washdesk/server/internal/domain/order"
	"github.com/washdesk/server/internal/domain/wizard"

	// Adapters
	ginhandler "github.com/washdesk/server/internal/adapter/inbound/gin"
	"github.com/washdesk/server/internal/adapter/outbound/geocode"
	"github.com/washdesk/server/internal/adapter/outbound/postgres"
	redisadapter "github.com/washdesk/server/internal/adapter/outbound/redis"

	// Ports
	"github.com/washdesk/server/internal/port/inbound"

	// Shared infrastructure
	sharedcache "github.com/washdesk/server/internal/shared/cache"
	"github.com/washdesk/server/internal/shared/config"
	"github.com/washdesk/server/internal/shared/database"
	"github.com/washdesk/server/internal/shared/logger"
	"github.com/washdesk/server/internal/shared/metrics"
	"github.com/washdesk/server/internal/shared/middleware"
)

// App holds the wired application.
type App struct {
	config    *config.Config
	db        *gorm.DB
	redis     *goredis.Client
	router    *gin.Engine
	logger    *logger.Logger
	zapLogger *zap.Logger
	metrics   *metrics.Metrics

	// Domain services
	catalogDomain  catalog.CatalogDomain
	customerDomain customer.CustomerDomain
	wizardDomain   wizard.WizardDomain
	orderDomain    order.OrderDomain

	// HTTP handlers
	wizardHandler   inbound.WizardHandlerPort
	orderHandler    inbound.OrderHandlerPort
	customerHandler inbound.CustomerHandlerPort
	catalogHandler  inbound.CatalogHandlerPort
}

// New creates a fully wired application.
func New(cfg *config.Config) (*App, error) {
	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	zapLog, err := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	app := &App{
		config:    cfg,
		logger:    log,
		zapLogger: zapLog,
		metrics:   metrics.New("washdesk"),
	}

	if err := app.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	app.initDomains()
	app.initHandlers()

	app.router = app.setupRouter()
	app.registerRoutes()

	return app, nil
}

// initInfrastructure initializes database and cache connections.
func (a *App) initInfrastructure() error {
	db, err := database.New(&a.config.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.db = db

	redisClient, err := sharedcache.NewRedisClient(&a.config.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	a.redis = redisClient

	return nil
}

// initDomains initializes domain services with their adapters.
func (a *App) initDomains() {
	catalogDB := postgres.NewCatalogAdapter(a.db)
	vehicleDB := postgres.NewVehicleAdapter(a.db)
	catalogCache := redisadapter.NewCatalogCache(a.redis, a.config.Wizard.CatalogCacheTTL)
	a.catalogDomain = catalog.NewCatalogDomain(catalogDB, vehicleDB, catalogCache, a.metrics, a.zapLogger)

	customerDB := postgres.NewCustomerAdapter(a.db)
	a.customerDomain = customer.NewCustomerDomain(customerDB, a.zapLogger)

	draftStore := redisadapter.NewDraftStore(a.redis, a.config.Wizard.DraftExpiry)
	a.wizardDomain = wizard.NewWizardDomain(draftStore, a.catalogDomain, a.config.Wizard, a.metrics, a.zapLogger)

	orderDB := postgres.NewOrderAdapter(a.db)
	a.orderDomain = order.NewOrderDomain(orderDB, customerDB, a.wizardDomain, a.config.Wizard, a.metrics, a.zapLogger)
}

// initHandlers initializes inbound HTTP adapters.
func (a *App) initHandlers() {
	geocoder := geocode.NewNominatimClient(a.config.Geocode, a.metrics, a.zapLogger)

	a.wizardHandler = ginhandler.NewWizardHandler(a.wizardDomain)
	a.orderHandler = ginhandler.NewOrderHandler(a.orderDomain)
	a.customerHandler = ginhandler.NewCustomerHandler(a.customerDomain)
	a.catalogHandler = ginhandler.NewCatalogHandler(a.catalogDomain, geocoder)
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	if a.config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics(a.metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// registerRoutes registers all HTTP routes.
func (a *App) registerRoutes() {
	v1 := a.router.Group("/api/v1")

	wizardGroup := v1.Group("/wizard")
	{
		wizardGroup.GET("/draft", a.wizardHandler.GetDraft)
		wizardGroup.PUT("/draft", a.wizardHandler.SaveDraft)
		wizardGroup.DELETE("/draft", a.wizardHandler.ClearDraft)
		wizardGroup.POST("/draft/advance", a.wizardHandler.Advance)
		wizardGroup.POST("/draft/back", a.wizardHandler.Back)
		wizardGroup.POST("/quote", a.wizardHandler.Quote)
	}

	orderGroup := v1.Group("/orders")
	{
		orderGroup.POST("", a.orderHandler.Submit)
		orderGroup.PUT("", a.orderHandler.Resubmit)
		orderGroup.GET("", a.orderHandler.List)
		orderGroup.GET("/:id", a.orderHandler.Get)
		orderGroup.POST("/:id/status", a.orderHandler.UpdateStatus)
	}

	customerGroup := v1.Group("/customers")
	{
		customerGroup.POST("", a.customerHandler.Create)
		customerGroup.GET("", a.customerHandler.List)
		customerGroup.GET("/:id", a.customerHandler.Get)
		customerGroup.PUT("/:id", a.customerHandler.Update)
	}

	v1.GET("/catalog", a.catalogHandler.Get)
	v1.DELETE("/catalog/cache", a.catalogHandler.InvalidateCache)
	v1.GET("/vehicles/type", a.catalogHandler.VehicleType)
	v1.POST("/geocode/reverse", a.catalogHandler.ReverseGeocode)
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Stop releases application resources.
func (a *App) Stop() {
	if a.zapLogger != nil {
		_ = a.zapLogger.Sync()
	}
	if a.redis != nil {
		_ = sharedcache.Close(a.redis)
	}
	if a.db != nil {
		_ = database.Close(a.db)
	}
}
