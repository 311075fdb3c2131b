package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"taskboard/internal/auth"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
}

// Init connects the backing stores and wires every route.
func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(cfg, db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = cache.Connect(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}

	gin.SetMode(cfg.GinMode)
	engine := New(cfg, db, rdb, prometheus.NewRegistry())

	return &Server{
		Engine: engine,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
	}, nil
}

// New builds the gin engine over an open database. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, reg *prometheus.Registry) *gin.Engine {
	validation.RegisterGin()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.StandardLogger()))
	metrics := middleware.NewMetrics("taskboard", reg)
	r.Use(metrics.Handler())

	// Initialize repositories
	var boardStore service.BoardStore = repository.NewBoardRepository(db)
	var recentStore service.RecentStore = repository.NewRecentRepository(db)
	if rdb != nil {
		boardStore = cache.NewBoards(boardStore, rdb, cfg.CacheTTL)
		recentStore = cache.NewRecent(recentStore, rdb, cfg.CacheTTL)
	}
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, tokens)
	boardService := service.NewBoardService(boardStore, recentStore)
	listService := service.NewListService(boardStore, listRepo)
	cardService := service.NewCardService(listRepo, cardRepo)
	labelService := service.NewLabelService(boardStore, listRepo, cardRepo, labelRepo)
	accessService := service.NewAccessService(boardStore, listRepo, cardRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	listHandler := handler.NewListHandler(listService, accessService)
	cardHandler := handler.NewCardHandler(cardService, accessService)
	labelHandler := handler.NewLabelHandler(labelService, accessService)

	checks := map[string]handler.Pinger{
		"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	healthHandler := handler.NewHealthHandler(checks)

	// Public routes
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/auth/register", userHandler.Register)
	r.POST("/auth/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens, authService))
	{
		authorized.POST("/auth/logout", userHandler.Logout)
		authorized.GET("/me", userHandler.Me)
		authorized.GET("/me/recent-boards", boardHandler.Recent)

		// Board routes
		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.PUT("/boards/:id", boardHandler.Update)
		authorized.POST("/boards/:id/views", boardHandler.RecordView)
		authorized.GET("/users/:id/boards", boardHandler.ListByOwner)

		// List routes
		authorized.GET("/boards/:id/lists", listHandler.GetByBoard)
		authorized.POST("/lists", listHandler.Create)
		authorized.PUT("/lists/:id", listHandler.Update)

		// Card routes
		authorized.GET("/lists/:id/cards", cardHandler.GetByList)
		authorized.POST("/cards", cardHandler.Create)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.PUT("/cards/:id/position", cardHandler.UpdatePosition)
		authorized.PATCH("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)

		// Label routes
		authorized.GET("/boards/:id/labels", labelHandler.GetByBoard)
		authorized.POST("/labels", labelHandler.Create)
		authorized.POST("/cards/:id/labels/:label_id", labelHandler.Attach)
		authorized.DELETE("/cards/:id/labels/:label_id", labelHandler.Detach)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("❌ Server forced to shutdown: %s", err)
	}
	s.Close()

	log.Info("✅ Server exited properly")
}

// Close releases the database and redis connections.
func (s *Server) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis")
		}
	}
	if err := database.Close(s.DB); err != nil {
		log.WithError(err).Warn("failed to close database")
	}
}
