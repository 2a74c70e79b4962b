package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/config"
	"github.com/SaideLeon/nativespeak-api/internal/controller"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/pkg/database"
	"github.com/SaideLeon/nativespeak-api/pkg/logger"
	"github.com/SaideLeon/nativespeak-api/pkg/monitoring"
	"github.com/SaideLeon/nativespeak-api/pkg/security"
	"github.com/SaideLeon/nativespeak-api/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	unit       *repository.UnitRepository
	exercise   *repository.ExerciseRepository
	submission *repository.SubmissionRepository
	progress   *repository.ProgressRepository
	goal       *repository.GoalRepository
	sync       *repository.SyncRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	content   *service.ContentService
	grading   *service.GradingService
	progress  *service.ProgressService
	goal      *service.GoalService
	sync      *service.SyncService
	dashboard *service.DashboardService
	storage   *service.StorageService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	content      *controller.ContentController
	exercise     *controller.ExerciseController
	progress     *controller.ProgressController
	goal         *controller.GoalController
	sync         *controller.SyncController
	dashboard    *controller.DashboardController
	adminContent *controller.AdminContentController
	upload       *controller.UploadController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		unit:       repository.NewUnitRepository(db),
		exercise:   repository.NewExerciseRepository(db),
		submission: repository.NewSubmissionRepository(db),
		progress:   repository.NewProgressRepository(db),
		goal:       repository.NewGoalRepository(db),
		sync:       repository.NewSyncRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	progress := service.NewProgressService(repos.progress, repos.unit, db)

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		user:      service.NewUserService(repos.user),
		content:   service.NewContentService(repos.unit, repos.exercise, rdb, cfg.Cache.ContentTTL),
		grading:   service.NewGradingService(repos.exercise, repos.submission, progress, db),
		progress:  progress,
		goal:      service.NewGoalService(repos.goal),
		sync:      service.NewSyncService(repos.sync, db),
		dashboard: service.NewDashboardService(repos.submission, repos.progress, repos.goal),
		storage:   storage,
	}
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		content:      controller.NewContentController(s.content),
		exercise:     controller.NewExerciseController(s.grading),
		progress:     controller.NewProgressController(s.progress),
		goal:         controller.NewGoalController(s.goal),
		sync:         controller.NewSyncController(s.sync),
		dashboard:    controller.NewDashboardController(s.dashboard),
		adminContent: controller.NewAdminContentController(s.content, repos.exercise),
		upload:       controller.NewUploadController(s.storage),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized")

	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The cache is an accelerator, not a dependency.
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("nativespeak-api", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
