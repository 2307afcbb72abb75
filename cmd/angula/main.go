package main

import (
	"context"
	"errors"
	"flag"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/angulacms/angula/internal/config"
	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database"
	"github.com/angulacms/angula/internal/infrastructure/repository"
	"github.com/angulacms/angula/internal/present/rest"
	restmiddleware "github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/service"
	"github.com/angulacms/angula/internal/usecase"
)

const publicCacheTTLSeconds = 60

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	conf, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if conf.Server.JwtSecret == "" {
		logger.Fatal("jwt secret is not configured")
	}

	if conf.Server.EnableTrace {
		shutdown, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			logger.Fatal("failed to set up tracing", zap.Error(err))
		}
		defer shutdown()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := database.MigratePostgres(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	pageRepo := repository.NewPageRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	pageUC := usecase.NewPageUsecase(pageRepo)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	articleUC := usecase.NewArticleUsecase(articleRepo)
	eventUC := usecase.NewEventUsecase(eventRepo)
	newsletterUC := usecase.NewNewsletterUsecase(subscriberRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo, repository.NewViewCounter(rdb))
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)
	userUC := usecase.NewUserUsecase(userRepo)

	ctx := context.Background()
	err = settingsUC.EnsureDefaults(ctx, domain.Settings{
		SiteName:      conf.Site.Name,
		Languages:     conf.Site.Languages,
		DefaultLocale: conf.Site.DefaultLocale,
	})
	if err != nil {
		logger.Fatal("failed to seed settings", zap.Error(err))
	}
	if err := seedAdmin(ctx, userRepo, logger); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	authService := service.NewAuthService(conf.Server.JwtSecret, userRepo)
	authMiddleware := restmiddleware.NewAuthMiddleware(authService)

	handler := rest.NewHandler(
		pageUC,
		menuUC,
		articleUC,
		eventUC,
		newsletterUC,
		analyticsUC,
		settingsUC,
		userUC,
		authService,
		repository.NewRenderCache(mc, publicCacheTTLSeconds),
	)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("angula"))
	}

	handler.RegisterRoutes(e, authMiddleware)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracer(endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	return func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}

// seedAdmin creates the initial administrator on an empty database
// with a fixed default password. Change it after first login.
func seedAdmin(ctx context.Context, users *repository.UserRepository, logger *zap.Logger) error {
	_, err := users.GetByEmail(ctx, "admin@localhost")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := service.HashPassword("admin123")
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, domain.User{
		Email:    "admin@localhost",
		Name:     "Admin",
		Role:     domain.RoleAdmin,
		Password: hash,
	})
	if err != nil {
		return err
	}

	logger.Info("seeded default admin user", zap.String("email", "admin@localhost"))
	return nil
}
