package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/provhatrahman/Ahwaaz/internal/config"
	"github.com/provhatrahman/Ahwaaz/internal/infra/httpclient"
	s3infra "github.com/provhatrahman/Ahwaaz/internal/infra/s3"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
	redrepo "github.com/provhatrahman/Ahwaaz/internal/repo/redis"
	artistssvc "github.com/provhatrahman/Ahwaaz/internal/services/artists"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	discoverysvc "github.com/provhatrahman/Ahwaaz/internal/services/discovery"
	favoritessvc "github.com/provhatrahman/Ahwaaz/internal/services/favorites"
	feedbacksvc "github.com/provhatrahman/Ahwaaz/internal/services/feedback"
	geosvc "github.com/provhatrahman/Ahwaaz/internal/services/geo"
	mediasvc "github.com/provhatrahman/Ahwaaz/internal/services/media"
	ratesvc "github.com/provhatrahman/Ahwaaz/internal/services/rate"
	reportssvc "github.com/provhatrahman/Ahwaaz/internal/services/reports"
	userssvc "github.com/provhatrahman/Ahwaaz/internal/services/users"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)
	rateRepo := redrepo.NewRateRepo(redisClient)
	prefsRepo := redrepo.NewPrefsRepo(redisClient)

	userRepo := pgrepo.NewUserRepo(pool)
	artistRepo := pgrepo.NewArtistRepo(pool)
	favoriteRepo := pgrepo.NewFavoriteRepo(pool)
	reportRepo := pgrepo.NewReportRepo(pool)
	feedbackRepo := pgrepo.NewFeedbackRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	oauthFetcher := authsvc.NewUserInfoFetcher(
		httpclient.New(cfg.Auth.OAuth.Timeout),
		cfg.Auth.OAuth.UserInfoURL,
	)
	authService := authsvc.NewService(jwtManager, sessionRepo, userRepo, oauthFetcher, cfg.Auth.RefreshTTL)

	geoService := geosvc.NewService(cfg.Geo.Cities)
	artistService := artistssvc.NewService(artistRepo, geoService)
	discoveryService := discoverysvc.NewService(artistRepo, favoriteRepo, time.Now().UnixNano())
	favoriteService := favoritessvc.NewService(favoriteRepo, artistRepo)

	reportLimiter := ratesvc.NewLimiter(rateRepo, "report", cfg.Limits.ReportsPerMinute, cfg.Limits.ReportsPer10Sec)
	feedbackLimiter := ratesvc.NewLimiter(rateRepo, "feedback", cfg.Limits.FeedbackPerMinute, cfg.Limits.FeedbackPer10Sec)
	reportService := reportssvc.NewService(reportRepo, artistRepo, reportLimiter)
	feedbackService := feedbacksvc.NewService(feedbackRepo, feedbackLimiter)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}

	mediaStorage := mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket)
	mediaService := mediasvc.NewService(mediaStorage, cfg.Media.MaxUploadBytes)

	userService := userssvc.NewService(
		pool,
		userRepo,
		artistRepo,
		favoriteRepo,
		reportRepo,
		feedbackRepo,
		sessionRepo,
		prefsRepo,
	)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		AuthService:      authService,
		ArtistService:    artistService,
		DiscoveryService: discoveryService,
		FavoriteService:  favoriteService,
		MediaService:     mediaService,
		ReportService:    reportService,
		FeedbackService:  feedbackService,
		UserService:      userService,
		Logger:           log,
		Config:           cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
