// main.go
package main

import (
	"context"
	"log"
	"time"

	"celebrity-booking/cmd"
	"celebrity-booking/internal/data/cache"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/internal/wire"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/mailer"
	"celebrity-booking/pkg/payment"
	"celebrity-booking/pkg/realtime"
	"celebrity-booking/pkg/storage"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database, config.App.Name, config.App.Debug, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	mongoClient, docs, err := database.InitMongo(ctx, config.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		disconnectCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	logger.Info("MongoDB connected", zap.String("database", config.Mongo.Database))

	rdb, err := database.InitRedis(ctx, config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()
	logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))

	// Initialize all repositories
	repos := repository.NewRepository(db, docs, logger)

	store, err := storage.NewLocalStore(config.Upload.Dir, config.Upload.PublicURL, config.Upload.MaxBytes, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	hub := realtime.NewHub(config.App.CORSOrigins, logger)
	otpWindow := time.Duration(config.OTP.ExpiryMinutes) * time.Minute

	// Wire all dependencies
	app := wire.Wiring(usecase.Deps{
		Repo:     repos,
		Tx:       database.NewTxManager(db),
		Config:   config,
		Tokens:   utils.NewTokenManager(config.JWT, config.App.Name),
		Mailer:   mailer.New(config.Email, logger),
		OTPGuard: cache.NewOTPGuard(rdb, config.OTP.ResendCooldown, otpWindow),
		Settings: cache.NewSettingsCache(rdb, config.App.SettingsCacheTTL),
		Gateway:  payment.NewStripeGateway(config.Stripe.SecretKey, config.Stripe.Currency, logger),
		Store:    store,
		Hub:      hub,
		Log:      logger,
	}, hub, map[string]wire.Probe{
		"postgres": db.Ping,
		"mongo":    func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	// Background workers
	janitor := usecase.NewJanitor(repos, config.Janitor.Interval, logger)
	go janitor.Run(ctx)
	go app.Limiter.Cleanup(ctx)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger, cancel); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
