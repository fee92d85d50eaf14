package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-console/config"
	"github.com/fekuna/omnipos-console/internal/alert/deriver"
	"github.com/fekuna/omnipos-console/internal/auth"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/order/reconcile"
	"github.com/fekuna/omnipos-console/internal/seed"
	"github.com/fekuna/omnipos-console/internal/store"

	alertH "github.com/fekuna/omnipos-console/internal/alert/handler"
	alertRepoPkg "github.com/fekuna/omnipos-console/internal/alert/repository"
	alertUCPkg "github.com/fekuna/omnipos-console/internal/alert/usecase"

	catH "github.com/fekuna/omnipos-console/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-console/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-console/internal/category/usecase"

	custH "github.com/fekuna/omnipos-console/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-console/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-console/internal/customer/usecase"

	invH "github.com/fekuna/omnipos-console/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-console/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-console/internal/inventory/usecase"

	orderH "github.com/fekuna/omnipos-console/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-console/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-console/internal/order/usecase"

	prodH "github.com/fekuna/omnipos-console/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-console/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-console/internal/product/usecase"

	reportH "github.com/fekuna/omnipos-console/internal/report/handler"
	reportUCPkg "github.com/fekuna/omnipos-console/internal/report/usecase"

	settingsH "github.com/fekuna/omnipos-console/internal/settings/handler"
	settingsRepoPkg "github.com/fekuna/omnipos-console/internal/settings/repository"
	settingsUCPkg "github.com/fekuna/omnipos-console/internal/settings/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Load seed data
	var (
		snap store.Snapshot
		err  error
	)
	if cfg.Seed.File != "" {
		snap, err = seed.LoadFile(cfg.Seed.File)
	} else {
		snap, err = seed.Default()
	}
	if err != nil {
		appLogger.Fatal("Could not load seed data", zap.Error(err))
	}
	st := store.New(snap)
	appLogger.Info("Loaded seed data",
		zap.Int("products", len(snap.Products)),
		zap.Int("orders", len(snap.Orders)),
		zap.Int("customers", len(snap.Customers)),
	)

	// 4. Initialize Repositories
	prodRepo := prodRepoPkg.NewMemoryRepository(st)
	catRepo := catRepoPkg.NewMemoryRepository(st)
	orderRepo := orderRepoPkg.NewMemoryRepository(st)
	custRepo := custRepoPkg.NewMemoryRepository(st)
	invRepo := invRepoPkg.NewMemoryRepository()
	alertRepo := alertRepoPkg.NewMemoryRepository()
	settingsRepo := settingsRepoPkg.NewMemoryRepository(
		settingsUCPkg.Defaults(cfg.Settings.Currency, cfg.Settings.Theme, cfg.Auth.Email),
	)

	// 5. Order policy
	ids, err := reconcile.NewIDGenerator(cfg.Orders.IDStrategy, snap.Orders)
	if err != nil {
		appLogger.Fatal("Invalid order id strategy", zap.Error(err))
	}
	policy := reconcile.Policy{
		IDs:                  ids,
		RestoreStockOnDelete: cfg.Orders.RestoreStockOnDelete,
		GuestCustomerName:    cfg.Orders.GuestCustomerName,
		Today:                reconcile.Today,
	}
	thresholds := deriver.Thresholds{
		LowStock:             cfg.Alerts.LowStock,
		BatteryLow:           cfg.Alerts.BatteryLow,
		ActiveAlertsCritical: cfg.Alerts.ActiveAlertsCritical,
		SyncDelayMinutes:     cfg.Alerts.SyncDelayMinutes,
	}

	// 6. Initialize UseCases
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, cfg.Alerts.LowStock, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, invUC, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, invUC, policy, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	alertUC := alertUCPkg.NewAlertUseCase(alertRepo, prodRepo, thresholds, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(prodRepo, orderRepo, cfg.Alerts.LowStock, appLogger)
	settingsUC := settingsUCPkg.NewSettingsUseCase(settingsRepo, cfg.Settings.SupportedCurrencies, appLogger)

	// 7. Initialize Handlers
	router := console.NewRouter(appLogger)
	handlers := []console.Registrar{
		prodH.NewProductHandler(prodUC, orderUC, settingsUC, appLogger),
		catH.NewCategoryHandler(catUC, appLogger),
		orderH.NewOrderHandler(orderUC, appLogger),
		custH.NewCustomerHandler(custUC, appLogger),
		invH.NewInventoryHandler(invUC, appLogger),
		alertH.NewAlertHandler(alertUC, appLogger),
		reportH.NewReportHandler(reportUC, settingsUC, appLogger),
		settingsH.NewSettingsHandler(settingsUC, appLogger),
	}
	for _, h := range handlers {
		h.Register(router)
	}

	gate, err := auth.NewGate(cfg.Auth.Email, cfg.Auth.Password)
	if err != nil {
		appLogger.Fatal("Could not initialize credential gate", zap.Error(err))
	}

	// 8. Start Console
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Starting console", zap.String("env", cfg.Server.AppEnv), zap.String("order_ids", cfg.Orders.IDStrategy))

	c := console.New(router, gate, cfg.Server.Prompt, os.Stdout, appLogger)
	if err := c.Run(ctx, os.Stdin); err != nil {
		appLogger.Error("Console stopped with error", zap.Error(err))
	}

	appLogger.Info("Console stopped")
}
