package app

import (
	"net/http"

	"family-ledger-go/internal/auth"
	"family-ledger-go/internal/config"
	"family-ledger-go/internal/db"
	ledgerdomain "family-ledger-go/internal/domain/ledger"
	orgdomain "family-ledger-go/internal/domain/organization"
	reportsdomain "family-ledger-go/internal/domain/reports"
	uploadsdomain "family-ledger-go/internal/domain/uploads"
	userdomain "family-ledger-go/internal/domain/user"
	"family-ledger-go/internal/repository/inmemory"
	ledgerrepo "family-ledger-go/internal/repository/postgres/ledger"
	orgrepo "family-ledger-go/internal/repository/postgres/organization"
	reportsrepo "family-ledger-go/internal/repository/postgres/reports"
	userrepo "family-ledger-go/internal/repository/postgres/user"
	"family-ledger-go/internal/storage"
	"family-ledger-go/internal/transport/httpserver"
	"family-ledger-go/internal/transport/httpserver/handler"
	"family-ledger-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	organizations := orgdomain.NewService(orgrepo.NewPostgres(dbConn))
	ledger := ledgerdomain.NewServiceWithCache(
		ledgerrepo.NewPostgres(dbConn),
		inmemory.NewCategoriesCache(),
		cfg.CategoryCacheTTL,
	)
	reports := reportsdomain.NewService(reportsrepo.NewPostgres(dbConn))

	// Receipt storage is optional; without credentials uploads return an
	// explicit error instead of failing startup.
	var receiptStore uploadsdomain.Store
	storageCfg := storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	}
	if storageCfg.Enabled() {
		client, err := storage.New(storageCfg)
		if err != nil {
			return nil, err
		}
		receiptStore = client
		log.Info("app: receipt storage enabled", "bucket", cfg.Storage.Bucket)
	} else {
		log.Warn("app: receipt storage not configured, uploads disabled")
	}
	uploads := uploadsdomain.NewService(receiptStore, cfg.Storage.PublicBaseURL)

	handlers := handler.New(users, organizations, ledger, reports, uploads, tokens, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, tokens)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
