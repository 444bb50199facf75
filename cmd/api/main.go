package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/talentbms/talent-bms-api/infrastructure/database/postgres"
	"github.com/talentbms/talent-bms-api/infrastructure/repository"
	"github.com/talentbms/talent-bms-api/internal/api"
	"github.com/talentbms/talent-bms-api/internal/config"
	"github.com/talentbms/talent-bms-api/internal/scheduler"
	"github.com/talentbms/talent-bms-api/internal/usecases/authenticating"
	"github.com/talentbms/talent-bms-api/internal/usecases/backfill"
	"github.com/talentbms/talent-bms-api/internal/usecases/recording"
	"github.com/talentbms/talent-bms-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	talentRepo := repository.NewTalentRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	reportingService := reporting.NewService(saleRepo, postRepo, productRepo)
	recordingService := recording.NewService(saleRepo, postRepo, productRepo, talentRepo)
	backfillService := backfill.NewService(saleRepo)

	backfillSyncService := scheduler.NewBackfillSyncService(backfillService, cfg)

	if err := backfillSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the backfill sync scheduler")
	} else {
		logrus.Info("backfill sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		recordingService,
		authenticator,
		backfillSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and behavior
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
