package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gigmarket/billing-service/internal/config"
	"github.com/gigmarket/billing-service/internal/interaction"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/repository/database"
	"github.com/gigmarket/billing-service/internal/repository/database/inmemory"
	"github.com/gigmarket/billing-service/internal/repository/database/mysql"
	"github.com/gigmarket/billing-service/internal/server"
)

func main() {
	configFilePath := flag.String("config", "config.yaml", "path to the yaml configuration file")
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	flag.Parse()

	logger := logging.NewLogger()

	conf, err := config.LoadConfiguration(*configFilePath)
	if err != nil {
		logger.Fatal("could not load configuration from %s. [error]: %v", *configFilePath, err)
	}

	if err := config.Validate(conf, logger.Error); err != nil {
		logger.Fatal("%v", err)
	}

	logging.ApplySeverity(conf.Logging.Severity)

	repo, err := createRepository(conf, logger)
	if err != nil {
		logger.Fatal("could not connect to the database. [error]: %v", err)
	}

	if *migrate {
		if err := repo.Migrate(); err != nil {
			logger.Fatal("could not migrate the database. [error]: %v", err)
		}
	}

	i, err := interaction.NewServiceInteractor(repo, logger)
	if err != nil {
		logger.Fatal("could not create the service interactor. [error]: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := server.CreateRouter(i, &conf.Security)
	srv := server.NewServer(ctx, &conf.Server, router)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
		logger.Info("stopping services now")

		tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			logger.Fatal("couldn't shutdown server gracefully. [error]: %v", err)
		}
	}()

	logger.Info("serving on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped unexpectedly. [error]: %v", err)
	}
}

func createRepository(conf *config.Application, logger logging.Logger) (database.Repository, error) {
	if conf.Database.Use == config.Mysql {
		return mysql.NewMySQLConnector(conf.Database, logger)
	}

	logger.Warn("using the in-memory database, all data is lost on restart")
	return inmemory.NewInMemoryProvider(), nil
}
