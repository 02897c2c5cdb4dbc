package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/config"
	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/repository/database"
)

type mysqlConnector struct {
	logger logging.Logger
	db     *gorm.DB
}

func NewMySQLConnector(conf config.DatabaseConfig, logger logging.Logger) (database.Repository, error) {
	dsn, err := buildMySQLDSN(conf.Username, conf.Password, conf.Database, conf.Parameters)
	if err != nil {
		return nil, err
	}

	gormConfig := gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "mkt_",
		},
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	db, err := gorm.Open(mysql.Open(dsn), &gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	return &mysqlConnector{
		logger: logger,
		db:     db,
	}, nil
}

func (m *mysqlConnector) Migrate() error {
	err := m.db.AutoMigrate(
		&entities.User{},
		&entities.Job{},
		&entities.Contract{},
		&entities.Invoice{},
		&entities.Wallet{},
	)

	if err != nil {
		return err
	}

	return nil
}

// RunSerializable keeps the transaction short lived. The payment workflow
// issues a single joined read and three bounded writes, so any contention
// resolves quickly; MySQL reported deadlocks and lock wait timeouts are
// surfaced as a retryable error kind instead of a business rejection.
func (m *mysqlConnector) RunSerializable(ctx context.Context, fn func(database.Repository) error) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	err := m.db.WithContext(tCtx).Transaction(func(tx *gorm.DB) error {
		return fn(&mysqlConnector{logger: m.logger, db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil && isLockContention(err) {
		return apierrors.NewServiceUnavailable("the operation was cancelled due to database contention, please retry")
	}

	return err
}

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

func isLockContention(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrLockWaitTimeout || myErr.Number == mysqlErrDeadlock
	}

	return false
}

func buildMySQLDSN(username, password, database string, parameters []string) (string, error) {
	vals := map[string]string{
		"username": username,
		"password": password,
		"database": database,
	}

	for n, v := range vals {
		err := checkValue(n, v)
		if err != nil {
			return "", err
		}
	}

	paramStr := func() string {
		if len(parameters) == 0 {
			return ""
		}

		return fmt.Sprintf("?%s", strings.Join(parameters, "&"))
	}

	return fmt.Sprintf("%s:%s@%s%s", username, password, database, paramStr()), nil
}

func checkValue(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}

	return nil
}
