package db

import (
	"errors"
	"fmt"
	"time"

	"group-decision/internal/model"
	"group-decision/pkg/logger"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MySQL error numbers for InnoDB lock conflicts.
const (
	mysqlErrDeadlock    = 1213
	mysqlErrLockTimeout = 1205
)

var DB *gorm.DB

// Open connects with the named driver ("mysql" or "sqlite") and migrates the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
		// profiles are an optional mirror of the identity provider
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		// a single connection keeps :memory: databases shared and serialises writers
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// InitDB opens the database and stores it in DB.
func InitDB(driver, dsn string) error {
	conn, err := Open(driver, dsn)
	if err != nil {
		return err
	}
	DB = conn
	logger.L.Info("Database connected and migrated successfully", zap.String("driver", driver))
	return nil
}

func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.GroupMember{},
		&model.GroupProperty{},
		&model.Vote{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SupportsRowLocks reports whether SELECT ... FOR UPDATE / FOR SHARE is available.
func SupportsRowLocks(conn *gorm.DB) bool {
	return conn.Dialector.Name() != "sqlite"
}

// IsLockConflict reports whether err is an InnoDB deadlock or lock wait
// timeout, after which the whole transaction may be retried.
func IsLockConflict(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockTimeout
}

// NewGormLogger routes gorm's slow-query and error lines through logger.L.
// Lookups that find nothing are expected and stay silent.
func NewGormLogger() gormlogger.Interface {
	return gormlogger.New(zapWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	logger.L.Sugar().Warnf(format, args...)
}
