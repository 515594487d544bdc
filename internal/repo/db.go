package repo

import (
	"RestAPIFurb/internal/model"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DBOptions параметры подключения к хранилищу.
type DBOptions struct {
	Driver string // sqlite | postgres
	Path   string // файл SQLite
	DSN    string // строка подключения Postgres
	Debug  bool   // SQL-лог gorm
}

// InitDB открывает соединение, настраивает пул и создаёт таблицы.
func InitDB(opts DBOptions) (*gorm.DB, error) {
	dial, err := dialector(opts)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if opts.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if opts.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
	} else {
		// SQLite допускает одного писателя
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Comanda{}, &model.Produto{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// CloseDB закрывает пул соединений.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialector(opts DBOptions) (gorm.Dialector, error) {
	switch opts.Driver {
	case "", "sqlite":
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite: empty database path")
		}
		// modernc.org/sqlite регистрируется под именем "sqlite" и не требует cgo
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: sqliteDSN(opts.Path)}, nil
	case "postgres":
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres: empty DSN")
		}
		return postgres.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", opts.Driver)
	}
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
