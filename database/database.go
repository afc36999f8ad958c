package database

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/config"
)

// QRCafe is the shared database handle; tests swap it for a mock.
var QRCafe *sql.DB

func ConnectAndMigrate() error {
	db, err := sql.Open("postgres", config.DatabaseURL())
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return err
	}

	QRCafe = db
	return migrateUp(db)
}

func migrateUp(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://database/migrations", "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Tx runs fn inside a transaction, committing on nil and rolling back on
// error or panic. Order creation relies on this for its all-or-nothing write.
func Tx(fn func(tx *sql.Tx) error) error {
	tx, err := QRCafe.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logrus.Errorf("rollback after panic failed: %v", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.Errorf("transaction rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}

func Shutdown() error {
	return QRCafe.Close()
}
