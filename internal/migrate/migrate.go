package sqlite3

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	embedded "volunteerhub"
)

func UpAuthDB(db *sql.DB) error {
	sourceDriver, err := iofs.New(embedded.AuthMigrations, "migrations")
	if err != nil {
		return err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs",
		sourceDriver,
		"sessions", databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func UpBotDB(db *sql.DB) error {
	sourceDriver, err := iofs.New(embedded.BotMigrations, "bot/migrations")
	if err != nil {
		return err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs",
		sourceDriver,
		"bot", databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
