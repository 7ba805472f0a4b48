package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/AndrewAitken/simp/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	path := conf.DbPath
	if path == "" {
		path = "simp.db"
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite allows one writer; a larger pool just queues on the file lock.
	db.SetMaxOpenConns(1)

	return db, nil
}
