package db

import (
	"github.com/jmoiron/sqlx"
)

// LDb wraps sqlx so repositories share one handle and schema bootstrap.
type LDb struct {
	*sqlx.DB
}

func NewLDb(driverName, dataSourceUrl string) (*LDb, error) {
	db, err := sqlx.Connect(driverName, dataSourceUrl)
	if err != nil {
		return nil, err
	}

	return &LDb{db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS saved_course (
	id SERIAL PRIMARY KEY,
	title TEXT UNIQUE NOT NULL,
	link TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_account (
	id SERIAL PRIMARY KEY,
	username VARCHAR(80) UNIQUE NOT NULL,
	password VARCHAR(128) NOT NULL
);
`

// InitSchema creates the tables on first start. Safe to call on every boot.
func (ldb *LDb) InitSchema() error {
	_, err := ldb.Exec(schema)
	return err
}
