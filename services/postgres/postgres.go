package postgres

import (
	"database/sql"
	"fmt"

	// postgres drivers
	_ "github.com/lib/pq"

	_ "github.com/jinzhu/gorm/dialects/postgres" // required for postgres dbs
	"go.uber.org/zap"
)

// New db connection
func New(l *zap.Logger, dbHost string, dbUser string, dbName string, dbPassword string) (*sql.DB, error) {
	l = l.With(zap.String("db_host", dbHost), zap.String("db_name", dbName))

	// connection string
	dbURI := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=disable password=%s", dbHost, dbUser, dbName, dbPassword)

	db, err := sql.Open("postgres", dbURI)
	if err != nil {
		l.Error("failed to connect to db", zap.Error(err))
		return nil, err
	}

	if err = db.Ping(); err != nil {
		l.Error("failed to ping db", zap.Error(err))
		return nil, err
	}

	l.Info("db connection successful")

	return db, nil
}
