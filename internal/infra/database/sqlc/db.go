package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"todo-api/pkg/resource"
)

// DSN builds a postgres:// URL from app.db.* properties. Credentials are
// URL-escaped, so passwords may contain spaces, quotes or '@'.
func DSN() string {
	query := url.Values{}
	query.Set("sslmode", resource.GetStringOrDefault("app.db.ssl-mode", "disable"))
	query.Set("search_path", resource.GetStringOrDefault("app.db.schema", "public"))

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(resource.GetString("app.db.username"), resource.GetString("app.db.password")),
		Host:     net.JoinHostPort(resource.GetString("app.db.host"), resource.GetString("app.db.port")),
		Path:     "/" + resource.GetString("app.db.database"),
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

// Open connects to postgres and verifies the connection.
func Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}
