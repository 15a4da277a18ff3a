package database

import (
	"context"
	"fmt"
	"log"
	"moodjournal-service/internal/app/config"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func PostgresDSN(driverConfig *config.DriverConfig) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(driverConfig.Postgres.Username, driverConfig.Postgres.Password),
		Host:     fmt.Sprintf("%s:%s", driverConfig.Postgres.Host, driverConfig.Postgres.Port),
		Path:     driverConfig.Postgres.DbName,
		RawQuery: url.Values{"sslmode": []string{driverConfig.Postgres.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func NewPostgresPool(ctx context.Context, driverConfig *config.DriverConfig) *pgxpool.Pool {
	poolConfig, err := pgxpool.ParseConfig(PostgresDSN(driverConfig))
	if err != nil {
		log.Fatalf("Failed to parse postgres config: %s", err.Error())
	}
	poolConfig.MaxConns = int32(driverConfig.Postgres.MaxConns)
	poolConfig.MinConns = int32(driverConfig.Postgres.MinConns)
	poolConfig.MaxConnLifetime = time.Duration(driverConfig.Postgres.MaxConnLifetime) * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("Failed to open postgres pool: %s", err.Error())
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")
	return pool
}
