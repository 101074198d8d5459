package config

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// ConnectDB opens the pgx pool and verifies connectivity. The database may
// still be starting when we are, so the ping is retried with backoff before
// the caller gives up and exits.
func ConnectDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Printf("[DB] Failed to parse config: %v", err)
		return nil, err
	}

	poolCfg.MaxConns = 50
	poolCfg.MinConns = 10
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Printf("[DB] Failed to create pool: %v", err)
		return nil, err
	}

	log.Println("[DB] Pool created, testing connection...")

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := dbpool.Ping(ctx); err != nil {
			log.Printf("[DB] Ping failed, retrying: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		dbpool.Close()
		return nil, err
	}

	log.Println("[DB] Connected successfully")
	return dbpool, nil
}
