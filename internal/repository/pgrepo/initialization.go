package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	maxConnectAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// Connect устанавливает соединение с postgres и применяет миграции из migrationsDir.
// sslMode подставляется в DSN, если в нем не задан sslmode явно. Ошибки соединения повторяются
// до maxConnectAttempts раз с паузой connectRetryInterval, пока не отменен ctx.
func Connect(ctx context.Context, migrationsDir, dsn, sslMode string, l *logrus.Logger) (*pgxpool.Pool, error) {
	dsn = WithSSLMode(dsn, sslMode)

	var attempts uint
	var conn *pgxpool.Pool
	for {
		var connErr error
		conn, connErr = newPostgresConnection(ctx, dsn)
		if connErr == nil {
			break
		}
		attempts++
		if attempts >= maxConnectAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, maxConnectAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(connectRetryInterval):
		}
	}

	if migrationsDir != "" {
		if err := postgresMigrate(migrationsDir, dsn); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// WithSSLMode добавляет параметр sslmode в DSN (url или key=value формат), если он еще не указан.
func WithSSLMode(dsn, sslMode string) string {
	if sslMode == "" || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("sslmode", sslMode)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return strings.TrimSpace(dsn + " sslmode=" + sslMode)
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	// Проверяем, что соединение работает (Ping)
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
