// Команда seed наполняет базу демо данными: юзер user@nextmail.com с паролем 123456, клиенты и счета.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/app"
	"github.com/fsdevblog/invoice-dashboard/internal/config"
	"github.com/fsdevblog/invoice-dashboard/internal/logger"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/pgrepo"
	"github.com/fsdevblog/invoice-dashboard/internal/seed"
	"github.com/fsdevblog/invoice-dashboard/internal/service/psswd"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := run(context.Background(), conf, l); err != nil {
		l.WithError(err).Fatal("seed failed")
	}
	l.Info("seed finished")
}

func run(ctx context.Context, conf *config.Config, l *logrus.Logger) error {
	conn, connErr := pgrepo.Connect(ctx, conf.MigrationsDir, conf.DatabaseDSN, conf.DatabaseSSLMode, l)
	if connErr != nil {
		return fmt.Errorf("connect: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := app.InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("init uow: %w", uowErr)
	}

	// 0 - случайный сид.
	data := seed.Placeholder(gofakeit.New(0), time.Now())
	return seed.New(unitOfWork, psswd.PasswordHash(0), l).Run(ctx, data) //nolint:wrapcheck
}
