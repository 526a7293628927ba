package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/invoice-dashboard/internal/app"
	"github.com/fsdevblog/invoice-dashboard/internal/config"
	"github.com/fsdevblog/invoice-dashboard/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)
	conf, confErr := config.LoadConfig(os.Args[1:])
	if confErr != nil {
		l.WithError(confErr).Fatal("load config")
	}

	err := app.New(conf, l).Run()
	if err == nil || errors.Is(err, context.Canceled) {
		l.Info("graceful shutdown")
		return
	}
	l.WithError(err).Fatal("app stopped")
}
