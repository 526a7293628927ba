package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/cache"
	"github.com/fsdevblog/invoice-dashboard/internal/config"
	"github.com/fsdevblog/invoice-dashboard/internal/metrics"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/pgrepo"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/internal/service"
	"github.com/fsdevblog/invoice-dashboard/internal/service/psswd"
	"github.com/fsdevblog/invoice-dashboard/internal/transport/api"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	cacheSize       = 256
	shutdownTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":    a.Config.RunAddress,
		"migrationsDir": a.Config.MigrationsDir,
		"sslMode":       a.Config.DatabaseSSLMode,
		"cacheTTL":      a.Config.CacheTTL.String(),
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(
		notifyCtx,
		a.Config.MigrationsDir,
		a.Config.DatabaseDSN,
		a.Config.DatabaseSSLMode,
		a.Logger,
	)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	pathCache := cache.New(cacheSize, a.Config.CacheTTL)
	appMetrics := metrics.New()
	jwtSecret := []byte(a.Config.JWTSecret)

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:         unitOfWork,
		Revalidator: pathCache,
		Hasher:      psswd.PasswordHash(0),
		JWTSecret:   jwtSecret,
		Logger:      a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		AuthService:      services.AuthService,
		InvoiceService:   services.InvoiceService,
		DashboardService: services.DashboardService,
		Cache:            pathCache,
		Metrics:          appMetrics,
		JWTSecretKey:     jwtSecret,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: api.DefaultServiceTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// InitUOW регистрирует репозитории приложения в unit of work поверх пула conn.
func InitUOW(conn uow.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.InvoiceRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInvoiceRepository(dbtx)
		},
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
