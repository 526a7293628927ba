package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/cache"
	"github.com/fsdevblog/invoice-dashboard/internal/metrics"
	"github.com/fsdevblog/invoice-dashboard/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	LoginRoute   = "/login"
	LogoutRoute  = "/logout"
	MetricsRoute = "/metrics"

	DashboardRoute     = "/dashboard"
	InvoicesRoute      = "/invoices"
	InvoiceRoute       = "/invoices/:id"
	InvoiceDeleteRoute = "/invoices/:id/delete"
	CustomersRoute     = "/customers"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	AuthService      AuthServicer
	InvoiceService   InvoiceServicer
	DashboardService DashboardServicer
	// Cache кеш GET ответов панели. Тот же экземпляр должен инвалидироваться сервисом счетов.
	Cache        *cache.PathCache
	Metrics      *metrics.Metrics
	JWTSecretKey []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %s", err.Error())
	}
	if args.Metrics == nil {
		args.Metrics = metrics.New()
	}
	if args.Cache == nil {
		args.Cache = cache.New(0, 0)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(args.Metrics.Middleware())
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService, args.Metrics)
	invoicesHandler := NewInvoicesHandler(args.InvoiceService, args.Metrics)
	dashboardHandler := NewDashboardHandler(args.DashboardService)

	r.GET(MetricsRoute, gin.WrapH(args.Metrics.Handler()))

	r.GET(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey, DashboardRoute), authHandler.LoginPage)
	r.POST(LoginRoute, authHandler.Login)
	r.POST(LogoutRoute, authHandler.Logout)

	dashboard := r.Group(DashboardRoute)
	dashboard.Use(middlewares.AuthRequired(args.JWTSecretKey, LoginRoute))
	// ниже все роуты группы требуют авторизованного пользователя.
	cached := middlewares.Cache(args.Cache, args.Metrics)

	dashboard.GET("", cached, dashboardHandler.Overview)
	dashboard.GET(InvoicesRoute, cached, dashboardHandler.Invoices)
	dashboard.GET(CustomersRoute, cached, dashboardHandler.Customers)

	dashboard.GET(InvoiceRoute, invoicesHandler.Show)
	dashboard.POST(InvoicesRoute, invoicesHandler.Create)
	dashboard.POST(InvoiceRoute, invoicesHandler.Update)
	dashboard.POST(InvoiceDeleteRoute, invoicesHandler.Delete)
	return r, nil
}
