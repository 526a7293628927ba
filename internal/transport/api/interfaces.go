package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/metrics"
	"github.com/fsdevblog/invoice-dashboard/internal/service"
)

// AuthServicer интерфейс исключительно для моков.
type AuthServicer interface {
	Login(ctx context.Context, args service.LoginArgs) (*domain.User, string, error)
}

type InvoiceServicer interface {
	Create(ctx context.Context, values service.FormValues) *service.FormState
	Update(ctx context.Context, id string, values service.FormValues) *service.FormState
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Invoice, error)
}

type DashboardServicer interface {
	Overview(ctx context.Context) (*service.Overview, error)
	FilteredInvoices(ctx context.Context, query string, page uint) ([]domain.InvoiceWithCustomer, error)
	InvoicePages(ctx context.Context, query string) (uint, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
}

// Observer счетчики метрик, которые обновляют обработчики.
type Observer interface {
	ObserveMutation(operation string, outcome metrics.Outcome)
	ObserveLogin(result string)
	ObserveCache(hit bool)
}
