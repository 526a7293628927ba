package service

import (
	"context"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Revalidator помечает закешированный ответ для пути устаревшим.
type Revalidator interface {
	RevalidatePath(path string)
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, args repoargs.CreateInvoice) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, args repoargs.UpdateInvoice) error
	DeleteInvoice(ctx context.Context, id string) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetFiltered(ctx context.Context, filter repoargs.InvoiceFilter) ([]domain.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetLatest(ctx context.Context, limit uint) ([]domain.InvoiceWithCustomer, error)
	Count(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (paid int64, pending int64, err error)
}

type CustomerRepository interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, args repoargs.CreateCustomer) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
