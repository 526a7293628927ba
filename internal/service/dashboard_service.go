package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	ItemsPerPage uint = 6
	// MaxPage ограничивает номер страницы, чтобы смещение не переполнялось.
	MaxPage             uint = 100000
	latestInvoicesLimit uint = 5
)

// DashboardService чтение данных для страниц панели.
type DashboardService struct {
	invoiceRepo  InvoiceRepository
	customerRepo CustomerRepository
}

func NewDashboardService(u uow.UOW) (*DashboardService, error) {
	invoiceRepo, invErr := uow.GetRepositoryAs[InvoiceRepository](u, uow.RepositoryName(repoargs.InvoiceRepoName))
	if invErr != nil {
		return nil, invErr
	}
	customerRepo, custErr := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if custErr != nil {
		return nil, custErr
	}
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}, nil
}

type Overview struct {
	Cards          domain.CardData
	LatestInvoices []domain.InvoiceWithCustomer
}

// Overview собирает данные главной страницы. Запросы выполняются параллельно, первая ошибка отменяет остальные.
func (d *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := d.invoiceRepo.Count(gCtx)
		overview.Cards.NumberOfInvoices = count
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		count, err := d.customerRepo.Count(gCtx)
		overview.Cards.NumberOfCustomers = count
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		paid, pending, err := d.invoiceRepo.StatusTotals(gCtx)
		overview.Cards.TotalPaid = paid
		overview.Cards.TotalPending = pending
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		latest, err := d.invoiceRepo.GetLatest(gCtx, latestInvoicesLimit)
		overview.LatestInvoices = latest
		return err //nolint:wrapcheck
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	return &overview, nil
}

// FilteredInvoices возвращает страницу page (с 1) счетов, подходящих под строку поиска query.
// Страницы дальше MaxPage заведомо пусты, в хранилище за ними не ходим.
func (d *DashboardService) FilteredInvoices(
	ctx context.Context,
	query string,
	page uint,
) ([]domain.InvoiceWithCustomer, error) {
	if page == 0 {
		page = 1
	}
	if page > MaxPage {
		return []domain.InvoiceWithCustomer{}, nil
	}
	invoices, err := d.invoiceRepo.GetFiltered(ctx, repoargs.InvoiceFilter{
		Query:  query,
		Limit:  ItemsPerPage,
		Offset: (page - 1) * ItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("filtered invoices: %w", err)
	}
	return invoices, nil
}

// InvoicePages возвращает количество страниц списка счетов для строки поиска query.
func (d *DashboardService) InvoicePages(ctx context.Context, query string) (uint, error) {
	count, err := d.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("invoice pages: %w", err)
	}
	if count <= 0 {
		return 0, nil
	}
	return (uint(count) + ItemsPerPage - 1) / ItemsPerPage, nil
}

func (d *DashboardService) Customers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := d.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	return customers, nil
}
