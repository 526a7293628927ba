package pgrepo

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

// errRollback откатывает транзакцию теста, чтобы не оставлять данных в базе.
var errRollback = errors.New("rollback")

type repos struct {
	invoices  *InvoiceRepository
	customers *CustomerRepository
	users     *UserRepository
}

// RepositoryIntegrationTestSuite запускается только при заданном DATABASE_URI. Каждый тест работает в
// собственной транзакции, которая откатывается.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *uow.UnitOfWork
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	if os.Getenv("DATABASE_URI") == "" {
		t.Skip("DATABASE_URI is not set, skipping postgres integration tests")
	}
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	sslMode := os.Getenv("DATABASE_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := Connect(ctx, "../../db/migrations", os.Getenv("DATABASE_URI"), sslMode, l)
	s.Require().NoError(err)
	s.pool = pool

	s.uow = uow.NewUnitOfWork(pool)
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.InvoiceRepoName), func(db uow.DBTX) uow.Repository {
		return NewInvoiceRepository(db)
	}))
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.CustomerRepoName), func(db uow.DBTX) uow.Repository {
		return NewCustomerRepository(db)
	}))
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.UserRepoName), func(db uow.DBTX) uow.Repository {
		return NewUserRepository(db)
	}))
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositoryIntegrationTestSuite) inTx(fn func(ctx context.Context, r repos)) {
	err := s.uow.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
		invoices, invErr := uow.GetAs[*InvoiceRepository](tx, uow.RepositoryName(repoargs.InvoiceRepoName))
		s.Require().NoError(invErr)
		customers, custErr := uow.GetAs[*CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		s.Require().NoError(custErr)
		users, userErr := uow.GetAs[*UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		s.Require().NoError(userErr)

		fn(ctx, repos{invoices: invoices, customers: customers, users: users})
		return errRollback
	})
	s.Require().ErrorIs(err, errRollback)
}

func (s *RepositoryIntegrationTestSuite) createCustomer(ctx context.Context, r repos) repoargs.CreateCustomer {
	customer := repoargs.CreateCustomer{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		ImageURL: "/customers/" + gofakeit.Username() + ".png",
	}
	s.Require().NoError(r.customers.CreateCustomer(ctx, customer))
	return customer
}

func (s *RepositoryIntegrationTestSuite) TestInvoiceLifecycle() {
	s.inTx(func(ctx context.Context, r repos) {
		customer := s.createCustomer(ctx, r)
		other, otherErr := r.invoices.CreateInvoice(ctx, repoargs.CreateInvoice{
			CustomerID: customer.ID,
			Amount:     500,
			Status:     domain.InvoiceStatusPaid,
			Date:       time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(otherErr)

		before, countErr := r.invoices.Count(ctx)
		s.Require().NoError(countErr)

		created, createErr := r.invoices.CreateInvoice(ctx, repoargs.CreateInvoice{
			CustomerID: customer.ID,
			Amount:     1999,
			Status:     domain.InvoiceStatusPending,
			Date:       time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(createErr)
		s.NotEmpty(created.ID)
		s.Equal(int64(1999), created.Amount)
		s.Equal("2026-10-17", created.Date.Format("2006-01-02"))

		after, _ := r.invoices.Count(ctx)
		s.Equal(before+1, after)

		s.Require().NoError(r.invoices.UpdateInvoice(ctx, repoargs.UpdateInvoice{
			ID:         created.ID,
			CustomerID: customer.ID,
			Amount:     5000,
			Status:     domain.InvoiceStatusPaid,
		}))
		updated, findErr := r.invoices.FindByID(ctx, created.ID)
		s.Require().NoError(findErr)
		s.Equal(int64(5000), updated.Amount)
		s.Equal(domain.InvoiceStatusPaid, updated.Status)
		// дата при обновлении не меняется.
		s.Equal(created.Date, updated.Date)

		deleted, deleteErr := r.invoices.DeleteInvoice(ctx, created.ID)
		s.Require().NoError(deleteErr)
		s.Equal(int64(1), deleted)

		_, goneErr := r.invoices.FindByID(ctx, created.ID)
		s.Require().ErrorIs(goneErr, domain.ErrRecordNotFound)

		untouched, untouchedErr := r.invoices.FindByID(ctx, other.ID)
		s.Require().NoError(untouchedErr)
		s.Equal(*other, *untouched)

		again, againErr := r.invoices.DeleteInvoice(ctx, created.ID)
		s.Require().NoError(againErr)
		s.Zero(again)
	})
}

func (s *RepositoryIntegrationTestSuite) TestFilteredAndTotals() {
	s.inTx(func(ctx context.Context, r repos) {
		customer := s.createCustomer(ctx, r)
		paidBefore, pendingBefore, totalsErr := r.invoices.StatusTotals(ctx)
		s.Require().NoError(totalsErr)

		for _, amount := range []int64{100, 200, 300} {
			_, err := r.invoices.CreateInvoice(ctx, repoargs.CreateInvoice{
				CustomerID: customer.ID,
				Amount:     amount,
				Status:     domain.InvoiceStatusPending,
				Date:       time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
			})
			s.Require().NoError(err)
		}

		paid, pending, _ := r.invoices.StatusTotals(ctx)
		s.Equal(paidBefore, paid)
		s.Equal(pendingBefore+600, pending)

		count, countErr := r.invoices.CountFiltered(ctx, customer.Email)
		s.Require().NoError(countErr)
		s.Equal(int64(3), count)

		page, pageErr := r.invoices.GetFiltered(ctx, repoargs.InvoiceFilter{Query: customer.Email, Limit: 2, Offset: 2})
		s.Require().NoError(pageErr)
		s.Require().Len(page, 1)
		s.Equal(customer.Name, page[0].Name)

		latest, latestErr := r.invoices.GetLatest(ctx, 2)
		s.Require().NoError(latestErr)
		s.Len(latest, 2)
	})
}

func (s *RepositoryIntegrationTestSuite) TestUnknownCustomer() {
	s.inTx(func(ctx context.Context, r repos) {
		_, err := r.invoices.CreateInvoice(ctx, repoargs.CreateInvoice{
			CustomerID: gofakeit.UUID(),
			Amount:     100,
			Status:     domain.InvoiceStatusPaid,
			Date:       time.Now().UTC(),
		})
		s.Require().ErrorIs(err, domain.ErrForeignKey)
	})
}

func (s *RepositoryIntegrationTestSuite) TestMalformedID() {
	s.inTx(func(ctx context.Context, r repos) {
		_, err := r.invoices.FindByID(ctx, "not-a-uuid")
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *RepositoryIntegrationTestSuite) TestUsers() {
	s.inTx(func(ctx context.Context, r repos) {
		email := gofakeit.Email()
		created, err := r.users.CreateUser(ctx, repoargs.CreateUser{Name: "User", Email: email, Password: "hash"})
		s.Require().NoError(err)

		found, findErr := r.users.FindUserByEmail(ctx, email)
		s.Require().NoError(findErr)
		s.Equal(created.ID, found.ID)
		s.Equal("hash", found.Password)

		_, missingErr := r.users.FindUserByEmail(ctx, "missing-"+email)
		s.Require().ErrorIs(missingErr, domain.ErrRecordNotFound)
	})
}
