// Package seed наполняет пустую базу тестовыми данными панели.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, args repoargs.CreateCustomer) error
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, args repoargs.CreateInvoice) (*domain.Invoice, error)
	Count(ctx context.Context) (int64, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Data набор записей для вставки. Пароли юзеров в открытом виде, хешируются при вставке.
type Data struct {
	Users     []repoargs.CreateUser
	Customers []repoargs.CreateCustomer
	Invoices  []repoargs.CreateInvoice
}

const placeholderInvoices = 13

// Placeholder демо данные: один юзер, шесть клиентов и случайные счета за последний год до now.
func Placeholder(faker *gofakeit.Faker, now time.Time) Data {
	customers := []repoargs.CreateCustomer{
		{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com",
			ImageURL: "/customers/evil-rabbit.png"},
		{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com",
			ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com",
			ImageURL: "/customers/lee-robinson.png"},
		{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com",
			ImageURL: "/customers/michael-novotny.png"},
		{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com",
			ImageURL: "/customers/amy-burns.png"},
		{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com",
			ImageURL: "/customers/balazs-orban.png"},
	}

	statuses := []string{string(domain.InvoiceStatusPending), string(domain.InvoiceStatusPaid)}
	invoices := make([]repoargs.CreateInvoice, placeholderInvoices)
	for i := range invoices {
		date := faker.DateRange(now.AddDate(-1, 0, 0), now).UTC()
		invoices[i] = repoargs.CreateInvoice{
			CustomerID: customers[faker.IntN(len(customers))].ID,
			Amount:     int64(faker.IntRange(100, 1_000_000)), //nolint:mnd
			Status:     domain.InvoiceStatus(faker.RandomString(statuses)),
			Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		}
	}

	return Data{
		Users: []repoargs.CreateUser{
			{Name: "User", Email: "user@nextmail.com", Password: "123456"},
		},
		Customers: customers,
		Invoices:  invoices,
	}
}

type Seeder struct {
	uow    uow.UOW
	hasher PasswordHasher
	l      *logrus.Entry
}

func New(u uow.UOW, hasher PasswordHasher, l *logrus.Logger) *Seeder {
	return &Seeder{
		uow:    u,
		hasher: hasher,
		l:      l.WithField("component", "seed"),
	}
}

// Run вставляет data в одной транзакции. Существующие юзеры и клиенты пропускаются, счета вставляются только
// в пустую таблицу, поэтому повторный запуск ничего не меняет.
func (s *Seeder) Run(ctx context.Context, data Data) error {
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		customerRepo, customerRepoErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if customerRepoErr != nil {
			return customerRepoErr //nolint:wrapcheck
		}
		invoiceRepo, invoiceRepoErr := uow.GetAs[InvoiceRepository](tx, uow.RepositoryName(repoargs.InvoiceRepoName))
		if invoiceRepoErr != nil {
			return invoiceRepoErr //nolint:wrapcheck
		}

		if err := s.seedUsers(ctx, userRepo, data.Users); err != nil {
			return err
		}
		for _, customer := range data.Customers {
			if err := customerRepo.CreateCustomer(ctx, customer); err != nil {
				return err //nolint:wrapcheck
			}
		}
		s.l.WithField("count", len(data.Customers)).Info("customers seeded")

		return s.seedInvoices(ctx, invoiceRepo, data.Invoices)
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, repo UserRepository, users []repoargs.CreateUser) error {
	for _, user := range users {
		_, findErr := repo.FindUserByEmail(ctx, user.Email)
		if findErr == nil {
			s.l.WithField("email", user.Email).Debug("user exists, skipping")
			continue
		}
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr //nolint:wrapcheck
		}

		hash, hashErr := s.hasher.HashPassword(user.Password)
		if hashErr != nil {
			return hashErr //nolint:wrapcheck
		}
		user.Password = hash
		if _, err := repo.CreateUser(ctx, user); err != nil {
			return err //nolint:wrapcheck
		}
		s.l.WithField("email", user.Email).Info("user seeded")
	}
	return nil
}

func (s *Seeder) seedInvoices(ctx context.Context, repo InvoiceRepository, invoices []repoargs.CreateInvoice) error {
	count, countErr := repo.Count(ctx)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	if count > 0 {
		s.l.WithField("existing", count).Info("invoices table not empty, skipping")
		return nil
	}
	for _, invoice := range invoices {
		if _, err := repo.CreateInvoice(ctx, invoice); err != nil {
			return err //nolint:wrapcheck
		}
	}
	s.l.WithField("count", len(invoices)).Info("invoices seeded")
	return nil
}
