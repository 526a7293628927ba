package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	customerGetAllSQL = `SELECT id::text, name, email, image_url FROM customers ORDER BY name ASC`
	customerCountSQL  = `SELECT COUNT(*) FROM customers`
	customerCreateSQL = `INSERT INTO customers (id, name, email, image_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`
)

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: conn}
}

// GetAll возвращает всех клиентов, отсортированных по имени.
func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, customerGetAllSQL)
	if err != nil {
		return nil, convertErr(err, "getting customers")
	}
	customers, scanErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		var c domain.Customer
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
		return c, err //nolint:wrapcheck
	})
	if scanErr != nil {
		return nil, convertErr(scanErr, "scanning customers")
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, customerCountSQL).Scan(&count); err != nil {
		return 0, convertErr(err, "counting customers")
	}
	return count, nil
}

// CreateCustomer используется только для начального наполнения базы, повторная вставка игнорируется.
func (r *CustomerRepository) CreateCustomer(ctx context.Context, args repoargs.CreateCustomer) error {
	if _, err := r.db.Exec(ctx, customerCreateSQL, args.ID, args.Name, args.Email, args.ImageURL); err != nil {
		return convertErr(err, "creating customer `%s`", args.Email)
	}
	return nil
}
