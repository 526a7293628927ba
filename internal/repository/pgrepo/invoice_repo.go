package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	invoiceCreateSQL = `INSERT INTO invoices (customer_id, amount, status, date)
VALUES ($1, $2, $3, $4)
RETURNING id::text, customer_id::text, amount, status, date`

	invoiceUpdateSQL = `UPDATE invoices
SET customer_id = $1, amount = $2, status = $3
WHERE id = $4`

	invoiceDeleteSQL = `DELETE FROM invoices WHERE id = $1`

	invoiceFindByIDSQL = `SELECT id::text, customer_id::text, amount, status, date
FROM invoices
WHERE id = $1`

	invoiceJoinedColumns = `invoices.id::text, invoices.customer_id::text, invoices.amount, invoices.status,
invoices.date, customers.name, customers.email, customers.image_url`

	invoiceFilterCondition = `customers.name ILIKE $1 OR
customers.email ILIKE $1 OR
invoices.amount::text ILIKE $1 OR
invoices.date::text ILIKE $1 OR
invoices.status ILIKE $1`

	invoiceFilteredSQL = `SELECT ` + invoiceJoinedColumns + `
FROM invoices
JOIN customers ON invoices.customer_id = customers.id
WHERE ` + invoiceFilterCondition + `
ORDER BY invoices.date DESC, invoices.id
LIMIT $2 OFFSET $3`

	invoiceCountFilteredSQL = `SELECT COUNT(*)
FROM invoices
JOIN customers ON invoices.customer_id = customers.id
WHERE ` + invoiceFilterCondition

	invoiceLatestSQL = `SELECT ` + invoiceJoinedColumns + `
FROM invoices
JOIN customers ON invoices.customer_id = customers.id
ORDER BY invoices.date DESC, invoices.id
LIMIT $1`

	invoiceCountSQL = `SELECT COUNT(*) FROM invoices`

	invoiceStatusTotalsSQL = `SELECT
COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
FROM invoices`
)

type InvoiceRepository struct {
	db uow.DBTX
}

func NewInvoiceRepository(conn uow.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: conn}
}

// CreateInvoice вставляет счет одним запросом. При несуществующем клиенте возвращает domain.ErrForeignKey.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, args repoargs.CreateInvoice) (*domain.Invoice, error) {
	row := r.db.QueryRow(ctx, invoiceCreateSQL, args.CustomerID, args.Amount, string(args.Status), args.Date)
	invoice, err := scanInvoice(row)
	if err != nil {
		return nil, convertErr(err, "creating invoice for customer `%s`", args.CustomerID)
	}
	return invoice, nil
}

// UpdateInvoice обновляет клиента, сумму и статус счета по id. Отсутствие строки ошибкой не считается.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, args repoargs.UpdateInvoice) error {
	_, err := r.db.Exec(ctx, invoiceUpdateSQL, args.CustomerID, args.Amount, string(args.Status), args.ID)
	if err != nil {
		return convertErr(err, "updating invoice `%s`", args.ID)
	}
	return nil
}

// DeleteInvoice удаляет счет по id. Возвращает количество удаленных строк.
func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, invoiceDeleteSQL, id)
	if err != nil {
		return 0, convertErr(err, "deleting invoice `%s`", id)
	}
	return tag.RowsAffected(), nil
}

// FindByID ищет счет по id. Возвращает domain.ErrRecordNotFound, если записи нет.
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := scanInvoice(r.db.QueryRow(ctx, invoiceFindByIDSQL, id))
	if err != nil {
		return nil, convertErr(err, "finding invoice `%s`", id)
	}
	return invoice, nil
}

// GetFiltered возвращает страницу счетов, где строка поиска входит в имя/email клиента, сумму, дату или статус.
func (r *InvoiceRepository) GetFiltered(
	ctx context.Context,
	filter repoargs.InvoiceFilter,
) ([]domain.InvoiceWithCustomer, error) {
	rows, err := r.db.Query(ctx, invoiceFilteredSQL, likePattern(filter.Query), filter.Limit, filter.Offset)
	if err != nil {
		return nil, convertErr(err, "getting filtered invoices by `%s`", filter.Query)
	}
	invoices, scanErr := collectInvoicesWithCustomer(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "scanning filtered invoices")
	}
	return invoices, nil
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, invoiceCountFilteredSQL, likePattern(query)).Scan(&count); err != nil {
		return 0, convertErr(err, "counting filtered invoices by `%s`", query)
	}
	return count, nil
}

// GetLatest возвращает последние limit счетов по дате.
func (r *InvoiceRepository) GetLatest(ctx context.Context, limit uint) ([]domain.InvoiceWithCustomer, error) {
	rows, err := r.db.Query(ctx, invoiceLatestSQL, limit)
	if err != nil {
		return nil, convertErr(err, "getting latest invoices")
	}
	invoices, scanErr := collectInvoicesWithCustomer(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "scanning latest invoices")
	}
	return invoices, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, invoiceCountSQL).Scan(&count); err != nil {
		return 0, convertErr(err, "counting invoices")
	}
	return count, nil
}

// StatusTotals возвращает суммы (в центах) оплаченных и ожидающих оплаты счетов.
func (r *InvoiceRepository) StatusTotals(ctx context.Context) (paid int64, pending int64, err error) {
	if scanErr := r.db.QueryRow(ctx, invoiceStatusTotalsSQL).Scan(&paid, &pending); scanErr != nil {
		return 0, 0, convertErr(scanErr, "summing invoices by status")
	}
	return paid, pending, nil
}

func likePattern(query string) string {
	return "%" + query + "%"
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var status string
	if err := row.Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &status, &invoice.Date); err != nil {
		return nil, err //nolint:wrapcheck
	}
	invoice.Status = domain.InvoiceStatus(status)
	return &invoice, nil
}

func collectInvoicesWithCustomer(rows pgx.Rows) ([]domain.InvoiceWithCustomer, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvoiceWithCustomer, error) {
		var item domain.InvoiceWithCustomer
		var status string
		err := row.Scan(
			&item.ID,
			&item.CustomerID,
			&item.Amount,
			&status,
			&item.Date,
			&item.Name,
			&item.Email,
			&item.ImageURL,
		)
		item.Status = domain.InvoiceStatus(status)
		return item, err //nolint:wrapcheck
	})
}
