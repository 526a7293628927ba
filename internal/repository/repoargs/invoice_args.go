package repoargs

import (
	"time"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
)

type CreateInvoice struct {
	CustomerID string
	Amount     int64
	Status     domain.InvoiceStatus
	Date       time.Time
}

type UpdateInvoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     domain.InvoiceStatus
}

// InvoiceFilter параметры поиска по списку счетов.
type InvoiceFilter struct {
	Query  string
	Limit  uint
	Offset uint
}
