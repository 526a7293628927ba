package domain

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// IsValid сообщает, входит ли статус в допустимый набор значений.
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice счет. Amount хранится в центах.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       time.Time
}

type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// User пользователь панели. Password содержит bcrypt хеш, в открытом виде пароль нигде не хранится.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// Public возвращает копию юзера без секретных данных.
func (u User) Public() *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// InvoiceWithCustomer строка списка счетов вместе с данными клиента.
type InvoiceWithCustomer struct {
	Invoice
	Name     string
	Email    string
	ImageURL string
}

// CardData агрегаты для карточек на главной странице панели. Суммы в центах.
type CardData struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         int64
	TotalPending      int64
}
