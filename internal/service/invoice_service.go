package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	DashboardPath = "/dashboard"
	InvoicesPath  = "/dashboard/invoices"
)

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
)

// InvoiceService конвейер изменений счетов: валидация формы, одна запись в хранилище, инвалидация кеша
// списка счетов и сигнал перехода на список.
type InvoiceService struct {
	invoiceRepo InvoiceRepository
	revalidator Revalidator
	l           *logrus.Entry
	now         func() time.Time
}

func NewInvoiceService(u uow.UOW, revalidator Revalidator, l *logrus.Logger) (*InvoiceService, error) {
	invoiceRepo, err := uow.GetRepositoryAs[InvoiceRepository](u, uow.RepositoryName(repoargs.InvoiceRepoName))
	if err != nil {
		return nil, err
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		revalidator: revalidator,
		l:           l.WithField("component", "invoice_service"),
		now:         time.Now,
	}, nil
}

// Create создает счет из значений формы.
//
// Алгоритм работы:
//  1. Валидирует customerId, amount и status. При ошибках возвращает их все вместе, запись не выполняется.
//  2. Переводит сумму в центы, проставляет текущую дату и выполняет один INSERT.
//  3. Инвалидирует кеш списка счетов.
//  4. При успехе возвращает адрес списка счетов для перехода. Ошибка хранилища логируется и возвращается
//     как общее сообщение без перехода.
func (s *InvoiceService) Create(ctx context.Context, values FormValues) *FormState {
	form, fieldErrors := parseInvoiceForm(values)
	if fieldErrors != nil {
		return &FormState{Errors: fieldErrors, Message: MsgCreateMissingFields}
	}

	_, createErr := s.invoiceRepo.CreateInvoice(ctx, repoargs.CreateInvoice{
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     domain.InvoiceStatus(form.Status),
		Date:       today(s.now()),
	})
	s.revalidate()

	if createErr != nil {
		return s.storeFailure(createErr, "create", MsgCreateMissingFields, MsgCreateDBError)
	}
	return &FormState{RedirectTo: InvoicesPath}
}

// Update обновляет клиента, сумму и статус счета id. Валидация, инвалидация кеша и переход - как в Create.
// Несуществующий id ошибкой не считается: запрос просто не затронет ни одной строки.
func (s *InvoiceService) Update(ctx context.Context, id string, values FormValues) *FormState {
	form, fieldErrors := parseInvoiceForm(values)
	if fieldErrors != nil {
		return &FormState{Errors: fieldErrors, Message: MsgUpdateMissingFields}
	}

	updateErr := s.invoiceRepo.UpdateInvoice(ctx, repoargs.UpdateInvoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     domain.InvoiceStatus(form.Status),
	})
	s.revalidate()

	if updateErr != nil {
		return s.storeFailure(updateErr, "update", MsgUpdateMissingFields, MsgUpdateDBError)
	}
	return &FormState{RedirectTo: InvoicesPath}
}

// Delete удаляет счет по id и инвалидирует кеш списка. Перехода нет: вызывающая сторона остается на списке.
// Удаление несуществующего счета ошибкой не считается.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.invoiceRepo.DeleteInvoice(ctx, id)
	s.revalidate()

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		s.l.WithError(err).WithField("invoiceID", id).Error("delete invoice")
		return fmt.Errorf("deleting invoice: %w", err)
	}
	if deleted == 0 {
		s.l.WithField("invoiceID", id).Debug("delete invoice: nothing to delete")
	}
	return nil
}

// Get возвращает счет по id. Если счета нет - domain.ErrRecordNotFound.
func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return invoice, nil
}

// storeFailure превращает ошибку записи в состояние формы. Ссылка на несуществующего клиента или
// некорректный идентификатор клиента - ошибка поля customerId, все остальное - общее сообщение о сбое базы.
// Идентификатор счета проверяется до вызова сервиса, поэтому ErrRecordNotFound здесь относится к клиенту.
func (s *InvoiceService) storeFailure(err error, operation, missingFieldsMsg, dbErrMsg string) *FormState {
	if errors.Is(err, domain.ErrForeignKey) || errors.Is(err, domain.ErrRecordNotFound) {
		return &FormState{
			Errors:  map[string][]string{FieldCustomerID: {MsgSelectCustomer}},
			Message: missingFieldsMsg,
		}
	}
	s.l.WithError(err).WithField("operation", operation).Error("invoice store write failed")
	return &FormState{Message: dbErrMsg}
}

// revalidate инвалидирует все отрендеренные страницы, показывающие счета.
func (s *InvoiceService) revalidate() {
	if s.revalidator == nil {
		return
	}
	s.revalidator.RevalidatePath(InvoicesPath)
	s.revalidator.RevalidatePath(DashboardPath)
}

// today обрезает время до календарного дня в UTC.
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
