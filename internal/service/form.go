package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
)

// Имена полей формы счета.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgEnterAmount    = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

var fieldMessages = map[string]string{
	FieldCustomerID: MsgSelectCustomer,
	FieldAmount:     MsgEnterAmount,
	FieldStatus:     MsgSelectStatus,
}

// FormValues сырые значения полей формы.
type FormValues map[string]string

// FormState результат обработки формы. Ровно одно из трех состояний:
//   - Errors не пуст - данные не прошли валидацию, запись не выполнялась;
//   - RedirectTo не пуст - запись выполнена, вызывающая сторона должна перейти по адресу;
//   - иначе Message описывает сбой хранилища.
type FormState struct {
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	RedirectTo string              `json:"-"`
}

func (f *FormState) HasErrors() bool {
	return len(f.Errors) > 0
}

func (f *FormState) Succeeded() bool {
	return f.RedirectTo != ""
}

// invoiceForm провалидированные и приведенные к типам данные формы счета.
type invoiceForm struct {
	CustomerID string `form:"customerId" validate:"required"`
	// AmountCents вычисляется из введенной суммы в долларах, 0 если сумма не является числом или вне диапазона.
	AmountCents int64  `form:"amount" validate:"gt=0"`
	Status      string `form:"status" validate:"required,oneof=pending paid"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках хотим видеть имена полей формы, а не структуры.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseInvoiceForm приводит и валидирует значения формы. Ошибки собираются по всем полям сразу.
func parseInvoiceForm(values FormValues) (invoiceForm, map[string][]string) {
	form := invoiceForm{
		CustomerID: strings.TrimSpace(values[FieldCustomerID]),
		Status:     values[FieldStatus],
	}
	// сумма вне допустимого диапазона остается нулевой и не проходит gt=0.
	if dollars, err := domain.ParseDollars(values[FieldAmount]); err == nil {
		if cents, err := domain.DollarsToCents(dollars); err == nil {
			form.AmountCents = cents
		}
	}

	err := formValidator.Struct(form)
	if err == nil {
		return form, nil
	}

	fieldErrors := make(map[string][]string)
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		// невалидируемая структура - ошибка программиста, считаем все поля невалидными.
		for field, msg := range fieldMessages {
			fieldErrors[field] = []string{msg}
		}
		return form, fieldErrors
	}
	for _, fe := range valErrs {
		addFieldError(fieldErrors, fe.Field(), fieldMessages[fe.Field()])
	}
	return form, fieldErrors
}

func addFieldError(fieldErrors map[string][]string, field, msg string) {
	for _, existing := range fieldErrors[field] {
		if existing == msg {
			return
		}
	}
	fieldErrors[field] = append(fieldErrors[field], msg)
}
