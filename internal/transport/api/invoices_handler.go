package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/metrics"
	"github.com/fsdevblog/invoice-dashboard/internal/service"
)

const (
	MsgInvoiceDeleted     = "Deleted Invoice."
	MsgDeleteDBError      = "Database Error: Failed to Delete Invoice."
	errInvoiceNotFoundMsg = "invoice not found"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
	operationDelete = "delete"
)

type InvoicesHandler struct {
	invoiceService InvoiceServicer
	observer       Observer
}

func NewInvoicesHandler(invoiceService InvoiceServicer, observer Observer) *InvoicesHandler {
	return &InvoicesHandler{
		invoiceService: invoiceService,
		observer:       observer,
	}
}

type InvoiceURI struct {
	ID string `binding:"required,uuid" uri:"id"`
}

type InvoiceResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customerId"`
	Amount     float64              `json:"amount"`
	Status     domain.InvoiceStatus `json:"status"`
	Date       string               `json:"date"`
}

// Show GET DashboardRoute + InvoiceRoute. Данные для формы редактирования, сумма в долларах.
func (h *InvoicesHandler) Show(c *gin.Context) {
	var uri InvoiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		_ = c.AbortWithError(http.StatusNotFound, errors.New(errInvoiceNotFoundMsg)).
			SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	invoice, err := h.invoiceService.Get(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New(errInvoiceNotFoundMsg)).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     domain.CentsToDollars(invoice.Amount).InexactFloat64(),
		Status:     invoice.Status,
		Date:       invoice.Date.Format(dateLayout),
	})
}

// Create POST DashboardRoute + InvoicesRoute.
func (h *InvoicesHandler) Create(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	state := h.invoiceService.Create(ctx, formValues(c))
	h.renderFormState(c, operationCreate, state)
}

// Update POST DashboardRoute + InvoiceRoute.
func (h *InvoicesHandler) Update(c *gin.Context) {
	var uri InvoiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		_ = c.AbortWithError(http.StatusNotFound, errors.New(errInvoiceNotFoundMsg)).
			SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	state := h.invoiceService.Update(ctx, uri.ID, formValues(c))
	h.renderFormState(c, operationUpdate, state)
}

// Delete POST DashboardRoute + InvoiceDeleteRoute. Удаление несуществующего счета тоже успех.
func (h *InvoicesHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.invoiceService.Delete(ctx, c.Param("id")); err != nil {
		h.observer.ObserveMutation(operationDelete, metrics.OutcomeFailure)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": MsgDeleteDBError})
		return
	}
	h.observer.ObserveMutation(operationDelete, metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, gin.H{"message": MsgInvoiceDeleted})
}

// renderFormState успех - редирект 303, ошибки полей - 422, сбой хранилища - 500. Во всех неуспешных случаях
// тело ответа - состояние формы.
func (h *InvoicesHandler) renderFormState(c *gin.Context, operation string, state *service.FormState) {
	switch {
	case state.Succeeded():
		h.observer.ObserveMutation(operation, metrics.OutcomeSuccess)
		c.Redirect(http.StatusSeeOther, state.RedirectTo)
	case state.HasErrors():
		h.observer.ObserveMutation(operation, metrics.OutcomeInvalid)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, state)
	default:
		h.observer.ObserveMutation(operation, metrics.OutcomeFailure)
		c.AbortWithStatusJSON(http.StatusInternalServerError, state)
	}
}

func formValues(c *gin.Context) service.FormValues {
	return service.FormValues{
		service.FieldCustomerID: c.PostForm(service.FieldCustomerID),
		service.FieldAmount:     c.PostForm(service.FieldAmount),
		service.FieldStatus:     c.PostForm(service.FieldStatus),
	}
}
