package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

type DashboardHandler struct {
	dashboardService DashboardServicer
}

func NewDashboardHandler(dashboardService DashboardServicer) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

type CardsResponse struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type InvoiceRowResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customerId"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	ImageURL   string               `json:"imageUrl"`
	Amount     string               `json:"amount"`
	Date       string               `json:"date"`
	Status     domain.InvoiceStatus `json:"status"`
}

type OverviewResponse struct {
	Cards          CardsResponse        `json:"cards"`
	LatestInvoices []InvoiceRowResponse `json:"latestInvoices"`
}

type InvoicesResponse struct {
	Invoices   []InvoiceRowResponse `json:"invoices"`
	TotalPages uint                 `json:"totalPages"`
}

type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type InvoicesQuery struct {
	Query string `form:"query"`
	Page  uint   `binding:"omitempty,min=1,max=100000" form:"page"`
}

// Overview GET DashboardRoute.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{
		Cards: CardsResponse{
			NumberOfInvoices:     overview.Cards.NumberOfInvoices,
			NumberOfCustomers:    overview.Cards.NumberOfCustomers,
			TotalPaidInvoices:    domain.FormatCurrency(overview.Cards.TotalPaid),
			TotalPendingInvoices: domain.FormatCurrency(overview.Cards.TotalPending),
		},
		LatestInvoices: invoiceRows(overview.LatestInvoices),
	})
}

// Invoices GET DashboardRoute + InvoicesRoute. Страница списка счетов с поиском и общее число страниц.
func (h *DashboardHandler) Invoices(c *gin.Context) {
	var params InvoicesQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		invoices   []domain.InvoiceWithCustomer
		totalPages uint
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = h.dashboardService.FilteredInvoices(gCtx, params.Query, params.Page)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		totalPages, err = h.dashboardService.InvoicePages(gCtx, params.Query)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, InvoicesResponse{
		Invoices:   invoiceRows(invoices),
		TotalPages: totalPages,
	})
}

// Customers GET DashboardRoute + CustomersRoute. Список для выбора клиента в форме счета.
func (h *DashboardHandler) Customers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.dashboardService.Customers(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	var response = make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = CustomerResponse{ID: customer.ID, Name: customer.Name}
	}
	c.JSON(http.StatusOK, response)
}

func invoiceRows(invoices []domain.InvoiceWithCustomer) []InvoiceRowResponse {
	var rows = make([]InvoiceRowResponse, len(invoices))
	for i, invoice := range invoices {
		rows[i] = InvoiceRowResponse{
			ID:         invoice.ID,
			CustomerID: invoice.CustomerID,
			Name:       invoice.Name,
			Email:      invoice.Email,
			ImageURL:   invoice.ImageURL,
			Amount:     domain.FormatCurrency(invoice.Amount),
			Date:       invoice.Date.Format(dateLayout),
			Status:     invoice.Status,
		}
	}
	return rows
}
