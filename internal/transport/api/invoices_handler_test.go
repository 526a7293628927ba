package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/metrics"
	"github.com/fsdevblog/invoice-dashboard/internal/service"
	"github.com/fsdevblog/invoice-dashboard/internal/transport/api/mocks"
	"github.com/fsdevblog/invoice-dashboard/internal/transport/api/testutils"
)

const testInvoiceID = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"

type InvoicesHandlerTestSuite struct {
	handlerSuite
}

func TestInvoicesHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoicesHandlerTestSuite))
}

func invoiceForm(customerID, amount, status string) url.Values {
	return url.Values{
		service.FieldCustomerID: {customerID},
		service.FieldAmount:     {amount},
		service.FieldStatus:     {status},
	}
}

func (s *InvoicesHandlerTestSuite) TestCreate() {
	cases := []struct {
		name         string
		state        *service.FormState
		wantStatus   int
		wantLocation string
		wantBody     service.FormState
	}{
		{
			name:         "created",
			state:        &service.FormState{RedirectTo: DashboardRoute + InvoicesRoute},
			wantStatus:   http.StatusSeeOther,
			wantLocation: DashboardRoute + InvoicesRoute,
		}, {
			name: "validation failed",
			state: &service.FormState{
				Errors:  map[string][]string{service.FieldAmount: {service.MsgEnterAmount}},
				Message: service.MsgCreateMissingFields,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: service.FormState{
				Errors:  map[string][]string{service.FieldAmount: {service.MsgEnterAmount}},
				Message: service.MsgCreateMissingFields,
			},
		}, {
			name:       "store failure",
			state:      &service.FormState{Message: service.MsgCreateDBError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   service.FormState{Message: service.MsgCreateDBError},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockInvoiceService.EXPECT().
				Create(gomock.Any(), service.FormValues{
					service.FieldCustomerID: "c1",
					service.FieldAmount:     "19.99",
					service.FieldStatus:     "pending",
				}).
				Return(t.state)

			resp := s.request(http.MethodPost, DashboardRoute+InvoicesRoute,
				testutils.WithBearer(s.token),
				testutils.WithForm(invoiceForm("c1", "19.99", "pending")))
			s.Equal(t.wantStatus, resp.StatusCode)

			if t.wantStatus == http.StatusSeeOther {
				defer resp.Body.Close()
				s.Equal(t.wantLocation, resp.Header.Get("Location"))
				return
			}
			var body service.FormState
			s.Require().NoError(testutils.DecodeJSON(resp, &body))
			s.Equal(t.wantBody, body)
		})
	}
}

func (s *InvoicesHandlerTestSuite) TestCreateMissingFormFields() {
	s.mockInvoiceService.EXPECT().
		Create(gomock.Any(), service.FormValues{
			service.FieldCustomerID: "",
			service.FieldAmount:     "",
			service.FieldStatus:     "",
		}).
		Return(&service.FormState{Message: service.MsgCreateMissingFields, Errors: map[string][]string{
			service.FieldStatus: {service.MsgSelectStatus},
		}})

	resp := s.request(http.MethodPost, DashboardRoute+InvoicesRoute,
		testutils.WithBearer(s.token),
		testutils.WithForm(url.Values{}))
	defer resp.Body.Close()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *InvoicesHandlerTestSuite) TestUpdate() {
	s.Run("updated", func() {
		s.mockInvoiceService.EXPECT().
			Update(gomock.Any(), testInvoiceID, service.FormValues{
				service.FieldCustomerID: "c1",
				service.FieldAmount:     "50",
				service.FieldStatus:     "paid",
			}).
			Return(&service.FormState{RedirectTo: DashboardRoute + InvoicesRoute})

		resp := s.request(http.MethodPost, DashboardRoute+"/invoices/"+testInvoiceID,
			testutils.WithBearer(s.token),
			testutils.WithForm(invoiceForm("c1", "50", "paid")))
		defer resp.Body.Close()

		s.Equal(http.StatusSeeOther, resp.StatusCode)
		s.Equal(DashboardRoute+InvoicesRoute, resp.Header.Get("Location"))
	})

	s.Run("malformed id", func() {
		s.mockInvoiceService.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := s.request(http.MethodPost, DashboardRoute+"/invoices/42",
			testutils.WithBearer(s.token),
			testutils.WithForm(invoiceForm("c1", "50", "paid")))
		defer resp.Body.Close()

		s.Equal(http.StatusNotFound, resp.StatusCode)
	})
}

func (s *InvoicesHandlerTestSuite) TestDelete() {
	s.Run("deleted", func() {
		s.mockInvoiceService.EXPECT().Delete(gomock.Any(), testInvoiceID).Return(nil)

		resp := s.request(http.MethodPost, DashboardRoute+"/invoices/"+testInvoiceID+"/delete",
			testutils.WithBearer(s.token))
		s.Equal(http.StatusOK, resp.StatusCode)

		var body map[string]string
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(MsgInvoiceDeleted, body["message"])
	})

	s.Run("store failure", func() {
		s.mockInvoiceService.EXPECT().Delete(gomock.Any(), testInvoiceID).Return(domain.ErrUnknown)

		resp := s.request(http.MethodPost, DashboardRoute+"/invoices/"+testInvoiceID+"/delete",
			testutils.WithBearer(s.token))
		s.Equal(http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(MsgDeleteDBError, body["message"])
	})
}

func (s *InvoicesHandlerTestSuite) TestShow() {
	s.Run("found", func() {
		s.mockInvoiceService.EXPECT().Get(gomock.Any(), testInvoiceID).Return(&domain.Invoice{
			ID:         testInvoiceID,
			CustomerID: "c1",
			Amount:     1999,
			Status:     domain.InvoiceStatusPending,
			Date:       time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
		}, nil)

		resp := s.request(http.MethodGet, DashboardRoute+"/invoices/"+testInvoiceID, testutils.WithBearer(s.token))
		s.Equal(http.StatusOK, resp.StatusCode)

		var body InvoiceResponse
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(InvoiceResponse{
			ID:         testInvoiceID,
			CustomerID: "c1",
			Amount:     19.99,
			Status:     domain.InvoiceStatusPending,
			Date:       "2026-10-17",
		}, body)
	})

	s.Run("missing", func() {
		s.mockInvoiceService.EXPECT().Get(gomock.Any(), testInvoiceID).Return(nil, domain.ErrRecordNotFound)

		resp := s.request(http.MethodGet, DashboardRoute+"/invoices/"+testInvoiceID, testutils.WithBearer(s.token))
		s.Equal(http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(errInvoiceNotFoundMsg, body["error"])
	})

	s.Run("store failure is hidden", func() {
		s.mockInvoiceService.EXPECT().Get(gomock.Any(), testInvoiceID).Return(nil, domain.ErrUnknown)

		resp := s.request(http.MethodGet, DashboardRoute+"/invoices/"+testInvoiceID, testutils.WithBearer(s.token))
		s.Equal(http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal("internal server error", body["error"])
	})
}

// Исход каждой мутации попадает в метрики.
func (s *InvoicesHandlerTestSuite) TestObservesOutcome() {
	mockCtrl := gomock.NewController(s.T())
	mockInvoiceService := mocks.NewMockInvoiceServicer(mockCtrl)
	mockObserver := mocks.NewMockObserver(mockCtrl)

	h := NewInvoicesHandler(mockInvoiceService, mockObserver)
	r := gin.New()
	r.POST(InvoicesRoute, h.Create)
	r.POST(InvoiceDeleteRoute, h.Delete)

	gomock.InOrder(
		mockInvoiceService.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&service.FormState{Errors: map[string][]string{service.FieldStatus: {service.MsgSelectStatus}}}),
		mockObserver.EXPECT().ObserveMutation(operationCreate, metrics.OutcomeInvalid),
		mockInvoiceService.EXPECT().Delete(gomock.Any(), testInvoiceID).Return(nil),
		mockObserver.EXPECT().ObserveMutation(operationDelete, metrics.OutcomeSuccess),
	)

	createReq := httptest.NewRequest(http.MethodPost, InvoicesRoute, strings.NewReader("status=overdue"))
	createReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	createRec := httptest.NewRecorder()
	r.ServeHTTP(createRec, createReq)
	s.Equal(http.StatusUnprocessableEntity, createRec.Code)

	deleteRec := httptest.NewRecorder()
	r.ServeHTTP(deleteRec, httptest.NewRequest(http.MethodPost, "/invoices/"+testInvoiceID+"/delete", nil))
	s.Equal(http.StatusOK, deleteRec.Code)
}
