package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/internal/service/mocks"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
	uowmocks "github.com/fsdevblog/invoice-dashboard/pkg/uow/mocks"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockInvoiceRepo *mocks.MockInvoiceRepository
	mockRevalidator *mocks.MockRevalidator
	now             time.Time
	invoiceService  *InvoiceService
}

func TestInvoiceServiceSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockInvoiceRepo = mocks.NewMockInvoiceRepository(s.mockCtrl)
	s.mockRevalidator = mocks.NewMockRevalidator(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.InvoiceRepoName)).
		Return(s.mockInvoiceRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	invoiceService, servErr := NewInvoiceService(s.mockUOW, s.mockRevalidator, l)
	s.Require().NoError(servErr)

	s.now = time.Date(2026, time.October, 17, 23, 45, 0, 0, time.UTC)
	invoiceService.now = func() time.Time { return s.now }
	s.invoiceService = invoiceService
}

func (s *InvoiceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *InvoiceServiceTestSuite) expectRevalidate() {
	s.mockRevalidator.EXPECT().RevalidatePath(InvoicesPath).Times(1)
	s.mockRevalidator.EXPECT().RevalidatePath(DashboardPath).Times(1)
}

func (s *InvoiceServiceTestSuite) TestCreate() {
	cases := []struct {
		name      string
		amount    string
		wantCents int64
	}{
		{name: "integer", amount: "50", wantCents: 5000},
		{name: "cents", amount: "19.99", wantCents: 1999},
		{name: "float noise", amount: "0.29", wantCents: 29},
		{name: "rounding", amount: "10.005", wantCents: 1001},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockInvoiceRepo.EXPECT().
				CreateInvoice(gomock.Any(), repoargs.CreateInvoice{
					CustomerID: "c1",
					Amount:     t.wantCents,
					Status:     domain.InvoiceStatusPending,
					Date:       time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
				}).
				Return(&domain.Invoice{ID: "inv-new"}, nil).Times(1)
			s.expectRevalidate()

			state := s.invoiceService.Create(s.T().Context(), FormValues{
				FieldCustomerID: "c1",
				FieldAmount:     t.amount,
				FieldStatus:     "pending",
			})

			s.False(state.HasErrors())
			s.Empty(state.Message)
			s.True(state.Succeeded())
			s.Equal(InvoicesPath, state.RedirectTo)
		})
	}
}

func (s *InvoiceServiceTestSuite) TestCreateInvalid() {
	cases := []struct {
		name       string
		values     FormValues
		wantErrors map[string][]string
	}{
		{
			name:       "zero amount",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "0", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "negative amount",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "-5", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "not a number",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "ten", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "below one cent",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "0.004", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "above column range",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "21474836.48", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "wraps int64 to one cent",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "184467440737095516.17", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "wraps int64 to five dollars",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "184467440737095521.16", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldAmount: {MsgEnterAmount}},
		}, {
			name:       "status with spaces",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "10", FieldStatus: " paid "},
			wantErrors: map[string][]string{FieldStatus: {MsgSelectStatus}},
		}, {
			name:       "missing status",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "10"},
			wantErrors: map[string][]string{FieldStatus: {MsgSelectStatus}},
		}, {
			name:       "unknown status",
			values:     FormValues{FieldCustomerID: "c1", FieldAmount: "10", FieldStatus: "overdue"},
			wantErrors: map[string][]string{FieldStatus: {MsgSelectStatus}},
		}, {
			name:       "missing customer",
			values:     FormValues{FieldCustomerID: "  ", FieldAmount: "10", FieldStatus: "paid"},
			wantErrors: map[string][]string{FieldCustomerID: {MsgSelectCustomer}},
		}, {
			name:   "everything missing",
			values: FormValues{},
			wantErrors: map[string][]string{
				FieldCustomerID: {MsgSelectCustomer},
				FieldAmount:     {MsgEnterAmount},
				FieldStatus:     {MsgSelectStatus},
			},
		},
	}

	// Ни записи, ни инвалидации кеша быть не должно.
	s.mockInvoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Times(0)
	s.mockRevalidator.EXPECT().RevalidatePath(gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			state := s.invoiceService.Create(s.T().Context(), t.values)

			s.Equal(t.wantErrors, state.Errors)
			s.Equal(MsgCreateMissingFields, state.Message)
			s.False(state.Succeeded())
		})
	}
}

func (s *InvoiceServiceTestSuite) TestCreateStoreFailure() {
	s.mockInvoiceRepo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknown)
	s.expectRevalidate()

	state := s.invoiceService.Create(s.T().Context(), FormValues{
		FieldCustomerID: "c1",
		FieldAmount:     "10",
		FieldStatus:     "paid",
	})

	s.False(state.HasErrors())
	s.False(state.Succeeded())
	s.Equal(MsgCreateDBError, state.Message)
}

func (s *InvoiceServiceTestSuite) TestCreateUnknownCustomer() {
	s.mockInvoiceRepo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrForeignKey)
	s.expectRevalidate()

	state := s.invoiceService.Create(s.T().Context(), FormValues{
		FieldCustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		FieldAmount:     "10",
		FieldStatus:     "paid",
	})

	s.Equal(map[string][]string{FieldCustomerID: {MsgSelectCustomer}}, state.Errors)
	s.False(state.Succeeded())
}

// Идентификатор клиента не uuid: хранилище отвечает ErrRecordNotFound, это ошибка поля, а не сбой базы.
func (s *InvoiceServiceTestSuite) TestMalformedCustomerID() {
	values := FormValues{FieldCustomerID: "c1", FieldAmount: "10", FieldStatus: "paid"}
	malformed := fmt.Errorf("[repository/create invoice] %w: invalid input syntax for type uuid", domain.ErrRecordNotFound)

	s.Run("create", func() {
		s.mockInvoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, malformed)
		s.expectRevalidate()

		state := s.invoiceService.Create(s.T().Context(), values)

		s.Equal(map[string][]string{FieldCustomerID: {MsgSelectCustomer}}, state.Errors)
		s.Equal(MsgCreateMissingFields, state.Message)
		s.False(state.Succeeded())
	})

	s.Run("update", func() {
		s.mockInvoiceRepo.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).Return(malformed)
		s.expectRevalidate()

		state := s.invoiceService.Update(s.T().Context(), "3958dc9e-712f-4377-85e9-fec4b6a6442a", values)

		s.Equal(map[string][]string{FieldCustomerID: {MsgSelectCustomer}}, state.Errors)
		s.Equal(MsgUpdateMissingFields, state.Message)
		s.False(state.Succeeded())
	})
}

func (s *InvoiceServiceTestSuite) TestUpdate() {
	s.mockInvoiceRepo.EXPECT().
		UpdateInvoice(gomock.Any(), repoargs.UpdateInvoice{
			ID:         "inv-1",
			CustomerID: "c1",
			Amount:     5000,
			Status:     domain.InvoiceStatusPaid,
		}).
		Return(nil).Times(1)
	s.expectRevalidate()

	state := s.invoiceService.Update(s.T().Context(), "inv-1", FormValues{
		FieldCustomerID: "c1",
		FieldAmount:     "50",
		FieldStatus:     "paid",
	})

	s.False(state.HasErrors())
	s.Equal(InvoicesPath, state.RedirectTo)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvalid() {
	s.mockInvoiceRepo.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).Times(0)
	s.mockRevalidator.EXPECT().RevalidatePath(gomock.Any()).Times(0)

	state := s.invoiceService.Update(s.T().Context(), "inv-1", FormValues{
		FieldCustomerID: "c1",
		FieldAmount:     "-1",
		FieldStatus:     "overdue",
	})

	s.Equal(map[string][]string{
		FieldAmount: {MsgEnterAmount},
		FieldStatus: {MsgSelectStatus},
	}, state.Errors)
	s.Equal(MsgUpdateMissingFields, state.Message)
}

func (s *InvoiceServiceTestSuite) TestUpdateStoreFailure() {
	s.mockInvoiceRepo.EXPECT().
		UpdateInvoice(gomock.Any(), gomock.Any()).
		Return(domain.ErrUnknown)
	s.expectRevalidate()

	state := s.invoiceService.Update(s.T().Context(), "inv-1", FormValues{
		FieldCustomerID: "c1",
		FieldAmount:     "50",
		FieldStatus:     "paid",
	})

	s.Equal(MsgUpdateDBError, state.Message)
	s.False(state.Succeeded())
}

func (s *InvoiceServiceTestSuite) TestDelete() {
	cases := []struct {
		name        string
		id          string
		repoDeleted int64
		repoErr     error
		wantErr     error
	}{
		{name: "existing", id: "inv-1", repoDeleted: 1},
		{name: "missing", id: "inv-404", repoDeleted: 0},
		{name: "malformed id", id: "not-a-uuid", repoErr: domain.ErrRecordNotFound},
		{name: "store down", id: "inv-2", repoErr: domain.ErrUnknown, wantErr: domain.ErrUnknown},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockInvoiceRepo.EXPECT().
				DeleteInvoice(gomock.Any(), t.id).
				Return(t.repoDeleted, t.repoErr).Times(1)
			s.expectRevalidate()

			err := s.invoiceService.Delete(s.T().Context(), t.id)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *InvoiceServiceTestSuite) TestGet() {
	invoice := &domain.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 1999, Status: domain.InvoiceStatusPaid}
	s.mockInvoiceRepo.EXPECT().FindByID(gomock.Any(), "inv-1").Return(invoice, nil)
	s.mockInvoiceRepo.EXPECT().FindByID(gomock.Any(), "inv-404").Return(nil, domain.ErrRecordNotFound)

	got, err := s.invoiceService.Get(context.Background(), "inv-1")
	s.Require().NoError(err)
	s.Equal(invoice, got)

	_, notFoundErr := s.invoiceService.Get(context.Background(), "inv-404")
	s.Require().ErrorIs(notFoundErr, domain.ErrRecordNotFound)
}
