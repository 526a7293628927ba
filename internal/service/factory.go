package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

type AppServices struct {
	AuthService      *AuthService
	InvoiceService   *InvoiceService
	DashboardService *DashboardService
}

type FactoryArgs struct {
	UOW         uow.UOW
	Revalidator Revalidator
	Hasher      PasswordHasher
	JWTSecret   []byte
	Logger      *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	authService, authServiceErr := NewAuthService(args.UOW, args.JWTSecret, args.Hasher, args.Logger)
	if authServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", authServiceErr.Error())
	}

	invoiceService, invoiceServiceErr := NewInvoiceService(args.UOW, args.Revalidator, args.Logger)
	if invoiceServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", invoiceServiceErr.Error())
	}

	dashboardService, dashboardServiceErr := NewDashboardService(args.UOW)
	if dashboardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", dashboardServiceErr.Error())
	}

	return &AppServices{
		AuthService:      authService,
		InvoiceService:   invoiceService,
		DashboardService: dashboardService,
	}, nil
}
