package payment

import (
	"context"

	"NutriPlan-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentService creates hosted payment pages for subscription purchases.
	// The gateway is optional; when no server key is configured Enabled
	// reports false and purchases complete without a payment link.
	PaymentService interface {
		Enabled() bool
		CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error)
	}

	PaymentLinkRequest struct {
		OrderID       string
		GrossAmount   int64
		CustomerName  string
		CustomerEmail string
	}

	paymentService struct {
		client  snap.Client
		enabled bool
	}
)

func NewPaymentService() PaymentService {
	serverKey := utils.GetConfig("SERVER_KEY")

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &paymentService{
		client:  client,
		enabled: serverKey != "",
	}
}

func (s *paymentService) Enabled() bool {
	return s.enabled
}

func (s *paymentService) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
	}

	resp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}
