package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePayment = "payment created successfully"
	MessageSuccessWebhook       = "webhook processed"

	MessageFailedCreatePayment = "failed to create payment"
	MessageFailedWebhook       = "failed to process webhook"

	ErrNoOutstandingDebt       = errors.New("user has no outstanding debt")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrPaymentGatewayFailure   = errors.New("payment gateway failure")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
)

type (
	CreateDebtPaymentRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	CreateDebtPaymentResponse struct {
		TransactionID string  `json:"transaction_id"`
		Amount        float64 `json:"amount"`
		PaymentLink   string  `json:"payment_link"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		SignatureKey      string `json:"signature_key"`
	}
)
