package service

import "github.com/shopspring/decimal"

// PaymentNotification carries the fields the gateway posts back after a payment attempt.
type PaymentNotification struct {
	MerchantID string
	OrderID    string
	Amount     string
	Currency   string
	StatusCode string
	Signature  string
}

// PaymentSigner computes and verifies gateway signatures.
type PaymentSigner interface {
	// CheckoutHash returns the signature a checkout form must carry.
	CheckoutHash(merchantID, orderID string, amount decimal.Decimal, currency, merchantSecret string) string

	// Verify reports whether the notification was signed with the configured merchant secret.
	Verify(notification PaymentNotification) bool
}
