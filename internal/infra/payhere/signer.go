// Package payhere computes and verifies PayHere checkout and notification signatures.
package payhere

import (
	"crypto/md5" //nolint:gosec // the gateway protocol mandates MD5
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/shopspring/decimal"
)

type md5Signer struct {
	merchantSecret string
}

// NewSigner returns a signer verifying notifications with the configured merchant secret.
func NewSigner(cfg *config.Config) service.PaymentSigner {
	signer := &md5Signer{}
	if cfg.Payment != nil {
		signer.merchantSecret = cfg.Payment.MerchantSecret
	}

	return signer
}

// CheckoutHash returns upper(md5(merchantId + orderId + amount + currency + upper(md5(secret)))).
// The amount always carries two decimals.
func (s *md5Signer) CheckoutHash(merchantID, orderID string, amount decimal.Decimal, currency, merchantSecret string) string {
	return upperMD5(merchantID + orderID + amount.StringFixed(2) + currency + upperMD5(merchantSecret))
}

// Verify recomputes the notification signature with the status code after the currency.
func (s *md5Signer) Verify(n service.PaymentNotification) bool {
	expected := upperMD5(n.MerchantID + n.OrderID + n.Amount + n.Currency + n.StatusCode + upperMD5(s.merchantSecret))
	got := strings.ToUpper(strings.TrimSpace(n.Signature))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

func upperMD5(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
