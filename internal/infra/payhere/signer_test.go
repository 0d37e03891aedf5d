package payhere

import (
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const testSecret = "MzE0NjE2NTk2MjM4NzQwMzk0MDMyNTMzMTY1MzE5"

func newTestSigner() service.PaymentSigner {
	return NewSigner(&config.Config{Payment: &config.PaymentConfig{MerchantSecret: testSecret}})
}

func TestCheckoutHash_Format(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	hash := s.CheckoutHash("1211149", "ItemNo12345", decimal.RequireFromString("1000"), "LKR", testSecret)

	assert.Len(t, hash, 32)
	assert.Regexp(t, "^[0-9A-F]{32}$", hash)
	assert.Equal(t, upperMD5("1211149"+"ItemNo12345"+"1000.00"+"LKR"+upperMD5(testSecret)), hash)
}

func TestCheckoutHash_AmountAlwaysTwoDecimals(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	a := s.CheckoutHash("m", "o", decimal.RequireFromString("10.5"), "LKR", testSecret)
	b := s.CheckoutHash("m", "o", decimal.RequireFromString("10.50"), "LKR", testSecret)
	c := s.CheckoutHash("m", "o", decimal.RequireFromString("10.505"), "LKR", testSecret)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func signedNotification() service.PaymentNotification {
	n := service.PaymentNotification{
		MerchantID: "1211149",
		OrderID:    "6a8a1c1e-2d57-4a09-9b7b-3c1a7a0f1c55",
		Amount:     "1500.00",
		Currency:   "LKR",
		StatusCode: "2",
	}
	n.Signature = upperMD5(n.MerchantID + n.OrderID + n.Amount + n.Currency + n.StatusCode + upperMD5(testSecret))

	return n
}

func TestVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	n := signedNotification()
	assert.True(t, s.Verify(n))

	n.Signature = "  " + strings.ToLower(n.Signature) + " "
	assert.True(t, s.Verify(n), "signature comparison is case-insensitive")
}

func TestVerify_AnySingleCharacterMutationFails(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	base := signedNotification()

	mutate := func(v string) string {
		b := []byte(v)
		if b[0] == 'X' {
			b[0] = 'Y'
		} else {
			b[0] = 'X'
		}
		return string(b)
	}

	fields := map[string]func(n *service.PaymentNotification){
		"merchant":  func(n *service.PaymentNotification) { n.MerchantID = mutate(n.MerchantID) },
		"order":     func(n *service.PaymentNotification) { n.OrderID = mutate(n.OrderID) },
		"amount":    func(n *service.PaymentNotification) { n.Amount = mutate(n.Amount) },
		"currency":  func(n *service.PaymentNotification) { n.Currency = mutate(n.Currency) },
		"status":    func(n *service.PaymentNotification) { n.StatusCode = "0" },
		"signature": func(n *service.PaymentNotification) { n.Signature = mutate(n.Signature) },
	}

	for name, apply := range fields {
		n := base
		apply(&n)
		assert.False(t, s.Verify(n), name)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	other := NewSigner(&config.Config{Payment: &config.PaymentConfig{MerchantSecret: "another"}})
	assert.False(t, other.Verify(signedNotification()))
}
