package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_MkWq8vXbzn4P2a"
	paymentID := "pay_MkWrEjL1Bq93Zd"
	signature := sign(orderID, paymentID, secret)

	assert.True(t, VerifySignature(orderID, paymentID, signature, secret))
	assert.False(t, VerifySignature(orderID, paymentID, signature, "wrong_secret"))
	assert.False(t, VerifySignature(orderID, "pay_other", signature, secret))
	assert.False(t, VerifySignature(orderID, paymentID, "tampered", secret))
	assert.False(t, VerifySignature(orderID, paymentID, "", secret))
}

func TestGatewayVerify(t *testing.T) {
	g := NewGateway("rzp_test_key", "test_secret_key")
	orderID := "order_MkWq8vXbzn4P2a"
	paymentID := "pay_MkWrEjL1Bq93Zd"

	assert.True(t, g.Verify(orderID, paymentID, sign(orderID, paymentID, "test_secret_key")))
	assert.False(t, g.Verify(orderID, paymentID, sign(orderID, paymentID, "other")))
	assert.Equal(t, "rzp_test_key", g.KeyID())
}

func TestRandomReceiptSuffix(t *testing.T) {
	a := randomReceiptSuffix()
	b := randomReceiptSuffix()
	assert.Len(t, a, 7)
	assert.Len(t, b, 7)
}
