// Package payment wraps the Razorpay gateway: order (payment intent) creation
// and signature verification for the capture callback.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/rand"

	"github.com/razorpay/razorpay-go"
)

type Gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *Gateway) KeyID() string { return g.keyID }

// CreateOrder registers a payment intent with the gateway. Amount is in
// rupees; Razorpay wants paise.
func (g *Gateway) CreateOrder(amount float64) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": "INR",
		"receipt":  "order_rcptid_" + randomReceiptSuffix(),
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return order, nil
}

// Verify checks the capture signature against the order/payment pair.
func (g *Gateway) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}

// VerifySignature recomputes HMAC-SHA256(orderID + "|" + paymentID) with the
// key secret and compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

const receiptChars = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomReceiptSuffix() string {
	b := make([]byte, 7)
	for i := range b {
		b[i] = receiptChars[rand.Intn(len(receiptChars))]
	}
	return string(b)
}
