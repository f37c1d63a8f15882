// Package notify is the notification gateway: mail rendering, SMTP delivery
// and the async queue that keeps delivery failures away from the primary
// request path.
package notify

import (
	"fmt"
	"strings"

	"github.com/monupal1122/grocery-backend/models"
)

// Mailer delivers a single message synchronously.
type Mailer interface {
	OrderConfirmation(order models.Order, user models.User, address models.Address) error
	OrderStatusUpdate(order models.Order, user models.User, address models.Address, oldStatus, newStatus string) error
	OTP(email, code string) error
}

func orderItemsTable(items []models.OrderItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b,
			`<tr><td style="padding:8px;border-bottom:1px solid #ddd;">%s</td>`+
				`<td style="padding:8px;border-bottom:1px solid #ddd;text-align:center;">%d</td>`+
				`<td style="padding:8px;border-bottom:1px solid #ddd;text-align:right;">₹%.2f</td>`+
				`<td style="padding:8px;border-bottom:1px solid #ddd;text-align:right;">₹%.2f</td></tr>`,
			item.ProductId.Hex(), item.Quantity, item.Price, float64(item.Quantity)*item.Price)
	}
	return b.String()
}

func paymentMethodDisplay(method string) string {
	if method == models.PaymentOnline {
		return "Online Payment (Razorpay)"
	}
	return "Cash on Delivery"
}

func confirmationBody(order models.Order, address models.Address) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333;">
<div style="max-width:600px;margin:0 auto;">
<div style="background:#10b981;color:white;padding:20px;text-align:center;"><h1>Order Confirmation</h1><p>Thank you for your order!</p></div>
<p><strong>Order ID:</strong> %s</p>
<p><strong>Order Date:</strong> %s</p>
<table style="width:100%%;border-collapse:collapse;">
<thead><tr><th style="background:#e5e7eb;padding:10px;text-align:left;">Product</th><th style="background:#e5e7eb;padding:10px;">Quantity</th><th style="background:#e5e7eb;padding:10px;text-align:right;">Unit Price</th><th style="background:#e5e7eb;padding:10px;text-align:right;">Total</th></tr></thead>
<tbody>%s</tbody></table>
<p><strong>Total Amount:</strong> ₹%.2f</p>
<p><strong>Payment Method:</strong> %s</p>
<p><strong>Payment Status:</strong> %s</p>
<p><strong>Delivery Address:</strong> %s, %s, %s %s</p>
</div></body></html>`,
		order.Id.Hex(),
		order.CreatedAt.Format("2 January 2006 15:04"),
		orderItemsTable(order.Items),
		order.TotalAmount,
		paymentMethodDisplay(order.PaymentMethod),
		order.PaymentStatus,
		address.FullAddress, address.City, address.State, address.Pincode)
}

func statusUpdateBody(order models.Order, oldStatus, newStatus string) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333;">
<div style="max-width:600px;margin:0 auto;">
<div style="background:#3b82f6;color:white;padding:20px;text-align:center;"><h1>Order Status Update</h1></div>
<p><strong>Order ID:</strong> %s</p>
<p>Your order status changed from <strong>%s</strong> to <strong>%s</strong>.</p>
<p><strong>Total Amount:</strong> ₹%.2f</p>
</div></body></html>`,
		order.Id.Hex(), oldStatus, newStatus, order.TotalAmount)
}

func otpBody(code string) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333;">
<div style="max-width:600px;margin:0 auto;">
<div style="background:#10b981;color:white;padding:20px;text-align:center;"><h1>Your Login Code</h1></div>
<p style="font-size:32px;letter-spacing:8px;text-align:center;"><strong>%s</strong></p>
<p>This code expires in 10 minutes. If you did not request it, ignore this email.</p>
</div></body></html>`, code)
}
