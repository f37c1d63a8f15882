package notify

import (
	"fmt"
	"net/smtp"

	"github.com/monupal1122/grocery-backend/models"
)

// SMTPMailer sends mail over plain SMTP with auth. The gateway stays behind
// the Mailer interface so the workflow never depends on the transport.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody)

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, msg)
}

func (m *SMTPMailer) OrderConfirmation(order models.Order, user models.User, address models.Address) error {
	subject := fmt.Sprintf("Order Confirmation - %s", order.Id.Hex())
	return m.send(user.Email, subject, confirmationBody(order, address))
}

func (m *SMTPMailer) OrderStatusUpdate(order models.Order, user models.User, address models.Address, oldStatus, newStatus string) error {
	subject := fmt.Sprintf("Order %s - %s", order.Id.Hex(), newStatus)
	return m.send(user.Email, subject, statusUpdateBody(order, oldStatus, newStatus))
}

func (m *SMTPMailer) OTP(email, code string) error {
	return m.send(email, "Your login code", otpBody(code))
}
