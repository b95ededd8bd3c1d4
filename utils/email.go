package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/mataajer/souq-api/models"
)

// EmailConfigured reports whether SMTP settings are present. Email is
// optional; checkout proceeds without it.
func EmailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_FROM") != ""
}

func smtpDialer() *gomail.Dialer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
}

// SendOrderConfirmation emails the customer their order number and a
// summary of the order lines.
func SendOrderConfirmation(storeName string, order models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s - Order %s confirmed", storeName, order.OrderNumber))

	rows := ""
	for _, item := range order.Items {
		rows += fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", item.ProductName, item.Quantity, item.Total())
	}
	body := fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>Your order number is <strong>%s</strong>. Keep it to track your order.</p>
		<table border="1" cellpadding="4">
			<tr><th>Product</th><th>Qty</th><th>Total</th></tr>
			%s
		</table>
		<p><strong>Total: %.2f</strong></p>
	`, order.CustomerName, order.OrderNumber, rows, order.TotalAmount)
	m.SetBody("text/html", body)

	if err := smtpDialer().DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
