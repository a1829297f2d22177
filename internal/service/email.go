package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) SendOverdueReminder(ctx context.Context, toEmail, customerName, equipmentName string, hoursOverdue float64, expectedReturn time.Time) error {
	subject := fmt.Sprintf("Overdue rental: %s", equipmentName)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s was due back on %s and is now %.1f hours overdue. Extra hourly charges apply until the equipment is returned.\n\nThe SmartRentals Team",
		customerName, equipmentName, expectedReturn.Format(time.RFC1123), hoursOverdue)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your rental of <strong>%s</strong> was due back on %s and is now <strong>%.1f hours</strong> overdue. Extra hourly charges apply until the equipment is returned.</p><p>The SmartRentals Team</p>",
		customerName, equipmentName, expectedReturn.Format(time.RFC1123), hoursOverdue)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(customerName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send overdue reminder: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
