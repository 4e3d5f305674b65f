package service

import (
	"context"
	"fmt"

	"vehicle-rental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

// NewEmailService sends transactional mail through SendGrid. An empty API
// key turns the service into a no-op logger, which keeps local
// development working without credentials.
func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *emailService) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf("Hello %s,\n\nUse the following token to reset your password:\n\n%s\n\nIf you did not request this, you can ignore this email.", name, resetToken)
	return s.send(to, name, subject, body)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, to, clientName, vehicleName, agreementNumber string, total, advance, balance int64) error {
	subject := fmt.Sprintf("Rental Agreement %s Created", agreementNumber)
	body := fmt.Sprintf(
		"A new rental agreement has been recorded.\n\nClient: %s\nVehicle: %s\nAgreement: %s\nTotal: Rs %d\nAdvance: Rs %d\nBalance: Rs %d",
		clientName, vehicleName, agreementNumber, total, advance, balance,
	)
	return s.send(to, "", subject, body)
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, to, clientName, agreementNumber string, advance, balance int64) error {
	subject := fmt.Sprintf("Payment Recorded for Agreement %s", agreementNumber)
	body := fmt.Sprintf(
		"Payment updated for %s.\n\nAgreement: %s\nPaid so far: Rs %d\nRemaining balance: Rs %d",
		clientName, agreementNumber, advance, balance,
	)
	return s.send(to, "", subject, body)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, to, clientName, agreementNumber string, balance int64) error {
	subject := fmt.Sprintf("Outstanding Balance on Agreement %s", agreementNumber)
	body := fmt.Sprintf(
		"Reminder: %s has an outstanding balance of Rs %d on agreement %s.",
		clientName, balance, agreementNumber,
	)
	return s.send(to, "", subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Info("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
