package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
	"gopkg.in/gomail.v2"
)

// Notifier delivers the trainer notification triggered by an entry alert.
// JournalService depends on this interface so tests can substitute a fake.
type Notifier interface {
	NotifyEntryAlert(riderName, horseName string, submittedAt time.Time, preview string) error
}

// EmailService sends outbound mail through one of three providers:
// "log" (development, writes the send to the log), "resend", or "smtp".
type EmailService struct {
	provider     string
	resendClient *resend.Client
	smtpDialer   *gomail.Dialer
	fromEmail    string
	trainerEmail string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewEmailService(provider, resendAPIKey string, smtp SMTPConfig, fromEmail, trainerEmail string) *EmailService {
	s := &EmailService{
		provider:     provider,
		fromEmail:    fromEmail,
		trainerEmail: trainerEmail,
	}

	switch provider {
	case "resend":
		if resendAPIKey != "" {
			s.resendClient = resend.NewClient(resendAPIKey)
		}
	case "smtp":
		if smtp.Host != "" {
			s.smtpDialer = gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
		}
	}

	return s
}

// NotifyEntryAlert sends the alert email to the trainer. Delivery is
// best-effort and blocks the calling request; the caller decides how to
// surface a failure.
func (s *EmailService) NotifyEntryAlert(riderName, horseName string, submittedAt time.Time, preview string) error {
	subject, body := entryAlertEmailTemplate(riderName, horseName, submittedAt, preview)
	return s.send("entry_alert", s.trainerEmail, subject, body)
}

func (s *EmailService) send(kind, to, subject, body string) error {
	switch s.provider {
	case "log":
		slog.Info("email sent (log mode)", "type", kind, "to", to, "subject", subject)
		return nil

	case "resend":
		if s.resendClient == nil {
			return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
		}
		params := &resend.SendEmailRequest{
			From:    s.fromEmail,
			To:      []string{to},
			Subject: subject,
			Text:    body,
		}
		_, err := s.resendClient.Emails.SendWithContext(context.Background(), params)
		if err == nil {
			slog.Info("email sent", "type", kind, "to", to)
		}
		return err

	case "smtp":
		if s.smtpDialer == nil {
			return fmt.Errorf("email service not configured (missing SMTP_HOST)")
		}
		message := gomail.NewMessage()
		message.SetHeader("From", s.fromEmail)
		message.SetHeader("To", to)
		message.SetHeader("Subject", subject)
		message.SetBody("text/plain", body)
		err := s.smtpDialer.DialAndSend(message)
		if err == nil {
			slog.Info("email sent", "type", kind, "to", to)
		}
		return err

	default:
		return fmt.Errorf("unknown email provider: %s", s.provider)
	}
}
