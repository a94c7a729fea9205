package email

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolio-backend/pkg/logger"
)

// ContactNotificationData describes a contact-form submission to announce
// to the portfolio owner.
type ContactNotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// UnreadDigestData is the payload of the daily unread-messages summary.
type UnreadDigestData struct {
	UnreadCount int
}

// Service is the outbound notification channel. Callers must treat every
// failure as non-fatal; message capture never depends on delivery.
type Service interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
	SendUnreadDigest(ctx context.Context, data UnreadDigestData) error
}

type smtpService struct {
	addr string
	from string
	to   string
}

// NewSMTPService sends plain-text mail through the configured SMTP relay.
func NewSMTPService(host, port, from, to string) Service {
	return &smtpService{
		addr: host + ":" + port,
		from: from,
		to:   to,
	}
}

func (s *smtpService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", data.Subject)
	body := fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s`, data.Name, data.Email, data.Subject, data.Message)

	return s.send(subject, body)
}

func (s *smtpService) SendUnreadDigest(ctx context.Context, data UnreadDigestData) error {
	subject := "Portfolio: unread messages digest"
	body := fmt.Sprintf("You have %d unread contact message(s) waiting.", data.UnreadCount)

	return s.send(subject, body)
}

func (s *smtpService) send(subject, body string) error {
	if s.to == "" {
		logger.Debug("email recipient not configured, skipping send")
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, s.to, subject, body))

	if err := smtp.SendMail(s.addr, nil, s.from, []string{s.to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
