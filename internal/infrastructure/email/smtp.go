package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service sends help desk notification emails. Delivery is best-effort:
// callers log failures and never block ticket operations on them.
type Service interface {
	SendTicketCreated(to, subject string, ticketID uint) error
	SendTicketStatusUpdated(to, subject string, ticketID uint, oldStatus, newStatus string) error
	SendNewReply(to, subject string, ticketID uint) error
	SendTicketAssigned(to, subject string, ticketID uint) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) ticketURL(ticketID uint) string {
	return fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)
}

func (s *SMTPEmailService) SendTicketCreated(to, subject string, ticketID uint) error {
	url := s.ticketURL(ticketID)

	emailSubject := fmt.Sprintf("New ticket: %s", subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Ticket Submitted</h2>
			<p>A new support ticket has been submitted:</p>
			<p><strong>%s</strong></p>
			<p><a href="%s">View the ticket</a></p>
		</body>
		</html>
	`, subject, url)

	plainBody := fmt.Sprintf(`
New Ticket Submitted

A new support ticket has been submitted:
%s

View the ticket:
%s
	`, subject, url)

	return s.sendEmail(to, emailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusUpdated(to, subject string, ticketID uint, oldStatus, newStatus string) error {
	url := s.ticketURL(ticketID)

	emailSubject := fmt.Sprintf("Ticket updated: %s", subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Status Updated</h2>
			<p>The status of your ticket <strong>%s</strong> changed from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p><a href="%s">View the ticket</a></p>
		</body>
		</html>
	`, subject, oldStatus, newStatus, url)

	plainBody := fmt.Sprintf(`
Ticket Status Updated

The status of your ticket "%s" changed from %s to %s.

View the ticket:
%s
	`, subject, oldStatus, newStatus, url)

	return s.sendEmail(to, emailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendNewReply(to, subject string, ticketID uint) error {
	url := s.ticketURL(ticketID)

	emailSubject := fmt.Sprintf("New reply on: %s", subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Reply</h2>
			<p>Your ticket <strong>%s</strong> has a new reply.</p>
			<p><a href="%s">View the conversation</a></p>
		</body>
		</html>
	`, subject, url)

	plainBody := fmt.Sprintf(`
New Reply

Your ticket "%s" has a new reply.

View the conversation:
%s
	`, subject, url)

	return s.sendEmail(to, emailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketAssigned(to, subject string, ticketID uint) error {
	url := s.ticketURL(ticketID)

	emailSubject := fmt.Sprintf("Ticket assigned to you: %s", subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Assigned</h2>
			<p>The ticket <strong>%s</strong> has been assigned to you.</p>
			<p><a href="%s">View the ticket</a></p>
		</body>
		</html>
	`, subject, url)

	plainBody := fmt.Sprintf(`
Ticket Assigned

The ticket "%s" has been assigned to you.

View the ticket:
%s
	`, subject, url)

	return s.sendEmail(to, emailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopEmailService satisfies Service when email delivery is disabled.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService { return &NoopEmailService{} }

func (NoopEmailService) SendTicketCreated(string, string, uint) error { return nil }

func (NoopEmailService) SendTicketStatusUpdated(string, string, uint, string, string) error {
	return nil
}

func (NoopEmailService) SendNewReply(string, string, uint) error { return nil }

func (NoopEmailService) SendTicketAssigned(string, string, uint) error { return nil }
