// File: services/notification/mailer.go
package notification

import (
	"context"
	"fmt"
	"time"

	"terravista/config"
	"terravista/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer implements Mailer through the SendGrid v3 API.
type SendGridMailer struct {
	client   *sendgrid.Client
	from     *mail.Email
	office   string
	siteName string
}

// NewSendGridMailer builds a mailer from the application configuration.
func NewSendGridMailer() *SendGridMailer {
	cfg := config.AppConfig
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     mail.NewEmail(cfg.EmailFromName, cfg.EmailFrom),
		office:   cfg.OfficeEmail,
		siteName: cfg.EmailFromName,
	}
}

func (m *SendGridMailer) send(to *mail.Email, subject, plain, html string) error {
	msg := mail.NewSingleEmail(m.from, subject, to, plain, html)
	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendBookingNotification relays a new booking request to the office inbox.
func (m *SendGridMailer) SendBookingNotification(_ context.Context, p models.BookingEmailPayload) error {
	subject := fmt.Sprintf("New consultation request: %s on %s", p.Name, humanDate(p.Date))
	plain, html := renderBookingNotification(p)
	return m.send(mail.NewEmail("", m.office), subject, plain, html)
}

// SendConfirmation tells the visitor their consultation is confirmed.
func (m *SendGridMailer) SendConfirmation(_ context.Context, p models.ConfirmationEmailPayload) error {
	subject := fmt.Sprintf("Your consultation on %s is confirmed", humanDate(p.Date))
	plain, html := renderConfirmation(p, m.siteName)
	return m.send(mail.NewEmail(p.Name, p.Email), subject, plain, html)
}

// SendRejection tells the visitor their request was declined and why.
func (m *SendGridMailer) SendRejection(_ context.Context, p models.RejectionEmailPayload) error {
	subject := fmt.Sprintf("About your consultation request for %s", humanDate(p.Date))
	plain, html := renderRejection(p, m.siteName)
	return m.send(mail.NewEmail(p.Name, p.Email), subject, plain, html)
}

// SendContactMessage relays a contact-form submission to the office inbox.
func (m *SendGridMailer) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	subject := fmt.Sprintf("Contact form message from %s", msg.Name)
	plain, html := renderContactMessage(msg)
	return m.send(mail.NewEmail("", m.office), subject, plain, html)
}

// humanDate formats "2006-01-02" as "Monday, January 2, 2006"; a date that
// fails to parse is passed through untouched.
func humanDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}
