package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	"eventease/internal/shared/config"
)

// EmailSender delivers booking notifications to the recipient's inbox.
type EmailSender interface {
	SendNotification(ctx context.Context, notification *BookingNotification) error
}

const bookingConfirmedTemplate = `
<html>
<body>
<h2>Your booking is confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your seats are reserved: <strong>{{.SeatList}}</strong></p>
<p>Total: <strong>{{printf "%.2f" .TotalPrice}}</strong></p>
<p>Booking reference: {{.BookingID}}</p>
</body>
</html>
`

// SMTPEmailSender sends notification emails over SMTP.
type SMTPEmailSender struct {
	cfg      config.EmailConfig
	template *template.Template
}

func NewSMTPEmailSender(cfg config.EmailConfig) (*SMTPEmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}

	tmpl, err := template.New("booking_confirmed").Parse(bookingConfirmedTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	return &SMTPEmailSender{
		cfg:      cfg,
		template: tmpl,
	}, nil
}

func (s *SMTPEmailSender) SendNotification(ctx context.Context, notification *BookingNotification) error {
	if notification.RecipientEmail == "" {
		return fmt.Errorf("notification %s has no recipient email", notification.ID)
	}

	var body bytes.Buffer
	data := struct {
		RecipientName string
		SeatList      string
		TotalPrice    float64
		BookingID     string
	}{
		RecipientName: notification.RecipientName,
		SeatList:      strings.Join(notification.Seats, ", "),
		TotalPrice:    notification.TotalPrice,
		BookingID:     notification.BookingID.String(),
	}
	if err := s.template.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	subject := "Your booking is confirmed"
	if notification.Type == NotificationTypeBookingCancelled {
		subject = "Your booking has been cancelled"
	}

	msg := buildMIMEMessage(s.cfg.FromEmail, notification.RecipientEmail, subject, body.String())

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{notification.RecipientEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func buildMIMEMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// LogEmailSender logs notifications instead of sending them. Used in
// development where no SMTP server is configured.
type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) SendNotification(ctx context.Context, notification *BookingNotification) error {
	log.Printf("[email] %s to %s (%s): seats %s, total %.2f",
		notification.Type,
		notification.RecipientEmail,
		notification.RecipientName,
		strings.Join(notification.Seats, ", "),
		notification.TotalPrice)
	return nil
}
