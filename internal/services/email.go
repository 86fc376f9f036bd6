package services

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"devmarket/internal/config"
	"devmarket/internal/models"
)

// EmailService sends transactional mail over SMTP. When no SMTP credentials
// are configured the service runs disabled: every send is logged and
// swallowed so local development works without a mail account.
//
// Sends are fire-and-forget from the caller's perspective; failures are
// logged and returned, never retried here.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewEmailService builds the service from SMTP configuration.
func NewEmailService(cfg config.SMTPConfig, logger *slog.Logger) *EmailService {
	if cfg.User == "" || cfg.Pass == "" {
		logger.Warn("SMTP credentials not configured, email sending disabled")
		return &EmailService{from: cfg.From, logger: logger}
	}
	return &EmailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
		logger: logger,
	}
}

func (es *EmailService) send(to, subject, body string) error {
	if es.dialer == nil {
		es.logger.Info("email sending disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		es.logger.Error("email send failed", "to", to, "subject", subject, "err", err)
		return err
	}
	es.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}

// SendInquiryReceived confirms a purchase inquiry to the sender.
func (es *EmailService) SendInquiryReceived(inquiry *models.Inquiry) error {
	body := fmt.Sprintf(`
		<h2>Thanks for your inquiry</h2>
		<p>Hi %s,</p>
		<p>We received your inquiry about a %s project and will get back to you shortly.</p>
		<p>Your message:</p>
		<blockquote>%s</blockquote>
	`, inquiry.Name, inquiry.ProjectType, inquiry.Message)
	return es.send(inquiry.Email, "We received your inquiry", body)
}

// SendOrderConfirmation confirms a placed order to the customer.
func (es *EmailService) SendOrderConfirmation(order *models.Order) error {
	body := fmt.Sprintf(`
		<h2>Order confirmed</h2>
		<p>Hi %s,</p>
		<p>Thank you for your purchase of <strong>%s</strong>.</p>
		<p>You'll receive an email with download instructions soon.</p>
	`, order.CustomerName, order.ProjectTitle)
	return es.send(order.CustomerEmail, "Your order is confirmed", body)
}

// SendOrderStatusUpdate tells the customer their order changed status.
func (es *EmailService) SendOrderStatusUpdate(order *models.Order) error {
	body := fmt.Sprintf(`
		<h2>Order update</h2>
		<p>Hi %s,</p>
		<p>Your order for <strong>%s</strong> is now <strong>%s</strong>.</p>
	`, order.CustomerName, order.ProjectTitle, order.Status)
	return es.send(order.CustomerEmail, "Your order status changed", body)
}
