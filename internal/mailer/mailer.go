// Package mailer dispatches account mails. Delivery is best effort: the
// flows that trigger a mail log failures and carry on, they never fail the
// request because of SMTP trouble.
package mailer

import (
	"errors"
	"fmt"

	"alaayoubi/content-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound notification boundary.
type Mailer interface {
	SendVerification(email, token string) error
	SendPasswordReset(email, token string) error
}

type smtpMailer struct {
	cfg *config.Config
}

func NewSMTP(cfg *config.Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendVerification(email, token string) error {
	link := fmt.Sprintf("%v/verify?token=%v", m.baseURL(), token)

	body := fmt.Sprintf("Click <a href='%v'>here</a> to verify your account.<br><br>This link will expire in %v",
		link, m.cfg.JWT.VerificationTTL)

	return m.send(email, "Verify your email address", body)
}

func (m *smtpMailer) SendPasswordReset(email, token string) error {
	link := fmt.Sprintf("%v/reset-password?token=%v", m.baseURL(), token)

	body := fmt.Sprintf("Click <a href='%v'>here</a> to reset your password.<br><br>This link will expire in %v. If you didn't request a reset you can ignore this mail",
		link, m.cfg.Reset.TTL)

	return m.send(email, "Password reset request", body)
}

func (m *smtpMailer) send(sendTo, subject, htmlBody string) error {
	if m.cfg.Mail.Host == "" {
		return errors.New("no mail host configured")
	}

	if sendTo == m.cfg.Mail.From {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Mail.From)
	msg.SetHeader("To", sendTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Mail.Host, m.cfg.Mail.Port, m.cfg.Mail.Username, m.cfg.Mail.Password)

	return d.DialAndSend(msg)
}

func (m *smtpMailer) baseURL() string {
	var s string
	if m.cfg.Host.SSLEnabled {
		s = "s"
	}

	return fmt.Sprintf("http%v://%v", s, m.cfg.Host.Domain)
}
