package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/andresrv/blogpress-backend/pkg/logger"
)

// Config holds SMTP transport settings
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Mailer sends transactional mail
type Mailer interface {
	SendPasswordResetEmail(to, resetURL string, ttl time.Duration) error
}

type smtpMailer struct {
	cfg Config
}

// NewSMTPMailer creates a Mailer backed by plain-auth SMTP.
// When credentials are missing the mailer logs the message instead of
// sending it, so local development works without a mail account.
func NewSMTPMailer(cfg Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendPasswordResetEmail(to, resetURL string, ttl time.Duration) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf(
		"You are receiving this email because you (or someone else) has requested a password reset.\r\n"+
			"Please click on this link to complete the process: %s\r\n"+
			"This link is valid for %d minutes.\r\n"+
			"If you did not request this, please just ignore this email.\r\n",
		resetURL, int(ttl.Minutes()),
	)

	if m.cfg.Username == "" || m.cfg.Password == "" {
		logger.Info("[DEV MODE] Password reset email not sent, SMTP credentials missing", map[string]interface{}{
			"to":        to,
			"reset_url": resetURL,
		})
		return nil
	}

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.cfg.From, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{to}, message); err != nil {
		logger.Error("Failed to send password reset email", err, map[string]interface{}{
			"to": to,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Password reset email sent", map[string]interface{}{
		"to": to,
	})
	return nil
}
