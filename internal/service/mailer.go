package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"hiredesk/internal/config"

	"github.com/google/uuid"
)

// Mailer sends one plain-text email and returns the transport's message
// identifier. The mail configuration is resolved by the caller per send, so
// implementations never read the environment themselves.
type Mailer interface {
	Send(ctx context.Context, cfg *config.SMTPConfig, to, subject, body string) (string, error)
}

// --- SMTPMailer ---

// SMTPMailer delivers through an external SMTP relay. Port 465 connects with
// TLS from the start; any other port upgrades via STARTTLS when the server
// offers it.
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer { return &SMTPMailer{} }

func (m *SMTPMailer) Send(ctx context.Context, cfg *config.SMTPConfig, to, subject, body string) (string, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	slog.Debug("sending email via SMTP", "smtp_addr", addr, "from", cfg.From, "to", to)

	c, err := m.connect(addr, cfg)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if ok, _ := c.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
		if err := c.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := c.Mail(cfg.From); err != nil {
		return "", fmt.Errorf("failed to set MAIL FROM %s: %w", cfg.From, err)
	}
	if err := c.Rcpt(to); err != nil {
		return "", fmt.Errorf("failed to set RCPT TO %s: %w", to, err)
	}

	wc, err := c.Data()
	if err != nil {
		return "", fmt.Errorf("failed to open data writer: %w", err)
	}

	messageID := generateMessageID(cfg.From)
	msg := "From: " + fmt.Sprintf("%q <%s>", cfg.FromName, cfg.From) + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Message-Id: " + messageID + "\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err := wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write email data: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize email data: %w", err)
	}
	if err := c.Quit(); err != nil {
		return "", fmt.Errorf("failed to close smtp session: %w", err)
	}

	return messageID, nil
}

func (m *SMTPMailer) connect(addr string, cfg *config.SMTPConfig) (*smtp.Client, error) {
	if cfg.Port == 465 {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.Host})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SMTP server %s: %w", addr, err)
		}
		c, err := smtp.NewClient(conn, cfg.Host)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to start smtp session on %s: %w", addr, err)
		}
		return c, nil
	}

	c, err := smtp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server %s: %w", addr, err)
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			c.Close()
			return nil, fmt.Errorf("starttls failed on %s: %w", addr, err)
		}
	}
	return c, nil
}

// --- LogMailer ---

// LogMailer logs instead of sending; for development and tests.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) Send(ctx context.Context, cfg *config.SMTPConfig, to, subject, body string) (string, error) {
	messageID := generateMessageID(cfg.From)
	slog.Info("--- Sending Email (LogMailer) ---",
		"to", to,
		"subject", subject,
		"message_id", messageID,
		"body", body,
	)
	return messageID, nil
}

// generateMessageID builds an RFC 5322 style identifier scoped to the
// sender's domain.
func generateMessageID(from string) string {
	host := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		host = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}
