package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
)

type MailConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	// Inbox receives every contact submission alongside the submitter.
	Inbox string
}

func MailConfigFromEnv() MailConfig {
	port := 465
	if raw := os.Getenv("MAIL_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}
	return MailConfig{
		Server:   os.Getenv("MAIL_SERVER"),
		Port:     port,
		Username: os.Getenv("MAIL_USERNAME"),
		Password: os.Getenv("MAIL_PASSWORD"),
		Inbox:    os.Getenv("MAIL_INBOX"),
	}
}

// ContactMailer delivers contact-form submissions over SMTPS (implicit TLS,
// the smtp.gmail.com:465 style of setup).
type ContactMailer struct {
	cfg     MailConfig
	timeout time.Duration
	log     *logger.Logger
}

func NewContactMailer(cfg MailConfig, log *logger.Logger) *ContactMailer {
	return &ContactMailer{
		cfg:     cfg,
		timeout: 30 * time.Second,
		log:     log,
	}
}

func (m *ContactMailer) Send(ctx context.Context, name, replyTo, message string) error {
	if m.cfg.Server == "" || m.cfg.Username == "" {
		return fmt.Errorf("mail server not configured")
	}

	recipients := []string{replyTo}
	if m.cfg.Inbox != "" {
		recipients = append(recipients, m.cfg.Inbox)
	}
	msg := m.buildMessage(name, replyTo, message, recipients)

	if err := m.sendSMTP(ctx, recipients, msg); err != nil {
		return fmt.Errorf("sending contact mail: %w", err)
	}

	m.log.Info("contact mail sent", "from", name)
	return nil
}

func (m *ContactMailer) buildMessage(name, replyTo, message string, recipients []string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.Username))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(recipients, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: New Contact Form Submission from %s\r\n", name))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("Name: %s\r\nEmail: %s\r\nMessage: %s\r\n", name, replyTo, message))
	return msg.String()
}

func (m *ContactMailer) sendSMTP(ctx context.Context, recipients []string, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Server, m.cfg.Port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	tlsConn := tls.Client(conn, &tls.Config{
		ServerName: m.cfg.Server,
		MinVersion: tls.VersionTLS12,
	})

	client, err := smtp.NewClient(tlsConn, m.cfg.Server)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(m.cfg.Username); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, to := range recipients {
		if err := client.Rcpt(to); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", to, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	_ = client.Quit()
	return nil
}
