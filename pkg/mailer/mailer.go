package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer when a host is configured, otherwise a mailer
// that only logs the message.
func New(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	log = log.With(zap.String("component", "mailer"))
	if cfg.Host == "" {
		return &logMailer{log: log}
	}
	return &smtpMailer{cfg: cfg, log: log, send: smtp.SendMail}
}

type smtpMailer struct {
	cfg  utils.EmailConfig
	log  *zap.Logger
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{to}, buildMessage(m.cfg.From, to, subject, body)); err != nil {
		m.log.Error("Failed to send mail", zap.Error(err), zap.String("to", to))
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("Mail (SMTP disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
