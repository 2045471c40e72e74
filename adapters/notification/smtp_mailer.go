package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

const bodyTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>New portfolio contact</h2>
  <p><strong>From:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Received:</strong> {{.Received}}</p>
  <hr>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
  <p><a href="mailto:{{.Email}}">Reply to {{.Name}}</a></p>
</body>
</html>
`

var mailBody = template.Must(template.New("contact").Parse(bodyTemplate))

// SMTPMailer sends contact-form notifications to the site owner. It decides
// configured vs unconfigured once, at construction; an unconfigured mailer
// never touches the network.
type SMTPMailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	configured bool
	logger     logger.Logger

	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) *SMTPMailer {
	m := &SMTPMailer{
		host:     cfg.Mail.Server,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		from:     cfg.Mail.From,
		logger:   log,
		send:     smtp.SendMail,
	}

	m.configured = m.username != "" && m.password != "" && m.from != ""
	if m.configured {
		log.Info("Mail gateway initialized", zap.String("server", m.host), zap.Int("port", m.port))
	} else {
		log.Warn("Mail credentials not fully configured, notifications will not be sent")
	}
	return m
}

func (m *SMTPMailer) Configured() bool {
	return m.configured
}

// Notify attempts one delivery. It never returns an error: every failure is
// logged and folded into the result. The message goes to the configured
// "from" address with Reply-To set to the submitter.
func (m *SMTPMailer) Notify(_ context.Context, msg *contact.ContactMessage) contact.NotifyResult {
	if !m.configured {
		m.logger.Warn("Mail gateway unconfigured, skipping notification")
		return contact.NotifyUnconfigured
	}

	raw, err := m.compose(msg)
	if err != nil {
		m.logger.Error("Failed to compose contact notification", err)
		return contact.NotifyFailed
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := m.send(addr, auth, m.from, []string{m.from}, raw); err != nil {
		m.logger.Error("Failed to send contact notification", err,
			zap.String("sender_name", msg.Name), zap.String("sender_email", msg.Email))
		return contact.NotifyFailed
	}

	m.logger.Info("Contact notification sent",
		zap.String("sender_name", msg.Name), zap.String("sender_email", msg.Email))
	return contact.NotifySent
}

func (m *SMTPMailer) compose(msg *contact.ContactMessage) ([]byte, error) {
	var body bytes.Buffer
	err := mailBody.Execute(&body, map[string]string{
		"Name":     msg.Name,
		"Email":    msg.Email,
		"Message":  msg.Message,
		"Received": msg.CreatedAt.Format("January 2, 2006 at 3:04 PM"),
	})
	if err != nil {
		return nil, fmt.Errorf("render mail body: %w", err)
	}

	var raw bytes.Buffer
	fmt.Fprintf(&raw, "From: Portfolio Contact <%s>\r\n", m.from)
	fmt.Fprintf(&raw, "To: %s\r\n", m.from)
	fmt.Fprintf(&raw, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&raw, "Subject: New Portfolio Contact: %s\r\n", msg.Name)
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	raw.WriteString("\r\n")
	raw.Write(body.Bytes())
	return raw.Bytes(), nil
}
