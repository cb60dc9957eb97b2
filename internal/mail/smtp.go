// Package mail sends contact-form submissions through an SMTP provider.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	gomail "github.com/wneessen/go-mail"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
)

var bodyTmpl = template.Must(template.New("contact").Parse(`
<h3>New Contact Message</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type SMTPMailer struct {
	client *gomail.Client
	cfg    SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, cfg: cfg}, nil
}

// Send delivers one templated message with Reply-To set to the submitter so
// the recipient can answer directly.
func (m *SMTPMailer) Send(ctx context.Context, msg services.ContactMessage) error {
	var body bytes.Buffer
	if err := bodyTmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("render mail body: %w", err)
	}

	mail := gomail.NewMsg()
	if err := mail.FromFormat("Portfolio Contact", m.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := mail.To(m.cfg.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	if err := mail.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	mail.Subject("Portfolio Contact: " + msg.Subject)
	mail.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
