// Package mail delivers notification emails over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Config captures the SMTP connection settings.
type Config struct {
	Host string
	Port int
	// Secure selects implicit TLS (usually port 465). Otherwise STARTTLS is
	// used when the server offers it.
	Secure             bool
	User               string
	Pass               string
	InsecureSkipVerify bool
	// From is the default sender. Falls back to User.
	From    string
	Timeout time.Duration
}

// SMTPSender implements ports.MailSender. A connection is opened per message.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &SMTPSender{cfg: cfg}
}

// Send builds msg and delivers it synchronously.
func (s *SMTPSender) Send(ctx context.Context, msg domain.MailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail: send %q: %w", msg.Subject, err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(msg domain.MailMessage) (*gomail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("mail: no recipients")
	}
	from := msg.From
	if from == "" {
		from = s.cfg.From
	}
	if from == "" {
		from = s.cfg.User
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("mail: from %q: %w", from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("mail: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	for _, a := range msg.Attachments {
		// go-mail skips files it cannot stat without reporting it.
		if _, err := os.Stat(a.Path); err != nil {
			return nil, fmt.Errorf("mail: attachment %q: %w", a.FileName, err)
		}
		opts := []gomail.FileOption{gomail.WithFileName(a.FileName)}
		if a.ContentType != "" {
			opts = append(opts, gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		}
		m.AttachFile(a.Path, opts...)
	}
	return m, nil
}

func (s *SMTPSender) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(s.cfg.Timeout),
		gomail.WithTLSConfig(&tls.Config{
			ServerName:         s.cfg.Host,
			InsecureSkipVerify: s.cfg.InsecureSkipVerify, //nolint:gosec
		}),
	}
	if s.cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.User),
			gomail.WithPassword(s.cfg.Pass),
		)
	}

	c, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: client: %w", err)
	}
	return c, nil
}
