package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// Notification kinds, used for metrics and de-duplication.
const (
	KindContactAdmin            = "contact_admin"
	KindContactConfirmation     = "contact_confirmation"
	KindConsultationAdmin       = "consultation_admin"
	KindApplicationAdmin        = "application_admin"
	KindApplicationConfirmation = "application_confirmation"
)

// NotifierConfig holds the mail envelope settings.
type NotifierConfig struct {
	From  string
	Admin string
}

// MailNotifier renders notification mail for stored submissions and hands
// it to the mail queue.
type MailNotifier struct {
	queue   ports.MailQueue
	resumes ports.ResumeStore
	cfg     NotifierConfig
	log     zerolog.Logger
}

func NewMailNotifier(queue ports.MailQueue, resumes ports.ResumeStore, cfg NotifierConfig, log zerolog.Logger) *MailNotifier {
	return &MailNotifier{queue: queue, resumes: resumes, cfg: cfg, log: log}
}

func (n *MailNotifier) ContactSubmitted(c *domain.Contact) {
	n.toAdmin(domain.MailMessage{
		Subject:  "New Contact Form: " + c.Name,
		Body:     fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", c.Name, c.Email, orDash(c.Phone), c.Message),
		Kind:     KindContactAdmin,
		DedupKey: dedupKey(domain.FormContact, c.Email, c.Message),
	})
	n.toSubmitter(c.Email, domain.MailMessage{
		Subject: "We've received your message",
		Body:    fmt.Sprintf("Hi %s, thanks for contacting us!", c.Name),
		Kind:    KindContactConfirmation,
	})
}

func (n *MailNotifier) ConsultationSubmitted(c *domain.Consultation) {
	var b strings.Builder
	fmt.Fprintf(&b, "Full name: %s\n", c.FullName)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Phone: %s\n", orDash(c.Phone))
	fmt.Fprintf(&b, "Consultation type: %s\n", c.ConsultationType)
	if c.OtherTypeDetails != nil {
		fmt.Fprintf(&b, "Details: %s\n", *c.OtherTypeDetails)
	}
	if c.PreferredDate != nil {
		fmt.Fprintf(&b, "Preferred date: %s\n", c.PreferredDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Meeting mode: %s\n", orDash(c.MeetingMode))
	fmt.Fprintf(&b, "\n%s", c.ProjectMessage)

	n.toAdmin(domain.MailMessage{
		Subject:  "New Consultation Request: " + c.FullName,
		Body:     b.String(),
		Kind:     KindConsultationAdmin,
		DedupKey: dedupKey(domain.FormConsultation, c.Email, c.ConsultationType+"\n"+c.ProjectMessage),
	})
}

func (n *MailNotifier) ApplicationSubmitted(a *domain.Application) {
	msg := domain.MailMessage{
		Subject:  "New Job Application: " + a.FullName,
		Body:     fmt.Sprintf("Name: %s\nEmail: %s\nPosition: %s", a.FullName, a.Email, a.PositionApplyingFor),
		Kind:     KindApplicationAdmin,
		DedupKey: dedupKey(domain.FormApplication, a.Email, a.PositionApplyingFor),
	}
	if path, err := n.resumes.Resolve(a.ResumePath); err == nil {
		msg.Attachments = []domain.Attachment{{
			Path:        path,
			FileName:    a.ResumeFileName,
			ContentType: a.ResumeContentType,
		}}
	} else {
		n.log.Warn().Err(err).Str("application_id", a.ID).Msg("resume not attachable, notifying without it")
	}
	n.toAdmin(msg)

	n.toSubmitter(a.Email, domain.MailMessage{
		Subject: "Application Received",
		Body: fmt.Sprintf("Hi %s, we received your application for %s. Our HR team will reach out soon.",
			a.FullName, a.PositionApplyingFor),
		Kind: KindApplicationConfirmation,
	})
}

func (n *MailNotifier) toAdmin(msg domain.MailMessage) {
	if n.cfg.Admin == "" {
		n.log.Warn().Str("kind", msg.Kind).Msg("no admin recipient configured, notification skipped")
		return
	}
	msg.From = n.cfg.From
	msg.To = []string{n.cfg.Admin}
	n.queue.Enqueue(msg)
}

func (n *MailNotifier) toSubmitter(to string, msg domain.MailMessage) {
	msg.From = n.cfg.From
	msg.To = []string{to}
	n.queue.Enqueue(msg)
}

// dedupKey identifies an admin notification by form, submitter and content.
func dedupKey(kind domain.FormKind, email, content string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(email) + "\x00" + content))
	return string(kind) + ":" + hex.EncodeToString(sum[:16])
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
