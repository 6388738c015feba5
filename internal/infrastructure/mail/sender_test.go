package mail

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "abc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o600))
	return path
}

func TestBuildMessage(t *testing.T) {
	s := NewSMTPSender(Config{Host: "smtp.example.com", Port: 587, User: "relay@example.com"})
	resume := writeResume(t)

	m, err := s.buildMessage(domain.MailMessage{
		To:      []string{"admin@example.com"},
		Subject: "New Job Application: Go Engineer",
		Body:    "Name: Cara",
		Attachments: []domain.Attachment{
			{Path: resume, FileName: "cv.pdf", ContentType: "application/pdf"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"<admin@example.com>"}, m.GetToString())
	assert.Equal(t, []string{"New Job Application: Go Engineer"}, m.GetGenHeader(gomail.HeaderSubject))
	from := m.GetFromString()
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "relay@example.com")

	attachments := m.GetAttachments()
	require.Len(t, attachments, 1)
	assert.Equal(t, "cv.pdf", attachments[0].Name)
}

func TestBuildMessage_MissingAttachment(t *testing.T) {
	s := NewSMTPSender(Config{User: "relay@example.com"})
	gone := filepath.Join(t.TempDir(), "gone.pdf")

	m, err := s.buildMessage(domain.MailMessage{
		To:          []string{"admin@example.com"},
		Subject:     "New Job Application: Go Engineer",
		Attachments: []domain.Attachment{{Path: gone, FileName: "cv.pdf"}},
	})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "cv.pdf")
}

func TestSend_MissingAttachmentFailsBeforeDialing(t *testing.T) {
	s := NewSMTPSender(Config{Host: "127.0.0.1", Port: 1, User: "relay@example.com"})
	err := s.Send(context.Background(), domain.MailMessage{
		To:          []string{"admin@example.com"},
		Subject:     "x",
		Attachments: []domain.Attachment{{Path: filepath.Join(t.TempDir(), "gone.pdf"), FileName: "cv.pdf"}},
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildMessage_PrefersExplicitFrom(t *testing.T) {
	s := NewSMTPSender(Config{User: "relay@example.com", From: "jobs@example.com"})

	m, err := s.buildMessage(domain.MailMessage{To: []string{"a@example.com"}, Subject: "x"})
	require.NoError(t, err)
	assert.Contains(t, m.GetFromString()[0], "jobs@example.com")

	m, err = s.buildMessage(domain.MailMessage{From: "hr@example.com", To: []string{"a@example.com"}, Subject: "x"})
	require.NoError(t, err)
	assert.Contains(t, m.GetFromString()[0], "hr@example.com")
}

func TestBuildMessage_Errors(t *testing.T) {
	s := NewSMTPSender(Config{User: "relay@example.com"})

	_, err := s.buildMessage(domain.MailMessage{Subject: "no recipients"})
	assert.Error(t, err)

	_, err = s.buildMessage(domain.MailMessage{To: []string{"not an address"}, Subject: "x"})
	assert.Error(t, err)
}

func TestSend_NoRecipientsFailsBeforeDialing(t *testing.T) {
	s := NewSMTPSender(Config{Host: "127.0.0.1", Port: 1})
	err := s.Send(context.Background(), domain.MailMessage{Subject: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}
