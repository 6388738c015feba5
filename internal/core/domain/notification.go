package domain

// Attachment references a stored file to be attached to an outgoing mail.
type Attachment struct {
	Path        string
	FileName    string
	ContentType string
}

// MailMessage is a single outgoing email.
type MailMessage struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment

	// Kind and DedupKey are delivery metadata, never rendered.
	Kind     string
	DedupKey string
}
