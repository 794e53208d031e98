// Package mail delivers verification emails.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"
	"time"
)

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// LogSender writes messages to the log instead of sending them. Used in
// development, where the verification link is read from the server output.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("component", "mail")}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "email not sent (log driver)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}

// SMTPConfig holds SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender sends messages through an SMTP relay with STARTTLS when offered.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	now      func() time.Time
}

// NewSMTPSender creates an SMTPSender.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail, now: time.Now}
}

// Send delivers the message. net/smtp has no context support, so ctx is
// only checked before dialling.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("mail: header contains a line break")
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.sendMail(addr, auth, s.cfg.From, []string{msg.To}, s.render(msg)); err != nil {
		return fmt.Errorf("mail: send to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) render(msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", s.now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return b.Bytes()
}

var verificationTmpl = template.Must(template.New("verify").Parse(`Hello {{.Name}},

Please confirm your email address to take part in {{.Election}}:

{{.Link}}

The link expires in {{.Expires}}. If you did not create an account, ignore this email.
`))

// VerificationEmail renders the message sent after sign-up and on resend.
func VerificationEmail(to, name, election, link string, expires time.Duration) (Message, error) {
	var b bytes.Buffer
	err := verificationTmpl.Execute(&b, map[string]string{
		"Name":     name,
		"Election": election,
		"Link":     link,
		"Expires":  expires.String(),
	})
	if err != nil {
		return Message{}, fmt.Errorf("mail: render verification: %w", err)
	}
	return Message{To: to, Subject: "Verify your email for " + election, Body: b.String()}, nil
}

type sender interface {
	Send(ctx context.Context, msg Message) error
}

// VerificationMailer sends verification links through a Sender.
type VerificationMailer struct {
	sender   sender
	election string
}

// NewVerificationMailer creates a VerificationMailer for the named election.
func NewVerificationMailer(s sender, election string) *VerificationMailer {
	return &VerificationMailer{sender: s, election: election}
}

// SendVerification renders and sends the verification email.
func (m *VerificationMailer) SendVerification(ctx context.Context, to, name, link string, expires time.Duration) error {
	msg, err := VerificationEmail(to, name, m.election, link, expires)
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, msg)
}
