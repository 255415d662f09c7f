package mail

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	Send(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	From     string
	Password string
	Host     string
	Port     int
}

type sender struct {
	from   string
	dialer Dialer
}

func (s *sender) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("Sender.Send: no recipient")
	}
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.Send: %w", err)
	}
	return nil
}

func NewSender(cfg Config) Sender {
	return &sender{
		from:   cfg.From,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password),
	}
}
