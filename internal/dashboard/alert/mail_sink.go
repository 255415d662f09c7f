package alert

import (
	"VCS_Status_Dashboard/pkg/mail"
	"context"
	"fmt"
)

type mailSink struct {
	sender     mail.Sender
	recipients []string
}

func (s *mailSink) AlertRaised(_ context.Context, alert Alert) error {
	err := s.sender.Send(mail.Message{
		To:       s.recipients,
		Subject:  fmt.Sprintf("[Dashboard] %s", alert.ID),
		TextBody: fmt.Sprintf("%s\n\nRaised at: %s", alert.Message, alert.RaisedAt.Format("02.01.2006 15:04:05")),
	})
	if err != nil {
		return fmt.Errorf("MailSink.AlertRaised: %w", err)
	}
	return nil
}

func (s *mailSink) AlertCleared(_ context.Context, id string) error {
	err := s.sender.Send(mail.Message{
		To:       s.recipients,
		Subject:  fmt.Sprintf("[Dashboard] %s resolved", id),
		TextBody: fmt.Sprintf("Alert %s has been cleared.", id),
	})
	if err != nil {
		return fmt.Errorf("MailSink.AlertCleared: %w", err)
	}
	return nil
}

// NewMailSink mails every raised and cleared alert to recipients.
func NewMailSink(sender mail.Sender, recipients []string) Sink {
	return &mailSink{
		sender:     sender,
		recipients: recipients,
	}
}
