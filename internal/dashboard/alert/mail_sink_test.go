package alert_test

import (
	"VCS_Status_Dashboard/internal/dashboard/alert"
	"VCS_Status_Dashboard/pkg/mail"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMailSink(t *testing.T) {
	ctx := context.Background()
	recipients := []string{"ops@example.com"}

	testCases := []struct {
		name       string
		setupMocks func(sender *mail.MockSender)
		notify     func(sink alert.Sink) error
		expectErr  bool
	}{
		{
			name: "raised",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().Send(gomock.Cond(func(x any) bool {
					msg := x.(mail.Message)
					return msg.Subject == "[Dashboard] source-a-failed" && assert.ObjectsAreEqual(recipients, msg.To) &&
						len(msg.TextBody) > 0
				})).Return(nil)
			},
			notify: func(sink alert.Sink) error {
				return sink.AlertRaised(ctx, alert.Alert{ID: "source-a-failed", Message: "fetch failed", RaisedAt: time.Now()})
			},
		},
		{
			name: "cleared",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().Send(gomock.Cond(func(x any) bool {
					return x.(mail.Message).Subject == "[Dashboard] source-a-failed resolved"
				})).Return(nil)
			},
			notify: func(sink alert.Sink) error {
				return sink.AlertCleared(ctx, "source-a-failed")
			},
		},
		{
			name: "sender error",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().Send(gomock.Any()).Return(errors.New("smtp down"))
			},
			notify: func(sink alert.Sink) error {
				return sink.AlertCleared(ctx, "source-a-failed")
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(sender)

			err := tc.notify(alert.NewMailSink(sender, recipients))
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
