package alert_test

import (
	"VCS_Status_Dashboard/internal/dashboard/alert"
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	mockalert "VCS_Status_Dashboard/internal/dashboard/mocks/alert"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func alertWithMessage(id string, message string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		a, ok := x.(alert.Alert)
		return ok && a.ID == id && a.Message == message
	})
}

func TestBoard_Raise(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sink := mockalert.NewMockSink(ctrl)
	board := alert.NewBoard(zap.NewNop(), time.Second, sink)

	gomock.InOrder(
		sink.EXPECT().AlertRaised(gomock.Any(), alertWithMessage("source-a-failed", "fetch failed")).Return(nil),
		sink.EXPECT().AlertRaised(gomock.Any(), alertWithMessage("source-a-failed", "parse failed")).Return(nil),
	)

	board.Raise(ctx, "source-a-failed", "fetch failed")
	board.Raise(ctx, "source-a-failed", "fetch failed")
	board.Raise(ctx, "source-a-failed", "parse failed")

	alerts := board.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, "parse failed", alerts[0].Message)
	assert.False(t, alerts[0].UpdatedAt.Before(alerts[0].RaisedAt))
}

func TestBoard_Clear(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sink := mockalert.NewMockSink(ctrl)
	board := alert.NewBoard(zap.NewNop(), time.Second, sink)

	sink.EXPECT().AlertRaised(gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().AlertCleared(gomock.Any(), "source-a-outdated").Return(nil).Times(1)

	board.Clear(ctx, "source-a-outdated")
	board.Raise(ctx, "source-a-outdated", "outdated")
	board.Clear(ctx, "source-a-outdated")
	board.Clear(ctx, "source-a-outdated")

	assert.Empty(t, board.List())
}

func TestBoard_SinkErrorDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	failing := mockalert.NewMockSink(ctrl)
	working := mockalert.NewMockSink(ctrl)
	board := alert.NewBoard(zap.NewNop(), time.Second, failing, working)

	failing.EXPECT().AlertRaised(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	working.EXPECT().AlertRaised(gomock.Any(), alertWithMessage("a", "message")).Return(nil)

	board.Raise(ctx, "a", "message")
	assert.Len(t, board.List(), 1)
}

func TestBoard_HungSinkIsBounded(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	hung := mockalert.NewMockSink(ctrl)
	working := mockalert.NewMockSink(ctrl)
	board := alert.NewBoard(zap.NewNop(), 50*time.Millisecond, hung, working)

	release := make(chan struct{})
	defer close(release)
	hung.EXPECT().AlertRaised(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ alert.Alert) error {
		<-release
		return nil
	})
	working.EXPECT().AlertRaised(gomock.Any(), alertWithMessage("a", "message")).DoAndReturn(func(ctx context.Context, _ alert.Alert) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})

	start := time.Now()
	board.Raise(ctx, "a", "message")

	assert.Less(t, time.Since(start), time.Second)
	assert.Len(t, board.List(), 1)
}

func TestBoard_Dismiss(t *testing.T) {
	ctx := context.Background()
	board := alert.NewBoard(zap.NewNop(), time.Second)
	board.Raise(ctx, "a", "first")
	board.Raise(ctx, "b", "second")

	require.NoError(t, board.Dismiss("a"))
	alerts := board.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, "b", alerts[0].ID)

	assert.ErrorIs(t, board.Dismiss("a"), apperrors.ErrAlertNotFound)
}
