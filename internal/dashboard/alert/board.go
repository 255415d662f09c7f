// Package alert keeps the alerts shown by the dashboard and forwards changes to external sinks.
package alert

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Alert struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSinkTimeout bounds a sink call when the board is built without a timeout.
const DefaultSinkTimeout = 10 * time.Second

// Sink receives alert changes. A sink error is logged and never blocks the board.
type Sink interface {
	AlertRaised(ctx context.Context, alert Alert) error
	AlertCleared(ctx context.Context, id string) error
}

// Board is idempotent per id: raising an existing alert replaces its message and clearing a
// missing alert does nothing. Sinks only hear about changes.
type Board interface {
	Raise(ctx context.Context, id string, message string)
	Clear(ctx context.Context, id string)
	// Dismiss removes an alert on behalf of the user without notifying sinks.
	Dismiss(id string) error
	List() []Alert
}

type board struct {
	mu     sync.Mutex
	alerts map[string]Alert
	sinks       []Sink
	sinkTimeout time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

func (b *board) Raise(ctx context.Context, id string, message string) {
	b.mu.Lock()
	now := b.now()
	existing, found := b.alerts[id]
	if found && existing.Message == message {
		b.mu.Unlock()
		return
	}
	alert := Alert{ID: id, Message: message, RaisedAt: now, UpdatedAt: now}
	if found {
		alert.RaisedAt = existing.RaisedAt
	}
	b.alerts[id] = alert
	b.mu.Unlock()

	b.logger.Warn("alert raised", zap.String("alert_id", id), zap.String("message", message))
	b.notify(ctx, id, func(ctx context.Context, sink Sink) error {
		return sink.AlertRaised(ctx, alert)
	})
}

func (b *board) Clear(ctx context.Context, id string) {
	b.mu.Lock()
	_, found := b.alerts[id]
	delete(b.alerts, id)
	b.mu.Unlock()
	if !found {
		return
	}

	b.logger.Info("alert cleared", zap.String("alert_id", id))
	b.notify(ctx, id, func(ctx context.Context, sink Sink) error {
		return sink.AlertCleared(ctx, id)
	})
}

// notify calls every sink with a deadline of sinkTimeout. The board stops waiting at the deadline
// even when a sink ignores its context, so a hung sink cannot hold the caller.
func (b *board) notify(ctx context.Context, id string, call func(ctx context.Context, sink Sink) error) {
	for _, sink := range b.sinks {
		sink := sink
		sinkCtx, cancel := context.WithTimeout(ctx, b.sinkTimeout)
		done := make(chan error, 1)
		go func() {
			done <- call(sinkCtx, sink)
		}()
		select {
		case err := <-done:
			if err != nil {
				b.logger.Error("failed to notify alert sink", zap.String("alert_id", id), zap.Error(err))
			}
		case <-sinkCtx.Done():
			b.logger.Error("alert sink did not answer in time", zap.String("alert_id", id), zap.Error(sinkCtx.Err()))
		}
		cancel()
	}
}

func (b *board) Dismiss(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, found := b.alerts[id]; !found {
		return fmt.Errorf("Board.Dismiss %q: %w", id, apperrors.ErrAlertNotFound)
	}
	delete(b.alerts, id)
	return nil
}

// List returns the alerts ordered by the time they were first raised.
func (b *board) List() []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make([]Alert, 0, len(b.alerts))
	for _, alert := range b.alerts {
		res = append(res, alert)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].RaisedAt.Equal(res[j].RaisedAt) {
			return res[i].ID < res[j].ID
		}
		return res[i].RaisedAt.Before(res[j].RaisedAt)
	})
	return res
}

// NewBoard uses DefaultSinkTimeout when sinkTimeout is not positive.
func NewBoard(logger *zap.Logger, sinkTimeout time.Duration, sinks ...Sink) Board {
	if sinkTimeout <= 0 {
		sinkTimeout = DefaultSinkTimeout
	}
	return &board{
		alerts:      make(map[string]Alert),
		sinks:       sinks,
		sinkTimeout: sinkTimeout,
		logger:      logger,
		now:         time.Now,
	}
}
