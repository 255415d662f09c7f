// Package consumer applies datasource enable/disable commands received over Kafka.
package consumer

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/service"
	"VCS_Status_Dashboard/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type ControlConsumer interface {
	Start()
	Stop()
}

// fetchRetryDelay is the pause after a failed fetch before the reader is asked again.
const fetchRetryDelay = time.Second

type controlConsumer struct {
	kafkaReader      infra.KafkaReader
	dashboardService service.DashboardService
	logger           *zap.Logger
	retryDelay       time.Duration
}

// controlCommand toggles the datasource when Enabled is missing.
type controlCommand struct {
	Datasource string `json:"datasource"`
	Enabled    *bool  `json:"enabled"`
}

func (c *controlConsumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("controlConsumer.Start: %w", err)
				c.logger.Error("failed to fetch message", zap.Error(err))
				time.Sleep(c.retryDelay)
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err = c.handle(ctx, m); err != nil {
				cancel()
				c.logger.Error("failed to apply control command", zap.Error(err))
				continue
			}
			err = c.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("controlConsumer.Start: %w", err)
				c.logger.Error("failed to commit messages", zap.Error(err))
			}
		}
	}()
}

// handle returns an error only when the message should be delivered again.
// Empty, malformed and unknown-datasource commands are logged and dropped.
func (c *controlConsumer) handle(ctx context.Context, m kafka.Message) error {
	if m.Value == nil {
		return nil
	}
	var command controlCommand
	if err := json.Unmarshal(m.Value, &command); err != nil || command.Datasource == "" {
		c.logger.Warn("dropping malformed control command", zap.ByteString("value", m.Value), zap.Error(err))
		return nil
	}

	var status service.DatasourceStatus
	var err error
	if command.Enabled == nil {
		status, err = c.dashboardService.ToggleDatasource(ctx, command.Datasource)
	} else {
		status, err = c.dashboardService.SetDatasourceEnabled(ctx, command.Datasource, *command.Enabled)
	}
	if errors.Is(err, apperrors.ErrDatasourceNotFound) {
		c.logger.Warn("dropping control command for unknown datasource", zap.String("datasource", command.Datasource))
		return nil
	}
	if err != nil {
		return fmt.Errorf("controlConsumer.handle: %w", err)
	}
	c.logger.Info("datasource state changed",
		zap.String("datasource", status.Name),
		zap.Bool("enabled", status.Enabled),
	)
	return nil
}

func (c *controlConsumer) Stop() {
	if err := c.kafkaReader.Close(); err != nil {
		c.logger.Error("failed to close kafka reader", zap.Error(err))
	}
}

func NewControlConsumer(reader infra.KafkaReader, dashboardService service.DashboardService, logger *zap.Logger) ControlConsumer {
	return &controlConsumer{
		kafkaReader:      reader,
		dashboardService: dashboardService,
		logger:           logger,
		retryDelay:       fetchRetryDelay,
	}
}
