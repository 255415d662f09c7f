// Package poller refreshes every enabled datasource on a fixed wall-clock interval.
//
// Sources are polled concurrently and independently: a source that fails to fetch or parse raises
// an alert and keeps its previous checks, while the others commit their new cycle.
package poller

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/alert"
	"VCS_Status_Dashboard/internal/dashboard/datetime"
	"VCS_Status_Dashboard/internal/dashboard/feed"
	"VCS_Status_Dashboard/internal/dashboard/fetcher"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"VCS_Status_Dashboard/internal/dashboard/publisher"
	"VCS_Status_Dashboard/internal/dashboard/registry"
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Poller interface {
	Start()
	Stop()
	// PollOnce runs one cycle over the enabled datasources and waits for all of them.
	PollOnce(ctx context.Context) []SourceResult
}

type SourceResult struct {
	Datasource string
	Err        error
}

// UpdatePublisher is told about every committed cycle.
type UpdatePublisher interface {
	PublishSourceUpdated(ctx context.Context, update publisher.SourceUpdated) error
}

type Options struct {
	Interval             time.Duration
	SourceTimeout        time.Duration
	SinkTimeout          time.Duration
	InSyncThreshold      time.Duration
	MaxConcurrentSources int
	Parse                feed.ParseOptions
}

type poller struct {
	client    fetcher.FeedClient
	registry  *registry.Registry
	store     *aggregate.Store
	alerts    alert.Board
	publisher UpdatePublisher
	dates     *datetime.Parser
	logger    *zap.Logger
	opts      Options
	now       func() time.Time

	inFlight atomic.Bool
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// Start polls immediately and then on every interval. A tick that fires while the previous one is
// still running is skipped.
func (p *poller) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.opts.Interval)
		defer ticker.Stop()
		p.onTick()
		for {
			select {
			case <-ticker.C:
				p.onTick()
			case <-p.ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the running cycle and waits for it to return.
func (p *poller) Stop() {
	p.cancel()
	p.wg.Wait()
}

func (p *poller) onTick() {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Warn("previous polling cycle still running, skipping tick")
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.inFlight.Store(false)
		p.PollOnce(p.ctx)
	}()
}

func (p *poller) PollOnce(ctx context.Context) []SourceResult {
	start := p.now()
	sources := p.registry.Enabled()
	results := make([]SourceResult, len(sources))

	var g errgroup.Group
	if p.opts.MaxConcurrentSources > 0 {
		g.SetLimit(p.opts.MaxConcurrentSources)
	}
	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			results[i] = SourceResult{Datasource: source.Name, Err: p.pollSource(ctx, source)}
			return nil
		})
	}
	g.Wait()

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	p.logger.Debug("polling cycle finished",
		zap.Int("datasources", len(sources)),
		zap.Int("failed", failed),
		zap.Duration("duration", p.now().Sub(start)),
	)
	return results
}

func (p *poller) pollSource(ctx context.Context, source model.Datasource) error {
	checksDoc, availabilityDoc, err := p.read(ctx, source)
	if err != nil {
		err = fmt.Errorf("poller.pollSource %s: %w", source.Name, err)
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			p.logger.Info("datasource refresh canceled", zap.String("datasource", source.Name))
			return err
		}
		p.logger.Error("failed to refresh datasource", zap.String("datasource", source.Name), zap.Error(err))
		if e := p.registry.RecordFailure(source.Name, err, p.now()); e != nil {
			p.logger.Warn("failed to record datasource failure", zap.String("datasource", source.Name), zap.Error(e))
		}
		if p.registry.IsEnabled(source.Name) {
			p.alerts.Raise(ctx, alert.SourceFailedID(source.Name), fmt.Sprintf("Datasource %s could not be refreshed: %v", source.Name, err))
		}
		return err
	}

	kept, matched := p.store.IngestCycle(source.Name, checksDoc.Checks, availabilityDoc.Records)
	refreshedAt := p.dates.Parse(checksDoc.RefreshTime)
	if e := p.registry.RecordChecksUpdate(source.Name, refreshedAt); e != nil {
		p.logger.Warn("failed to record checks update", zap.String("datasource", source.Name), zap.Error(e))
	}
	if e := p.registry.RecordAvailabilityWindow(source.Name, p.dates.Parse(availabilityDoc.FromDate), p.dates.Parse(availabilityDoc.ToDate)); e != nil {
		p.logger.Warn("failed to record availability window", zap.String("datasource", source.Name), zap.Error(e))
	}
	p.alerts.Clear(ctx, alert.SourceFailedID(source.Name))

	inSync := aggregate.InSync(p.now(), refreshedAt, p.opts.InSyncThreshold)
	if inSync {
		p.alerts.Clear(ctx, alert.SourceOutdatedID(source.Name))
	} else if p.registry.IsEnabled(source.Name) {
		// a source disabled while this cycle ran already had its alerts cleared
		p.alerts.Raise(ctx, alert.SourceOutdatedID(source.Name), outdatedMessage(source.Name, refreshedAt))
	}

	if p.publisher != nil {
		pubCtx, cancel := context.WithTimeout(ctx, p.opts.SinkTimeout)
		err = p.publisher.PublishSourceUpdated(pubCtx, publisher.SourceUpdated{
			Datasource:  source.Name,
			Checks:      kept,
			Matched:     matched,
			Version:     p.store.Version(),
			RefreshedAt: refreshedAt,
			InSync:      inSync,
		})
		cancel()
		if err != nil {
			p.logger.Error("failed to publish datasource update", zap.String("datasource", source.Name), zap.Error(err))
		}
	}
	p.logger.Debug("datasource refreshed",
		zap.String("datasource", source.Name),
		zap.Int("checks", kept),
		zap.Int("availability_records", matched),
		zap.Bool("in_sync", inSync),
	)
	return nil
}

// read downloads both documents concurrently and parses them. Nothing is ingested unless both succeed.
func (p *poller) read(ctx context.Context, source model.Datasource) (feed.ChecksDocument, feed.AvailabilityDocument, error) {
	if p.opts.SourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.SourceTimeout)
		defer cancel()
	}
	var checksBody, availabilityBody []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := p.client.Fetch(gctx, source.ChecksURL)
		if err != nil {
			return fmt.Errorf("fetching checks: %w", err)
		}
		checksBody = body
		return nil
	})
	g.Go(func() error {
		body, err := p.client.Fetch(gctx, source.AvailabilityURL)
		if err != nil {
			return fmt.Errorf("fetching availability: %w", err)
		}
		availabilityBody = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return feed.ChecksDocument{}, feed.AvailabilityDocument{}, err
	}

	checksDoc, err := feed.ParseChecks(bytes.NewReader(checksBody), source.Name, p.opts.Parse)
	if err != nil {
		return feed.ChecksDocument{}, feed.AvailabilityDocument{}, err
	}
	availabilityDoc, err := feed.ParseAvailability(bytes.NewReader(availabilityBody))
	if err != nil {
		return feed.ChecksDocument{}, feed.AvailabilityDocument{}, err
	}
	return checksDoc, availabilityDoc, nil
}

func outdatedMessage(datasource string, refreshedAt time.Time) string {
	if refreshedAt.IsZero() {
		return fmt.Sprintf("Datasource %s has no readable refresh time", datasource)
	}
	return fmt.Sprintf("Datasource %s is out of sync, last refresh at %s", datasource, refreshedAt.Format("02.01.2006 15:04:05"))
}

// NewPoller accepts a nil publisher.
func NewPoller(client fetcher.FeedClient, registry *registry.Registry, store *aggregate.Store, alerts alert.Board,
	publisher UpdatePublisher, dates *datetime.Parser, logger *zap.Logger, opts Options) Poller {
	ctx, cancel := context.WithCancel(context.Background())
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.SinkTimeout <= 0 {
		opts.SinkTimeout = alert.DefaultSinkTimeout
	}
	return &poller{
		client:    client,
		registry:  registry,
		store:     store,
		alerts:    alerts,
		publisher: publisher,
		dates:     dates,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
	}
}
