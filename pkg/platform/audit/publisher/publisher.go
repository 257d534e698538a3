package publisher

import (
	"context"
	"log/slog"
	"sync"

	audit "user-registry/pkg/platform/audit"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store  audit.Store
	events chan audit.Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool

	mu     sync.Mutex
	closed bool
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithAsyncBuffer enables async processing with the specified buffer size.
// Events are queued and persisted in a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan audit.Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets a logger for async error reporting.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store audit.Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

// processEvents runs in a goroutine and persists events from the channel.
func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			if p.logger != nil {
				p.logger.Error("failed to persist audit event",
					"error", err,
					"action", event.Action,
					"subject", event.Subject,
				)
			}
		}
	}
}

// Emit records an audit event. In async mode the event is queued; a full
// queue or a closed publisher drops the event rather than blocking or
// panicking on the request path.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if p.async {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			if p.logger != nil {
				p.logger.Warn("audit publisher closed, dropping event",
					"action", event.Action,
					"subject", event.Subject,
				)
			}
			return nil
		}
		select {
		case p.events <- event:
		default:
			if p.logger != nil {
				p.logger.Warn("audit buffer full, dropping event",
					"action", event.Action,
					"subject", event.Subject,
				)
			}
		}
		return nil
	}
	return p.store.Append(ctx, event)
}

// Close shuts down the async publisher and waits for pending events to
// drain. Safe to call more than once.
func (p *Publisher) Close() {
	if !p.async || p.events == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()
	p.wg.Wait()
}
