package metrics

import (
	"context"
	"log/slog"
	"time"
)

type EventType string

const (
	EventQuerySent      EventType = "query_sent"
	EventQueryCompleted EventType = "query_completed"
	EventQueryFailed    EventType = "query_failed"
	EventHealthChanged  EventType = "health_changed"
)

type MetricEvent struct {
	Type       EventType
	Timestamp  time.Time
	Operation  string
	Duration   time.Duration
	StatusCode int
	Error      string
	Healthy    bool
}

type Collector struct {
	eventCh chan MetricEvent
	metrics *Metrics
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan MetricEvent, bufferSize),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

func (c *Collector) EventChannel() chan<- MetricEvent {
	return c.eventCh
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Metrics collector started")
	defer c.logger.Info("Metrics collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event MetricEvent) {
	switch event.Type {
	case EventQuerySent:
		c.metrics.IncrementQueries(event.Operation)

	case EventQueryCompleted:
		c.metrics.RecordResponse(event.Operation, event.Duration, event.StatusCode)

	case EventQueryFailed:
		c.metrics.RecordFailure(event.Operation, event.Duration, event.Error)

	case EventHealthChanged:
		c.metrics.UpdateHealthStatus(event.Healthy)
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

// emit never blocks the caller; events are dropped when the buffer is full.
func (c *Collector) emit(event MetricEvent) {
	select {
	case c.eventCh <- event:
	default:
		c.logger.Debug("Metrics buffer full, dropping event", slog.String("type", string(event.Type)))
	}
}

func (c *Collector) QuerySent(operation string) {
	c.emit(MetricEvent{Type: EventQuerySent, Timestamp: time.Now(), Operation: operation})
}

func (c *Collector) QueryCompleted(operation string, duration time.Duration, statusCode int) {
	c.emit(MetricEvent{
		Type:       EventQueryCompleted,
		Timestamp:  time.Now(),
		Operation:  operation,
		Duration:   duration,
		StatusCode: statusCode,
	})
}

func (c *Collector) QueryFailed(operation string, duration time.Duration, err error) {
	event := MetricEvent{
		Type:      EventQueryFailed,
		Timestamp: time.Now(),
		Operation: operation,
		Duration:  duration,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.emit(event)
}

func (c *Collector) HealthChanged(healthy bool) {
	c.emit(MetricEvent{Type: EventHealthChanged, Timestamp: time.Now(), Healthy: healthy})
}

func (c *Collector) Snapshot(backendURL string) Snapshot {
	return c.metrics.Snapshot(backendURL)
}
