package workers

import (
	"chat-relay/contract"
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"context"
	"log/slog"
	"time"
)

// BacklogMonitorWorker periodically reports the queue usage of every subscriber.
// Sampling is non-blocking; an event lost on a full telemetry channel is simply
// replaced by the next sample.
type BacklogMonitorWorker struct {
	log            *slog.Logger
	stats          contract.IStatsProvider
	telemetryChan  chan event.Event
	metricInterval time.Duration
}

func NewBacklogMonitorWorker(log *slog.Logger,
	stats contract.IStatsProvider, telemetryChan chan event.Event,
	metricInterval time.Duration) *BacklogMonitorWorker {
	return &BacklogMonitorWorker{
		log:            log,
		stats:          stats,
		telemetryChan:  telemetryChan,
		metricInterval: metricInterval,
	}
}

func (w BacklogMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping backlog sampling")
			return nil
		case <-ticker.C:
			for _, sub := range w.stats.Subscribers() {
				select {
				case <-ctx.Done():
					return nil
				case w.telemetryChan <- toBacklogEvent(sub):
				default:
					w.log.Debug("Observability telemetry event lost")
				}
			}
		}
	}
}

func toBacklogEvent(sub chat.SubscriberStats) event.Event {
	return event.New(event.SubscriberBacklogType, event.SubscriberBacklog{
		SubscriberID: sub.ID,
		Seq:          sub.Seq,
		Capacity:     sub.Capacity,
		Length:       sub.Length,
		Dropped:      sub.Dropped,
	})
}
