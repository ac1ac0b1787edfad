package dataset

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/event"
	"github.com/erin-james/ai-query-interface/kafka"
)

// Refresher swaps a new snapshot into the store whenever a dataset-updated
// event arrives. The reload is whole-snapshot: a bad reload keeps the old
// snapshot in place rather than serving partial data.
type Refresher struct {
	store    *Store
	provider Provider
	consumer kafka.IConsumer
	logger   *zap.Logger
}

func NewRefresher(store *Store, provider Provider, consumer kafka.IConsumer, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		store:    store,
		provider: provider,
		consumer: consumer,
		logger:   logger,
	}
}

// Consume blocks handling refresh events until ctx is done, or until
// stopAfter elapses when it is non-zero.
func (r *Refresher) Consume(ctx context.Context, stopAfter time.Duration) {
	startTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-r.consumer.Messages():
			var ev event.DatasetUpdatedEvent
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				r.logger.Warn("ignoring malformed refresh event",
					zap.Int64("offset", msg.Offset), zap.Error(err))
				continue
			}
			r.refresh(ctx, ev)
		case err := <-r.consumer.Errors():
			r.logger.Error("failed to consume refresh event", zap.Error(err))
		default:
			if stopAfter != 0 && time.Now().After(startTime.Add(stopAfter)) {
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context, ev event.DatasetUpdatedEvent) {
	snap, err := r.provider.Load(ctx)
	if err != nil {
		r.logger.Error("snapshot reload failed, keeping current snapshot",
			zap.String("source", ev.Source), zap.Error(err))
		return
	}
	r.store.Swap(snap)
	r.logger.Info("snapshot refreshed",
		zap.String("source", ev.Source),
		zap.String("table", ev.Table),
		zap.Time("occurred_at", ev.OccurredAt),
	)
}
