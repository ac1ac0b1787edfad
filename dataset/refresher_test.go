package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/event"
	"github.com/erin-james/ai-query-interface/model"
)

type stubConsumer struct {
	messages chan *sarama.ConsumerMessage
	errs     chan *sarama.ConsumerError
}

func newStubConsumer() *stubConsumer {
	return &stubConsumer{
		messages: make(chan *sarama.ConsumerMessage, 8),
		errs:     make(chan *sarama.ConsumerError, 8),
	}
}

func (c *stubConsumer) Messages() <-chan *sarama.ConsumerMessage { return c.messages }
func (c *stubConsumer) Errors() <-chan *sarama.ConsumerError     { return c.errs }

type stubProvider struct {
	snap *model.Snapshot
	err  error
}

func (p *stubProvider) Load(_ context.Context) (*model.Snapshot, error) {
	return p.snap, p.err
}

func refreshEvent(t *testing.T) []byte {
	t.Helper()
	content, err := json.Marshal(event.DatasetUpdatedEvent{
		Source:     "test",
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return content
}

func TestRefresher_SwapsOnEvent(t *testing.T) {
	old := &model.Snapshot{}
	next := &model.Snapshot{Customers: []model.Customer{{ID: "C001"}}}

	store := NewStore(old)
	consumer := newStubConsumer()
	consumer.messages <- &sarama.ConsumerMessage{Value: refreshEvent(t)}

	r := NewRefresher(store, &stubProvider{snap: next}, consumer, zap.NewNop())
	r.Consume(context.Background(), 200*time.Millisecond)

	assert.Same(t, next, store.Current())
}

func TestRefresher_KeepsSnapshotWhenReloadFails(t *testing.T) {
	old := &model.Snapshot{}

	store := NewStore(old)
	consumer := newStubConsumer()
	consumer.messages <- &sarama.ConsumerMessage{Value: refreshEvent(t)}

	r := NewRefresher(store, &stubProvider{err: errors.New("boom")}, consumer, zap.NewNop())
	r.Consume(context.Background(), 200*time.Millisecond)

	assert.Same(t, old, store.Current())
}

func TestRefresher_IgnoresMalformedEvents(t *testing.T) {
	old := &model.Snapshot{}
	next := &model.Snapshot{}

	store := NewStore(old)
	consumer := newStubConsumer()
	consumer.messages <- &sarama.ConsumerMessage{Value: []byte("not json")}

	r := NewRefresher(store, &stubProvider{snap: next}, consumer, zap.NewNop())
	r.Consume(context.Background(), 200*time.Millisecond)

	assert.Same(t, old, store.Current())
}

func TestRefresher_StopsOnContextCancel(t *testing.T) {
	store := NewStore(&model.Snapshot{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	r := NewRefresher(store, &stubProvider{snap: &model.Snapshot{}}, newStubConsumer(), zap.NewNop())
	go func() {
		r.Consume(ctx, 0)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop on context cancel")
	}
}
