package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/openbid/auctiond/internal/events"
)

// ConsumerName is the durable JetStream consumer the archiver binds to.
// Multiple archiver replicas share it, so each event is delivered once.
const ConsumerName = "archive"

// Consumer drains auction events from JetStream into the archive store.
type Consumer struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	store  *Store
	logger *slog.Logger
}

// NewConsumer connects to NATS and binds the durable archive consumer.
func NewConsumer(ctx context.Context, url string, store *Store, logger *slog.Logger) (*Consumer, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	return &Consumer{conn: conn, js: js, store: store, logger: logger}, nil
}

// Run consumes events until the context is cancelled. Failed inserts are
// nacked and redelivered; the event-id primary keys make redelivery safe.
func (c *Consumer) Run(ctx context.Context) error {
	setupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cons, err := c.js.CreateOrUpdateConsumer(setupCtx, events.StreamName, jetstream.ConsumerConfig{
		Durable:       ConsumerName,
		FilterSubject: events.StreamSubjects,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    10,
	})
	if err != nil {
		return fmt.Errorf("binding consumer %s: %w", ConsumerName, err)
	}

	cctx, err := cons.Consume(func(msg jetstream.Msg) {
		c.handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("starting consume loop: %w", err)
	}
	defer cctx.Stop()

	c.logger.InfoContext(ctx, "archive consumer running",
		slog.String("stream", events.StreamName),
		slog.String("consumer", ConsumerName),
	)

	<-ctx.Done()
	return nil
}

func (c *Consumer) handle(ctx context.Context, msg jetstream.Msg) {
	var e events.Event
	if err := json.Unmarshal(msg.Data(), &e); err != nil {
		// A malformed envelope will never parse; drop it rather than
		// poison the consumer with endless redeliveries.
		c.logger.ErrorContext(ctx, "dropping malformed event",
			slog.String("subject", msg.Subject()),
			slog.String("error", err.Error()),
		)
		_ = msg.Term()
		return
	}

	if err := c.store.Record(ctx, e); err != nil {
		c.logger.ErrorContext(ctx, "archiving event failed",
			slog.String("event_id", e.ID),
			slog.String("type", string(e.Type)),
			slog.String("error", err.Error()),
		)
		_ = msg.Nak()
		return
	}

	c.logger.DebugContext(ctx, "event archived",
		slog.String("event_id", e.ID),
		slog.String("type", string(e.Type)),
	)
	_ = msg.Ack()
}

// Close drains the NATS connection.
func (c *Consumer) Close() error {
	c.conn.Close()
	return nil
}
