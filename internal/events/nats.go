package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream capturing all auction events.
	StreamName = "AUCTION_EVENTS"
	// StreamSubjects is the subject space covered by the stream.
	StreamSubjects = "auction.events.*"
)

// NATSPublisher publishes events to NATS JetStream, which persists them for
// the archive worker while still fanning out to any core subscriber.
type NATSPublisher struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	logger *slog.Logger
}

// NewNATSPublisher connects to NATS and ensures the event stream exists.
func NewNATSPublisher(ctx context.Context, url string, logger *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	streamCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(streamCtx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Auction domain events for archival",
		Subjects:    []string{StreamSubjects},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      7 * 24 * time.Hour,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensuring stream %s: %w", StreamName, err)
	}

	return &NATSPublisher{conn: conn, js: js, logger: logger}, nil
}

// Publish persists the event to the stream. The returned error is for the
// caller's log line; the engine never fails an operation on it.
func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshalling event %s: %w", e.ID, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.js.Publish(pubCtx, e.Type.Subject(), data)
	if err != nil {
		return fmt.Errorf("publishing %s to %s: %w", e.ID, e.Type.Subject(), err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("event_id", e.ID),
		slog.String("type", string(e.Type)),
		slog.Uint64("stream_seq", ack.Sequence),
	)
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}
