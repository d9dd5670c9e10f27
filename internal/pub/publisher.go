// Package pub fans box events out to subscribers over NATS.
package pub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"isolated_box/internal/logger"
	"isolated_box/internal/models"
)

// Publisher delivers events to external subscribers.
type Publisher interface {
	Publish(ctx context.Context, e models.BoxEvent) error
	Close()
}

type Cfg struct {
	URL           string
	Subject       string
	Name          string
	ReconnectWait time.Duration
	MaxReconnects int
	Log           *logger.Logger
}

type natsPublisher struct {
	conn    *nats.Conn
	subject string
	log     *logger.Logger
}

// New connects to the NATS server at c.URL. The connection retries in the
// background when the server is not reachable yet.
func New(c Cfg) (Publisher, error) {
	if c.ReconnectWait <= 0 {
		c.ReconnectWait = 2 * time.Second
	}
	if c.MaxReconnects == 0 {
		c.MaxReconnects = -1
	}

	opts := []nats.Option{
		nats.Name(c.Name),
		nats.RetryOnFailedConnect(true),
		nats.ReconnectWait(c.ReconnectWait),
		nats.MaxReconnects(c.MaxReconnects),
	}
	if c.Log != nil {
		l := c.Log
		opts = append(opts,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				if err != nil {
					l.Warnw("nats_disconnected", "error", err)
				}
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				l.Infow("nats_reconnected", "url", nc.ConnectedUrl())
			}),
		)
	}

	conn, err := nats.Connect(c.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", c.URL, err)
	}
	return &natsPublisher{conn: conn, subject: c.Subject, log: c.Log}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, e models.BoxEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := Encode(e)
	if err != nil {
		return err
	}
	topic := Topic(p.subject, e.Type)
	if err := p.conn.Publish(topic, b); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	if p.log != nil {
		p.log.Debugw("event_published", "topic", topic, "event_id", e.EventID)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

// Topic builds "<subject>.<type>" with the type lower-cased.
func Topic(subject, eventType string) string {
	t := strings.ToLower(strings.TrimSpace(eventType))
	if t == "" {
		t = "unknown"
	}
	if subject == "" {
		return t
	}
	return subject + "." + t
}

// Encode renders an event as JSON.
func Encode(e models.BoxEvent) ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.EventID, err)
	}
	return b, nil
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, models.BoxEvent) error { return nil }
func (Nop) Close()                                          {}
