package navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Publisher forwards navigation requests to whoever drives the router.
type Publisher interface {
	Publish(ctx context.Context, req Request) error
}

// LogPublisher only records requests in the log.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, req Request) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": req.WorkspaceID,
		"path":         req.Path,
	}).Info("navigation requested")
	return nil
}

type messagePublisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes each request as JSON on a NATS subject.
type NATSPublisher struct {
	conn    messagePublisher
	subject string
}

// NewNATSPublisher wraps an existing connection.
func NewNATSPublisher(conn messagePublisher, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

// ConnectNATS dials the server with reconnects enabled.
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Timeout(10*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(3*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal navigation request: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish navigation request on %s: %w", p.subject, err)
	}
	logrus.WithFields(logrus.Fields{
		"subject": p.subject,
		"path":    req.Path,
	}).Debug("navigation request published")
	return nil
}
