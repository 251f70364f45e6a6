package eventsink

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// Static errors for err113 compliance.
var (
	ErrNATSURLRequired = errors.New("NATS URL is required")
)

// DefaultSubjectPrefix is used when NATSConfig.SubjectPrefix is empty.
const DefaultSubjectPrefix = "tally.events"

// Publisher is the part of *nats.Conn the sink needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSConfig configures the NATS connection of a NATSSink.
type NATSConfig struct {
	// URL of the NATS server, e.g. nats://localhost:4222
	URL string

	// SubjectPrefix: events go to <prefix>.response and <prefix>.error
	SubjectPrefix string

	// Name reported to the server for this connection
	Name string

	// MaxReconnects: -1 retries forever
	MaxReconnects int

	// ReconnectWait between reconnect attempts
	ReconnectWait time.Duration
}

// ConnectNATS opens a connection described by config.
func ConnectNATS(config *NATSConfig) (*nats.Conn, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSURLRequired
	}

	name := config.Name
	if name == "" {
		name = tally.SDKName
	}

	opts := []nats.Option{nats.Name(name)}

	if config.MaxReconnects != 0 {
		opts = append(opts, nats.MaxReconnects(config.MaxReconnects))
	}

	if config.ReconnectWait > 0 {
		opts = append(opts, nats.ReconnectWait(config.ReconnectWait))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", config.URL, err)
	}

	return conn, nil
}

// NATSSink publishes events as JSON. Publish failures are reported through the
// optional logger and otherwise dropped.
type NATSSink struct {
	publisher     Publisher
	subjectPrefix string
	logger        tally.Logger
}

// NewNATSSink creates a sink on publisher. prefix defaults to
// DefaultSubjectPrefix.
func NewNATSSink(publisher Publisher, prefix string, logger tally.Logger) *NATSSink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &NATSSink{
		publisher:     publisher,
		subjectPrefix: prefix,
		logger:        logger,
	}
}

// NewSink creates a sink on publisher that publishes under c.SubjectPrefix.
func (c *NATSConfig) NewSink(publisher Publisher, logger tally.Logger) *NATSSink {
	return NewNATSSink(publisher, c.SubjectPrefix, logger)
}

// Subject returns the subject events of kind are published on.
func (s *NATSSink) Subject(kind tally.EventKind) string {
	return s.subjectPrefix + "." + string(kind)
}

// Publish encodes and publishes one event.
func (s *NATSSink) Publish(event tally.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Kind(), err)
	}

	subject := s.Subject(event.Kind())

	err = s.publisher.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Attach subscribes the sink to src.
func (s *NATSSink) Attach(src tally.EventSource) Detach {
	return attach(src,
		func(event tally.ResponseEvent) { s.publish(event) },
		func(event tally.ErrorEvent) { s.publish(event) })
}

func (s *NATSSink) publish(event tally.Event) {
	err := s.Publish(event)
	if err != nil && s.logger != nil {
		s.logger.Warn("Failed to publish event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
