package nsq

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nsqio/go-nsq"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and checks the daemon is reachable
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(logAdapter{}, nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// PublishJSON marshals message and publishes it to topic
func (p *Producer) PublishJSON(topic string, message interface{}) error {
	msgBytes, err := Encode(message)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// Encode is the wire encoding of published messages
func Encode(message interface{}) ([]byte, error) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return msgBytes, nil
}

// logAdapter routes go-nsq's internal log lines to the zap logger
type logAdapter struct{}

func (logAdapter) Output(_ int, s string) error {
	logger.Warn("nsq: " + strings.TrimSpace(s))
	return nil
}
