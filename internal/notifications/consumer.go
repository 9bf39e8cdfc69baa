package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	MaxRetries       int
	RetryBackoff     time.Duration
}

func DefaultConsumerConfig(brokers []string, groupID string, topics []string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          brokers,
		GroupID:          groupID,
		Topics:           topics,
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		MaxRetries:       3,
		RetryBackoff:     time.Second,
	}
}

// Consumer reads booking notifications from Kafka and hands them to the
// email sender.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	sender        EmailSender
	cancel        context.CancelFunc
}

func NewConsumer(config *ConsumerConfig, sender EmailSender) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		consumerGroup: consumerGroup,
		config:        config,
		sender:        sender,
	}, nil
}

// Start launches the consumer loop. It returns immediately; delivery
// happens on background goroutines until Stop or ctx cancellation.
func (c *Consumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go c.handleErrors()
	go c.run(ctx)

	log.Printf("Booking notification consumer started for topics: %v", c.config.Topics)
	return nil
}

func (c *Consumer) run(ctx context.Context) {
	handler := &consumerGroupHandler{
		sender:       c.sender,
		maxRetries:   c.config.MaxRetries,
		retryBackoff: c.config.RetryBackoff,
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("Booking notification consumer shutting down")
			return
		default:
			if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
				log.Printf("Consumer error: %v", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *Consumer) handleErrors() {
	for err := range c.consumerGroup.Errors() {
		log.Printf("Consumer group error: %v", err)
	}
}

func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}

	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}

	log.Printf("Booking notification consumer stopped")
	return nil
}

type consumerGroupHandler struct {
	sender       EmailSender
	maxRetries   int
	retryBackoff time.Duration
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			if err := h.processMessage(session.Context(), message); err != nil {
				log.Printf("Error processing notification: %v", err)
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var notification BookingNotification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	if err := h.sendWithRetry(ctx, &notification); err != nil {
		notification.MarkFailed(err)
		return err
	}

	notification.MarkSent()
	log.Printf("Notification %s delivered to %s", notification.ID, notification.RecipientEmail)
	return nil
}

func (h *consumerGroupHandler) sendWithRetry(ctx context.Context, notification *BookingNotification) error {
	for attempt := 0; ; attempt++ {
		err := h.sender.SendNotification(ctx, notification)
		if err == nil {
			return nil
		}

		if attempt == h.maxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt+1, err)
		}

		// exponential backoff
		delay := h.retryBackoff * time.Duration(1<<attempt)
		log.Printf("Retrying notification %s in %v: %v", notification.ID, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
