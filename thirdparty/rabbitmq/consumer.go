package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	retryHeader       = "x-retry-count"
	maxWebhookRetries = 5
	retryBaseDelay    = 2 * time.Second
	retryMaxDelay     = time.Minute
)

// Consumer forwards submission.created events to a webhook.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	webhookURL string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, webhookURL string) (*Consumer, error) {
	conn, channel, err := open(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one unacked message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		constant.SubmissionQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var evt model.SubmissionCreatedEvent
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		logger.Error("[Consumer] unmarshal event", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	retryable, err := c.notify(ctx, evt)
	if err == nil {
		_ = msg.Ack(false)
		logger.Info("[Consumer] submission forwarded", zap.Uint64("submission_id", evt.ID))
		return
	}

	attempt := retryCount(msg.Headers)
	if !retryable || attempt >= maxWebhookRetries {
		logger.Error("[Consumer] dropping event", zap.Uint64("submission_id", evt.ID), zap.Int("attempt", attempt), zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	delay := retryBackoff(attempt)
	logger.Warn("[Consumer] notify webhook, retrying", zap.Uint64("submission_id", evt.ID), zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.String("error", err.Error()))

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		_ = msg.Nack(false, true)
		return
	}

	if err := c.republish(ctx, msg, attempt+1); err != nil {
		logger.Error("[Consumer] republish event", zap.Uint64("submission_id", evt.ID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

// republish puts the event back on the queue carrying its retry count.
func (c *Consumer) republish(ctx context.Context, msg amqp091.Delivery, attempt int) error {
	return c.channel.PublishWithContext(
		ctx,
		"",                       // default exchange
		constant.SubmissionQueue, // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp091.Publishing{
			ContentType:  msg.ContentType,
			DeliveryMode: amqp091.Persistent,
			Type:         msg.Type,
			Timestamp:    msg.Timestamp,
			Headers:      amqp091.Table{retryHeader: int32(attempt)},
			Body:         msg.Body,
		},
	)
}

func retryCount(headers amqp091.Table) int {
	switch n := headers[retryHeader].(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// retryBackoff doubles from retryBaseDelay and caps at retryMaxDelay.
func retryBackoff(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 0; i < attempt && d < retryMaxDelay; i++ {
		d *= 2
	}
	if d > retryMaxDelay {
		d = retryMaxDelay
	}
	return d
}

// notify posts the event to the webhook. Server errors are reported as
// retryable, client errors are not.
func (c *Consumer) notify(ctx context.Context, evt model.SubmissionCreatedEvent) (bool, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", constant.SubmissionCreatedRoutingKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	switch {
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	case resp.StatusCode >= 300:
		return false, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return false, nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
