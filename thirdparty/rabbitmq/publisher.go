package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/rabbitmq/amqp091-go"
)

type EventPublisher interface {
	PublishSubmissionCreated(ctx context.Context, evt model.SubmissionCreatedEvent) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

// declareTopology declares the submission exchange and queue and binds them.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		constant.SubmissionExchange, // name
		"topic",                     // type
		true,                        // durable
		false,                       // auto-delete
		false,                       // internal
		false,                       // no-wait
		nil,                         // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		constant.SubmissionQueue, // name
		true,                     // durable
		false,                    // auto-delete
		false,                    // exclusive
		false,                    // no-wait
		nil,                      // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		constant.SubmissionQueue,             // queue name
		constant.SubmissionCreatedRoutingKey, // routing key
		constant.SubmissionExchange,          // exchange
		false,                                // no-wait
		nil,                                  // arguments
	)
}

func open(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := open(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func encodeEvent(evt model.SubmissionCreatedEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return amqp091.Publishing{}, err
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         constant.SubmissionCreatedRoutingKey,
		Body:         body,
	}, nil
}

func (p *Publisher) PublishSubmissionCreated(ctx context.Context, evt model.SubmissionCreatedEvent) error {
	msg, err := encodeEvent(evt)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		constant.SubmissionExchange,          // exchange
		constant.SubmissionCreatedRoutingKey, // routing key
		false,                                // mandatory
		false,                                // immediate
		msg,
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
