package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	evt := model.SubmissionCreatedEvent{ID: 7, SupplierName: "Acme", Category: "Electronics", Quantity: 50, Location: "Vietnam"}

	msg, err := encodeEvent(evt)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, constant.SubmissionCreatedRoutingKey, msg.Type)

	var got model.SubmissionCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, evt, got)
}

func TestConsumer_Notify(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantErr     bool
		wantRequeue bool
	}{
		{name: "accepted", status: http.StatusNoContent},
		{name: "server error is retried", status: http.StatusServiceUnavailable, wantErr: true, wantRequeue: true},
		{name: "client error is dropped", status: http.StatusBadRequest, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got model.SubmissionCreatedEvent
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, constant.SubmissionCreatedRoutingKey, r.Header.Get("X-Event-Type"))
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{webhookURL: srv.URL, httpClient: srv.Client()}
			requeue, err := c.notify(context.Background(), model.SubmissionCreatedEvent{ID: 3})
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantRequeue, requeue)
			assert.Equal(t, uint64(3), got.ID)
		})
	}
}

func TestConsumer_NotifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := &Consumer{webhookURL: url, httpClient: http.DefaultClient}
	requeue, err := c.notify(context.Background(), model.SubmissionCreatedEvent{ID: 1})
	assert.Error(t, err)
	assert.True(t, requeue)
}

func TestRetryCount(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp091.Table
		want    int
	}{
		{name: "first delivery", headers: nil, want: 0},
		{name: "int32 header", headers: amqp091.Table{retryHeader: int32(3)}, want: 3},
		{name: "int64 header", headers: amqp091.Table{retryHeader: int64(4)}, want: 4},
		{name: "unexpected type", headers: amqp091.Table{retryHeader: "2"}, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryCount(tt.headers))
		})
	}
}

func TestRetryBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 2 * time.Second},
		{attempt: 1, want: 4 * time.Second},
		{attempt: 3, want: 16 * time.Second},
		{attempt: 5, want: time.Minute},
		{attempt: 40, want: time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryBackoff(tt.attempt), "attempt %d", tt.attempt)
		assert.Greater(t, retryBackoff(tt.attempt), time.Duration(0))
	}
	assert.Less(t, maxWebhookRetries, 10)
}

type recordingAck struct {
	acks, nacks int
	requeued    bool
}

func (r *recordingAck) Ack(uint64, bool) error { r.acks++; return nil }
func (r *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	r.nacks++
	r.requeued = requeue
	return nil
}
func (r *recordingAck) Reject(uint64, bool) error { return nil }

func TestConsumer_HandleStopsRetrying(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers amqp091.Table
	}{
		{name: "client error dropped at once", status: http.StatusBadRequest},
		{name: "server error dropped after max retries", status: http.StatusBadGateway, headers: amqp091.Table{retryHeader: int32(maxWebhookRetries)}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			ack := &recordingAck{}
			body, _ := json.Marshal(model.SubmissionCreatedEvent{ID: 5})
			c := &Consumer{webhookURL: srv.URL, httpClient: srv.Client()}

			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Headers: tt.headers, Body: body})

			assert.Equal(t, 1, calls)
			assert.Equal(t, 1, ack.acks)
			assert.Equal(t, 0, ack.nacks)
		})
	}
}

func TestConsumer_HandleWaitsBeforeRequeue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ack := &recordingAck{}
	body, _ := json.Marshal(model.SubmissionCreatedEvent{ID: 6})
	c := &Consumer{webhookURL: srv.URL, httpClient: srv.Client()}

	start := time.Now()
	c.handle(ctx, amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})

	// shutdown during the backoff hands the message back untouched
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Equal(t, 0, ack.acks)
	assert.Equal(t, 1, ack.nacks)
	assert.True(t, ack.requeued)
}
