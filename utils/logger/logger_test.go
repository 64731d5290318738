package logger_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	ctx := context.WithValue(context.Background(), constant.RequestIDKey, "req-123")
	logger.FromContext(ctx).Info("hello")
	logger.FromContext(context.Background()).Info("plain")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	_, ok := entries[1].ContextMap()["request_id"]
	assert.False(t, ok)
}
