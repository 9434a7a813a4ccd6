package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_FromContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())

	assert.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info("noop") })
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), base, "req-123")
	enriched.Info("handled")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestWithUserID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithUserID(context.Background(), base, "user-1")
	enriched.Info("authorized")

	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Equal(t, "user-1", logs.All()[0].ContextMap()["user_id"])
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetUserID_Missing(t *testing.T) {
	assert.Equal(t, "", GetUserID(context.Background()))
}
