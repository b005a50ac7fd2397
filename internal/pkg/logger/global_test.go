package logger

import (
	"context"
	"testing"

	"github.com/piresc/smartdustbin/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnCtx_AddsRequestID(t *testing.T) {
	zl, logs := newObservedLogger()
	previous := GetGlobalLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(previous) })

	ctx := requestcontext.WithRequestContext(context.Background(), &requestcontext.RequestContext{RequestID: "req-42"})
	WarnCtx(ctx, "cache unavailable", String("key", "dustbins:active"))
	ErrorCtx(context.Background(), "no request")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "dustbins:active", entries[0].ContextMap()["key"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}
