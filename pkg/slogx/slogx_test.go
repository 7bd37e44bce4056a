package slogx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStampsServiceIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Service: "guardian",
		Version: "v0.1.0",
		Env:     "test",
		Level:   "info",
		Format:  "json",
		Output:  &buf,
	})

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "guardian", line["service"])
	require.Equal(t, "v0.1.0", line["version"])
	require.Equal(t, "test", line["env"])
	require.Equal(t, "hello", line["msg"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info("dropped")
	require.Zero(t, buf.Len())

	logger.Warn("kept")
	require.NotZero(t, buf.Len())
}

func TestContextCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = With(ctx, "caller_id", "user-1")
	ctx = WithRequestID(ctx, "req-1")

	FromContext(ctx).Info("checked")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "user-1", line["caller_id"])
	require.Equal(t, "req-1", line["req_id"])
}
