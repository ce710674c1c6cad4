package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hongminglow/all-in-forms/internal/logger"
)

func TestNew(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			l, err := logger.New(env)
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestGetWithoutLoggerIsNop(t *testing.T) {
	l := logger.Get(context.Background())
	require.NotNil(t, l)
	require.NotPanics(t, func() { l.Info("discarded") })
}

func TestWithLoggerAndFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))

	logger.Get(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
}
