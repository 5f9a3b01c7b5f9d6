package zap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core))
	l.Infof("read %d quads", 13)
	l.Warningf("rejected %v", "statement")
	l.Errorf("failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, "read 13 quads", entries[0].Message)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNewProduction(t *testing.T) {
	_, err := NewProduction("debug")
	require.NoError(t, err)
	_, err = NewProduction("loud")
	require.Error(t, err)
}
