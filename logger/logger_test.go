package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic before Initialize.
	Logger.Infow("silent", FieldPath, "/a/b")
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Initialize(true))
	assert.NotNil(t, Logger)

	require.NoError(t, Initialize(false))
	assert.NotNil(t, Logger)
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	custom := zap.NewExample().Sugar()
	Set(custom)
	assert.Same(t, custom, Logger)

	Set(nil)
	require.NotNil(t, Logger)
	Logger.Debugw("nop again")
}
