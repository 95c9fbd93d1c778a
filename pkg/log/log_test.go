package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	path := filepath.Join(t.TempDir(), "reports.log")
	closer := Setup(Options{Level: "debug", File: path})

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	L.WithField("merchant", "Loja A").Info("reports: merchant report built")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "reports: merchant report built")
	assert.Contains(t, string(content), "Loja A")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	closer := Setup(Options{Level: "verbose"})
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}
