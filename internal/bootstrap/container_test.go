package bootstrap

import (
	"errors"
	"path/filepath"
	"testing"

	"exam-variation-be/internal/config"
	"exam-variation-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncFailingLogger struct {
	logger.ILogger
	err error
}

func (l *syncFailingLogger) Sync() error {
	return l.err
}

func jsonConfig(t *testing.T) *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Driver:        config.StoreDriverJSON,
			QuestionsFile: filepath.Join(t.TempDir(), "questions.json"),
		},
	}
}

func TestNewContainer_JSONStore(t *testing.T) {
	c, err := NewContainerWithLogger(jsonConfig(t), logger.NewFromZap(zap.NewNop()))
	require.NoError(t, err)

	assert.NotNil(t, c.QuestionController)
	assert.NotNil(t, c.QuestionService)
	assert.NotNil(t, c.ExtractionService)
	assert.NoError(t, c.Close())
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	cfg := jsonConfig(t)
	cfg.Store.Driver = "mongo"

	_, err := NewContainerWithLogger(cfg, logger.NewFromZap(zap.NewNop()))
	assert.ErrorContains(t, err, `unknown store driver "mongo"`)
}

func TestNewContainer_PostgresWithoutDSN(t *testing.T) {
	cfg := jsonConfig(t)
	cfg.Store.Driver = config.StoreDriverPostgres

	_, err := NewContainerWithLogger(cfg, logger.NewFromZap(zap.NewNop()))
	assert.Error(t, err)
}

func TestContainer_CloseReportsSyncError(t *testing.T) {
	syncErr := errors.New("sync failed")
	log := &syncFailingLogger{ILogger: logger.NewFromZap(zap.NewNop()), err: syncErr}

	c, err := NewContainerWithLogger(jsonConfig(t), log)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Close(), syncErr)
}
