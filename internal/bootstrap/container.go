package bootstrap

import (
	"errors"
	"fmt"

	"exam-variation-be/internal/config"
	"exam-variation-be/internal/controller"
	"exam-variation-be/internal/pkg/logger"
	"exam-variation-be/internal/repository/contract"
	"exam-variation-be/internal/repository/implementation"
	"exam-variation-be/internal/service"
	"exam-variation-be/pkg/database"
	"exam-variation-be/pkg/pdftext"
	"exam-variation-be/pkg/variation"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QuestionController controller.IQuestionController

	// Services used directly by the command line tools
	QuestionService   service.IQuestionService
	ExtractionService service.IExtractionService

	Logger logger.ILogger

	db *gorm.DB
}

func NewContainer(cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction(), cfg.App.Debug)
	return NewContainerWithLogger(cfg, sysLogger)
}

// NewContainerWithLogger wires every dependency around an existing logger.
func NewContainerWithLogger(cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	repo, err := c.newQuestionRepository(cfg)
	if err != nil {
		return nil, err
	}
	sysLogger.Info("bootstrap", "question store ready", map[string]interface{}{
		"driver": cfg.Store.Driver,
		"path":   cfg.Store.QuestionsFile,
	})

	generator := variation.NewGenerator(nil)

	c.QuestionService = service.NewQuestionService(repo, generator, sysLogger)
	c.ExtractionService = service.NewExtractionService(
		pdftext.NewLedongthucExtractor(),
		repo,
		cfg.Extract.ExtractedTextFile,
		sysLogger,
	)
	c.QuestionController = controller.NewQuestionController(c.QuestionService)

	return c, nil
}

func (c *Container) newQuestionRepository(cfg *config.Config) (contract.QuestionRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverJSON:
		return implementation.NewJSONQuestionRepository(cfg.Store.QuestionsFile), nil
	case config.StoreDriverPostgres:
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.App.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.db = db
		return implementation.NewQuestionRepository(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Close releases the database connection, if any, and flushes the logger.
func (c *Container) Close() error {
	var errs []error
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			c.Logger.Error("bootstrap", "failed to close database", map[string]interface{}{"error": err})
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if err := c.Logger.Sync(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
