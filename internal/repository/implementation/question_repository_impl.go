package implementation

import (
	"context"
	"errors"
	"fmt"

	"exam-variation-be/internal/entity"
	"exam-variation-be/internal/mapper"
	"exam-variation-be/internal/model"
	"exam-variation-be/internal/repository/contract"
	"exam-variation-be/internal/repository/scope"

	"gorm.io/gorm"
)

const questionInsertBatchSize = 200

// QuestionRepositoryImpl stores questions in Postgres with the same
// replace-on-save semantics as the JSON store.
type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) (contract.QuestionRepository, error) {
	if err := db.AutoMigrate(&model.Question{}); err != nil {
		return nil, fmt.Errorf("failed to migrate questions table: %w", err)
	}

	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}, nil
}

func (r *QuestionRepositoryImpl) SaveAll(ctx context.Context, texts []string) ([]*entity.Question, error) {
	questions := r.mapper.NumberTexts(texts)
	models := r.mapper.ToModels(questions)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("failed to clear questions: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, questionInsertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Question, error) {
	var models []*model.Question
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByIdAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuestionRepositoryImpl) FindById(ctx context.Context, id int) (*entity.Question, error) {
	var m model.Question
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrQuestionNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
