package contract

import (
	"context"

	"exam-variation-be/internal/entity"
)

type QuestionRepository interface {
	// SaveAll replaces the whole store, numbering texts from 1 in order.
	SaveAll(ctx context.Context, texts []string) ([]*entity.Question, error)
	// FindAll returns questions in store order. A store that does not exist yet is empty.
	FindAll(ctx context.Context) ([]*entity.Question, error)
	// FindById returns entity.ErrQuestionNotFound when no question has id.
	FindById(ctx context.Context, id int) (*entity.Question, error)
}
