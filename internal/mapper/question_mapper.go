package mapper

import (
	"exam-variation-be/internal/entity"
	"exam-variation-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:           q.Id,
		OriginalText: q.OriginalText,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	result := make([]*entity.Question, 0, len(questions))
	for _, q := range questions {
		result = append(result, m.ToEntity(q))
	}
	return result
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:           q.Id,
		OriginalText: q.OriginalText,
	}
}

func (m *QuestionMapper) ToModels(questions []*entity.Question) []*model.Question {
	result := make([]*model.Question, 0, len(questions))
	for _, q := range questions {
		result = append(result, m.ToModel(q))
	}
	return result
}

func (m *QuestionMapper) RecordToEntity(r model.QuestionRecord) *entity.Question {
	return &entity.Question{
		Id:           r.Id,
		OriginalText: r.OriginalText,
	}
}

func (m *QuestionMapper) RecordsToEntities(records []model.QuestionRecord) []*entity.Question {
	result := make([]*entity.Question, 0, len(records))
	for _, r := range records {
		result = append(result, m.RecordToEntity(r))
	}
	return result
}

func (m *QuestionMapper) ToDocument(questions []*entity.Question) *model.QuestionDocument {
	records := make([]model.QuestionRecord, 0, len(questions))
	for _, q := range questions {
		records = append(records, model.QuestionRecord{
			Id:           q.Id,
			OriginalText: q.OriginalText,
		})
	}
	return &model.QuestionDocument{Questions: records}
}

// NumberTexts assigns sequential 1-based ids in order.
func (m *QuestionMapper) NumberTexts(texts []string) []*entity.Question {
	result := make([]*entity.Question, 0, len(texts))
	for i, text := range texts {
		result = append(result, &entity.Question{
			Id:           i + 1,
			OriginalText: text,
		})
	}
	return result
}
