package service

import (
	"context"
	"strings"

	"exam-variation-be/internal/dto"
	"exam-variation-be/internal/entity"
	"exam-variation-be/internal/pkg/logger"
	"exam-variation-be/internal/repository/contract"
	"exam-variation-be/pkg/variation"
)

const moduleQuestion = "question_service"

type IQuestionService interface {
	GetAll(ctx context.Context) (*dto.GetAllQuestionsResponse, error)
	Generate(ctx context.Context, questionId int) (*dto.GenerateVariationsResponse, error)
	BulkGenerate(ctx context.Context) (*dto.BulkGenerateResponse, error)
	Manipulate(ctx context.Context, req *dto.ManipulateRequest) (*dto.ManipulateResponse, error)
}

type questionService struct {
	repo      contract.QuestionRepository
	generator *variation.Generator
	logger    logger.ILogger
}

func NewQuestionService(
	repo contract.QuestionRepository,
	generator *variation.Generator,
	logger logger.ILogger,
) IQuestionService {
	return &questionService{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

func (s *questionService) GetAll(ctx context.Context) (*dto.GetAllQuestionsResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, toQuestionResponse(q))
	}

	return &dto.GetAllQuestionsResponse{
		Success:   true,
		Questions: result,
	}, nil
}

func (s *questionService) Generate(ctx context.Context, questionId int) (*dto.GenerateVariationsResponse, error) {
	if questionId < 1 {
		return nil, entity.ErrQuestionNotFound
	}

	question, err := s.repo.FindById(ctx, questionId)
	if err != nil {
		return nil, err
	}

	variations := s.generator.Generate(question.OriginalText)
	s.logger.Debug(moduleQuestion, "generated variations", map[string]interface{}{
		"question_id": question.Id,
		"count":       len(variations),
	})

	return &dto.GenerateVariationsResponse{
		Success:    true,
		Original:   toQuestionResponse(question),
		Variations: variations,
	}, nil
}

func (s *questionService) BulkGenerate(ctx context.Context) (*dto.BulkGenerateResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.BulkVariationResult, 0, len(questions))
	for _, q := range questions {
		results = append(results, &dto.BulkVariationResult{
			Id:         q.Id,
			Original:   q.OriginalText,
			Variations: s.generator.Generate(q.OriginalText),
		})
	}

	s.logger.Info(moduleQuestion, "bulk generated variations", map[string]interface{}{
		"questions": len(results),
	})

	return &dto.BulkGenerateResponse{
		Success: true,
		Total:   len(results),
		Results: results,
	}, nil
}

func (s *questionService) Manipulate(ctx context.Context, req *dto.ManipulateRequest) (*dto.ManipulateResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, ErrQuestionTextRequired
	}

	kind, ok := variation.ParseType(req.Type())
	if !ok {
		s.logger.Debug(moduleQuestion, "unknown manipulation type, using rephrase", map[string]interface{}{
			"manipulation_type": req.Type(),
		})
	}

	v, err := s.generator.Apply(kind, req.Question)
	if err != nil {
		return nil, err
	}

	return &dto.ManipulateResponse{
		Success:      true,
		Original:     req.Question,
		Manipulated:  v.Question,
		Type:         v.Type,
		Manipulation: v.Manipulation,
	}, nil
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Id:           q.Id,
		OriginalText: q.OriginalText,
	}
}
