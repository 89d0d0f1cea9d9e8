package service

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"exam-variation-be/internal/dto"
	"exam-variation-be/internal/pkg/logger"
	"exam-variation-be/internal/repository/contract"
	"exam-variation-be/pkg/pdftext"
	"exam-variation-be/pkg/segmenter"
)

const (
	moduleExtraction = "extraction_service"

	previewCount  = 3
	previewLength = 200
)

type IExtractionService interface {
	// Run extracts the PDF at pdfPath and replaces the question store with its questions.
	Run(ctx context.Context, pdfPath string) (*dto.ExtractionResult, error)
}

type extractionService struct {
	extractor pdftext.Extractor
	repo      contract.QuestionRepository
	textFile  string
	logger    logger.ILogger
}

// NewExtractionService creates the extraction pipeline. textFile receives the
// raw extracted text; leave it empty to skip writing it.
func NewExtractionService(
	extractor pdftext.Extractor,
	repo contract.QuestionRepository,
	textFile string,
	logger logger.ILogger,
) IExtractionService {
	return &extractionService{
		extractor: extractor,
		repo:      repo,
		textFile:  textFile,
		logger:    logger,
	}
}

func (s *extractionService) Run(ctx context.Context, pdfPath string) (*dto.ExtractionResult, error) {
	s.logger.Info(moduleExtraction, "extracting text from PDF", map[string]interface{}{"pdf_path": pdfPath})

	text, err := s.extractor.ExtractFromFile(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	if s.textFile != "" {
		if err := os.WriteFile(s.textFile, []byte(text), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save raw text to %s: %w", s.textFile, err)
		}
		s.logger.Info(moduleExtraction, "saved raw text", map[string]interface{}{"path": s.textFile})
	}

	questions, err := s.repo.SaveAll(ctx, segmenter.Split(text))
	if err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	s.logger.Info(moduleExtraction, "saved questions", map[string]interface{}{"count": len(questions)})

	preview := make([]dto.QuestionPreview, 0, previewCount)
	for i := 0; i < len(questions) && i < previewCount; i++ {
		preview = append(preview, dto.QuestionPreview{
			Id:   questions[i].Id,
			Text: truncate(questions[i].OriginalText, previewLength),
		})
	}

	return &dto.ExtractionResult{
		PDFPath:       pdfPath,
		TextFile:      s.textFile,
		Characters:    utf8.RuneCountInString(text),
		QuestionCount: len(questions),
		Preview:       preview,
	}, nil
}

// truncate cuts s to n characters and marks the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
