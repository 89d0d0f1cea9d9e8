package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exam-variation-be/internal/pkg/logger"
	"exam-variation-be/internal/repository/implementation"
	"exam-variation-be/pkg/pdftext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractFromFile(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

func (s *stubExtractor) ExtractFromReader(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	return s.text, s.err
}

func (s *stubExtractor) ExtractPages(ctx context.Context, path string) ([]pdftext.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []pdftext.Page{{Number: 1, Text: s.text}}, nil
}

func TestExtractionService_Run(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "questions.json")
	textPath := filepath.Join(dir, "extracted_text.txt")

	raw := "Chemistry paper 1\n1. What is an ion?\nGive an example.\n2) Explain " + strings.Repeat("very ", 60) + "long\nQ3 List two acids\n4. State Avogadro's law"
	repo := implementation.NewJSONQuestionRepository(storePath)
	svc := NewExtractionService(&stubExtractor{text: raw}, repo, textPath, logger.NewFromZap(zap.NewNop()))

	res, err := svc.Run(context.Background(), "paper.pdf")
	require.NoError(t, err)

	assert.Equal(t, "paper.pdf", res.PDFPath)
	assert.Equal(t, 5, res.QuestionCount)
	assert.Equal(t, len([]rune(raw)), res.Characters)

	require.Len(t, res.Preview, 3)
	assert.Equal(t, "Chemistry paper 1", res.Preview[0].Text)
	assert.Equal(t, "1. What is an ion? Give an example.", res.Preview[1].Text)
	assert.True(t, strings.HasSuffix(res.Preview[2].Text, "..."))
	assert.Len(t, []rune(res.Preview[2].Text), 203)

	dumped, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, raw, string(dumped))

	stored, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 5)
	assert.Equal(t, 5, stored[4].Id)
	assert.Equal(t, "4. State Avogadro's law", stored[4].OriginalText)
}

func TestExtractionService_RunWithoutTextFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "questions.json")
	repo := implementation.NewJSONQuestionRepository(storePath)
	svc := NewExtractionService(&stubExtractor{text: "1. One"}, repo, "", logger.NewFromZap(zap.NewNop()))

	res, err := svc.Run(context.Background(), "paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, res.QuestionCount)
	assert.Empty(t, res.TextFile)
}

func TestExtractionService_ExtractorFailure(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "questions.json")
	repo := implementation.NewJSONQuestionRepository(storePath)
	failure := errors.New("no such file")
	svc := NewExtractionService(&stubExtractor{err: failure}, repo, "", logger.NewFromZap(zap.NewNop()))

	_, err := svc.Run(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, failure)

	// the existing store is left untouched
	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "ééé...", truncate("éééé", 3))
}
