package implementation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"exam-variation-be/internal/entity"
	"exam-variation-be/internal/mapper"
	"exam-variation-be/internal/model"
	"exam-variation-be/internal/repository/contract"
)

// JSONQuestionRepositoryImpl keeps questions in a single JSON document that
// is read in full on every call and rewritten in full on save.
type JSONQuestionRepositoryImpl struct {
	path   string
	mapper *mapper.QuestionMapper
}

func NewJSONQuestionRepository(path string) contract.QuestionRepository {
	return &JSONQuestionRepositoryImpl{
		path:   path,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *JSONQuestionRepositoryImpl) SaveAll(ctx context.Context, texts []string) ([]*entity.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questions := r.mapper.NumberTexts(texts)
	data, err := encodeDocument(r.mapper.ToDocument(questions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode question store: %w", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return nil, fmt.Errorf("failed to write question store %s: %w", r.path, err)
	}

	return questions, nil
}

func (r *JSONQuestionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	return r.mapper.RecordsToEntities(doc.Questions), nil
}

func (r *JSONQuestionRepositoryImpl) FindById(ctx context.Context, id int) (*entity.Question, error) {
	questions, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, q := range questions {
		if q.Id == id {
			return q, nil
		}
	}
	return nil, entity.ErrQuestionNotFound
}

func (r *JSONQuestionRepositoryImpl) read() (*model.QuestionDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &model.QuestionDocument{}, nil
		}
		return nil, fmt.Errorf("failed to read question store %s: %w", r.path, err)
	}

	var doc model.QuestionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse question store %s: %w", r.path, err)
	}
	return &doc, nil
}

// encodeDocument writes two-space indented JSON and leaves non-ASCII and
// HTML characters unescaped.
func encodeDocument(doc *model.QuestionDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".questions-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
