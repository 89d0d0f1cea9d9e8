package dto

import "exam-variation-be/pkg/variation"

type QuestionResponse struct {
	Id           int    `json:"id"`
	OriginalText string `json:"original_text"`
}

type GetAllQuestionsResponse struct {
	Success   bool                `json:"success"`
	Questions []*QuestionResponse `json:"questions"`
}

// GenerateVariationsRequest leaves a missing id as 0, which matches no question.
type GenerateVariationsRequest struct {
	QuestionId int `json:"question_id"`
}

type GenerateVariationsResponse struct {
	Success    bool                  `json:"success"`
	Original   *QuestionResponse     `json:"original"`
	Variations []variation.Variation `json:"variations"`
}

// BulkVariationResult carries the original text only, not the full record.
type BulkVariationResult struct {
	Id         int                   `json:"id"`
	Original   string                `json:"original"`
	Variations []variation.Variation `json:"variations"`
}

type BulkGenerateResponse struct {
	Success bool                   `json:"success"`
	Total   int                    `json:"total"`
	Results []*BulkVariationResult `json:"results"`
}

type ManipulateRequest struct {
	Question         string `json:"question" validate:"max=10000"`
	ManipulationType string `json:"manipulation_type" validate:"max=64"`

	// ManipulationTypeCamel accepts the camelCase key older clients send.
	ManipulationTypeCamel string `json:"manipulationType" validate:"max=64"`
}

// Type returns the requested manipulation, preferring manipulation_type.
func (r *ManipulateRequest) Type() string {
	if r.ManipulationType != "" {
		return r.ManipulationType
	}
	return r.ManipulationTypeCamel
}

type ManipulateResponse struct {
	Success      bool           `json:"success"`
	Original     string         `json:"original"`
	Manipulated  string         `json:"manipulated"`
	Type         variation.Type `json:"type"`
	Manipulation string         `json:"manipulation"`
}
