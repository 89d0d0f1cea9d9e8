package dto

type QuestionPreview struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

type ExtractionResult struct {
	PDFPath       string            `json:"pdf_path"`
	TextFile      string            `json:"text_file,omitempty"`
	Characters    int               `json:"characters"`
	QuestionCount int               `json:"question_count"`
	Preview       []QuestionPreview `json:"preview"`
}
