package entity

import "errors"

var ErrQuestionNotFound = errors.New("question not found")

// Question is one exam question as segmented from the source document.
// Id is 1-based and assigned when the store is written.
type Question struct {
	Id           int
	OriginalText string
}
