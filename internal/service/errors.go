package service

import "errors"

var (
	ErrQuestionTextRequired = errors.New("question is required")
)
