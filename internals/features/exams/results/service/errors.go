package service

import "errors"

var (
	ErrExamNotFound    = errors.New("exam not found")
	ErrExamNoQuestions = errors.New("exam has no questions")
)
