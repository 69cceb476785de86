package quiz

import "errors"

var (
	// ErrQuestionNotFound indicates a question id could not be resolved.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrCategoryNotFound indicates the category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrNoBatch indicates no AI task batch has been fetched for a category.
	ErrNoBatch = errors.New("no task batch for category")
)
