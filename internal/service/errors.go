package service

import (
	"errors"
	"fmt"
)

// Ошибки ввода
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPeriodName = errors.New("period name must be a four-digit year")
)

// Ошибки загрузки файлов
var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("empty file")
	ErrImportQueueFull = errors.New("import queue is full")
)

// BackendError - ответ бэкенда, не отнесенный ни к одной известной ошибке
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Detail)
}

// NewBackendError создает новую ошибку бэкенда
func NewBackendError(statusCode int, detail string) *BackendError {
	return &BackendError{StatusCode: statusCode, Detail: detail}
}

// ValidationError - входные данные не прошли проверку
type ValidationError struct {
	Err    error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(sentinel, err error) *ValidationError {
	return &ValidationError{Err: sentinel, Fields: fieldErrors(err)}
}
