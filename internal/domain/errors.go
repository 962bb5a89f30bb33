package domain

import "errors"

// Ошибки сессий и авторизации
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Ошибки периодов
var (
	ErrPeriodExists   = errors.New("period already exists")
	ErrPeriodNotFound = errors.New("period not found")
)

// Ошибки бэкенда
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendInternal    = errors.New("backend internal error")
)
