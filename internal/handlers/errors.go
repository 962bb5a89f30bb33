package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/service"
	"go.uber.org/zap"
)

// Сообщения пользователю
const (
	msgNetwork            = "Ошибка сети. Сервер недоступен."
	msgInternal           = "Внутренняя ошибка сервера. Пожалуйста, обратитесь к администратору."
	msgAuthFailed         = "Ошибка авторизации. Пожалуйста, войдите в систему заново."
	msgNotAuthorized      = "Необходима авторизация. Пожалуйста, войдите в систему."
	msgInvalidCredentials = "Неверный логин или пароль"
	msgPeriodExists       = "Период с таким названием уже существует."
	msgPeriodNotFound     = "Период не найден"
	msgPeriodDeleted      = "Период успешно удален"
	msgInvalidPeriodName  = "Название периода должно быть годом из четырех цифр"
	msgBadRequest         = "Некорректный запрос"
	msgValidation         = "Проверьте правильность заполнения полей"
	msgRowNotFound        = "Строка не найдена"
	msgFileMissing        = "Файл не выбран"
	msgFileEmpty          = "Файл пуст"
	msgFileTooLarge       = "Файл слишком большой"
	msgQueueFull          = "Очередь загрузки переполнена. Попробуйте позже."
	msgExportFailed       = "Не удалось сформировать файл"
)

type errorResponse struct {
	Detail    string            `json:"detail"`
	Retryable bool              `json:"retryable,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	_ = writeJSON(w, status, errorResponse{Detail: detail})
}

// describeError сопоставляет ошибку сервиса статусу и сообщению.
// fallback используется для ошибок, которые не удалось классифицировать.
func describeError(err error, fallback string) (int, errorResponse) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		detail := msgValidation
		if errors.Is(err, service.ErrInvalidPeriodName) {
			detail = msgInvalidPeriodName
		}
		return http.StatusUnprocessableEntity, errorResponse{Detail: detail, Fields: validationErr.Fields}
	}

	var backendErr *service.BackendError
	switch {
	case errors.Is(err, service.ErrInvalidPeriodName):
		return http.StatusUnprocessableEntity, errorResponse{Detail: msgInvalidPeriodName}
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusUnprocessableEntity, errorResponse{Detail: msgValidation}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Detail: msgInvalidCredentials}
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorResponse{Detail: msgAuthFailed}
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Detail: msgNetwork}
	case errors.Is(err, domain.ErrBackendInternal):
		return http.StatusBadGateway, errorResponse{Detail: msgInternal}
	case errors.Is(err, domain.ErrPeriodExists):
		return http.StatusConflict, errorResponse{Detail: msgPeriodExists}
	case errors.Is(err, domain.ErrPeriodNotFound):
		return http.StatusNotFound, errorResponse{Detail: msgPeriodNotFound}
	case errors.As(err, &backendErr):
		detail := backendErr.Detail
		if detail == "" {
			detail = fallback
		}
		status := backendErr.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		return status, errorResponse{Detail: detail}
	default:
		return http.StatusInternalServerError, errorResponse{Detail: fallback}
	}
}

// writeServiceError пишет ответ об ошибке; неклассифицированные ошибки логируются
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string, fields ...zap.Field) {
	status, resp := describeError(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, append(fields, zap.Error(err))...)
	}
	_ = writeJSON(w, status, resp)
}
