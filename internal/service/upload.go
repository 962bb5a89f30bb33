package service

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/avc/cargo-office/internal/domain"
	"go.uber.org/zap"
)

// UploadRejectedMessage - сообщение пользователю о неподходящем файле
const UploadRejectedMessage = "Пожалуйста, выберите файл Excel (.xls, .xlsx или .xlsm)"

var excelMIMETypes = map[string]struct{}{
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/vnd.ms-excel.sheet.macroEnabled.12":                    {},
}

var excelExtensions = map[string]struct{}{
	".xls":  {},
	".xlsx": {},
	".xlsm": {},
}

// IsExcelFile принимает файл, если подходит MIME тип или расширение
func IsExcelFile(fileName, contentType string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		for known := range excelMIMETypes {
			if strings.EqualFold(mediaType, known) {
				return true
			}
		}
	}

	_, ok := excelExtensions[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

// ImportQueue принимает задания импорта без ожидания
type ImportQueue interface {
	Enqueue(job domain.ImportJob) bool
}

// UploadService реализует domain.UploadService
type UploadService struct {
	queue  ImportQueue
	logger *zap.Logger
}

// NewUploadService создает новый UploadService
func NewUploadService(queue ImportQueue, logger *zap.Logger) *UploadService {
	return &UploadService{queue: queue, logger: logger}
}

// Submit проверяет файл и ставит его в очередь импорта
func (s *UploadService) Submit(_ context.Context, job domain.ImportJob) error {
	if !IsExcelFile(job.FileName, job.ContentType) {
		return ErrUnsupportedFile
	}
	if len(job.Data) == 0 {
		return ErrEmptyFile
	}

	if !s.queue.Enqueue(job) {
		return ErrImportQueueFull
	}

	s.logger.Info("excel file queued",
		zap.String("session_id", job.SessionID),
		zap.String("file", job.FileName),
		zap.Int64("size", job.Size),
	)
	return nil
}

// LogImporter - импортер по умолчанию: фиксирует получение файла и ничего не импортирует
type LogImporter struct {
	logger *zap.Logger
}

// NewLogImporter создает новый LogImporter
func NewLogImporter(logger *zap.Logger) *LogImporter {
	return &LogImporter{logger: logger}
}

// Import записывает в лог сведения о файле
func (i *LogImporter) Import(_ context.Context, job domain.ImportJob) error {
	i.logger.Info("excel file received, import is not configured",
		zap.String("session_id", job.SessionID),
		zap.String("file", job.FileName),
		zap.String("content_type", job.ContentType),
		zap.Int("bytes", len(job.Data)),
		zap.Time("uploaded_at", job.UploadedAt),
	)
	return nil
}
