package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/service"
	"go.uber.org/zap"
)

const uploadField = "file"

type UploadHandler struct {
	uploadService domain.UploadService
	maxSize       int64
	logger        *zap.Logger
}

func NewUploadHandler(uploadService domain.UploadService, maxSize int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxSize:       maxSize,
		logger:        logger,
	}
}

type uploadResponse struct {
	Status   string `json:"status"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

// Upload принимает выбранный Excel файл и ставит его в очередь импорта
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, msgFileMissing)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", zap.Error(err))
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	job := domain.ImportJob{
		SessionID:   sessionID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
		UploadedAt:  time.Now(),
	}

	if err := h.uploadService.Submit(r.Context(), job); err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFile):
			writeDetail(w, http.StatusUnsupportedMediaType, service.UploadRejectedMessage)
		case errors.Is(err, service.ErrEmptyFile):
			writeDetail(w, http.StatusUnprocessableEntity, msgFileEmpty)
		case errors.Is(err, service.ErrImportQueueFull):
			writeDetail(w, http.StatusServiceUnavailable, msgQueueFull)
		default:
			h.logger.Error("failed to submit upload", zap.Error(err), zap.String("file_name", job.FileName))
			writeDetail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	resp := uploadResponse{Status: "accepted", FileName: job.FileName, Size: job.Size}
	if err := writeJSON(w, http.StatusAccepted, resp); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
