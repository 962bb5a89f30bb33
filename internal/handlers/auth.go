package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/cargo-office/internal/domain"
	"go.uber.org/zap"
)

const tokenTypeBearer = "bearer"

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login открывает сессию и возвращает ее токен
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err, msgInternal, zap.String("login", req.Login))
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	if err := writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: tokenTypeBearer}); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// Logout завершает текущую сессию
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		writeServiceError(w, h.logger, err, msgInternal, zap.String("session_id", sessionID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session возвращает сведения о текущей сессии
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	info, err := h.authService.Session(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, h.logger, err, msgInternal, zap.String("session_id", sessionID))
		return
	}

	if err := writeJSON(w, http.StatusOK, info); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
