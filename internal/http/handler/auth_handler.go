package handler

import (
	"errors"
	"net/http"

	"github.com/straye-as/paint-stock-api/internal/auth"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	gate   *auth.Gate
	logger *zap.Logger
}

func NewAuthHandler(gate *auth.Gate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		gate:   gate,
		logger: logger,
	}
}

// Login godoc
// @Summary Start an admin session
// @Description Exchanges the admin password for a session token. Settings and reset require it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Admin password"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, _, err := h.gate.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			h.logger.Warn("admin login rejected", zap.String("remote_addr", r.RemoteAddr))
			respondWithError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		h.logger.Error("failed to issue admin session", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	respondJSON(w, http.StatusOK, domain.LoginResponse{
		Token:     token,
		ExpiresIn: int(h.gate.SessionTTL().Seconds()),
	})
}
