package api

import (
	"errors"
	"net/http"

	reqdto "citas-unidades/internal/handler/dto/request"
	resdto "citas-unidades/internal/handler/dto/response"
	"citas-unidades/internal/handler/middleware"
	"citas-unidades/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Admin login
// @Description Exchange the shared admin secret for a panel session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSecret):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin secret",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := resdto.LoginResponse{
		AccessToken: result.Token,
		SessionID:   result.SessionID,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Admin logout
// @Description End the current panel session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Sessions are stateless JWTs; logout is handled client-side by
	// discarding the token. Server simply returns 204 No Content.
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description Confirm the panel session is still valid
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID.String()})
}
