package handler

import (
	"errors"
	"net/http"
	"time"

	"qrlinx/internal/auth"
	"qrlinx/internal/model"

	"github.com/gin-gonic/gin"
)

// SessionInfo is the public part of a session
type SessionInfo struct {
	User      model.User `json:"user"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// AuthHandler handles sign-in, sign-up, password reset and sign-out
type AuthHandler struct {
	provider SessionProvider
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(provider SessionProvider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// Login handles POST /api/v1/auth/login
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.Credentials true "Credentials"
// @Success 200 {object} Response{data=SessionInfo}
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s, err := h.provider.SignIn(c.Request.Context(), creds)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	success(c, http.StatusOK, sessionInfo(s))
}

// Signup handles POST /api/v1/auth/signup
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.Credentials true "Credentials"
// @Success 201 {object} Response{data=SessionInfo}
// @Success 202 {object} Response
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s, err := h.provider.SignUp(c.Request.Context(), creds)
	if errors.Is(err, auth.ErrConfirmationPending) {
		c.JSON(http.StatusAccepted, Response{Code: 0, Message: err.Error()})
		return
	}
	if err != nil {
		writeAuthError(c, err)
		return
	}
	success(c, http.StatusCreated, sessionInfo(s))
}

// Reset handles POST /api/v1/auth/reset
// @Summary Send a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.PasswordResetRequest true "Reset request"
// @Success 200 {object} Response
// @Router /api/v1/auth/reset [post]
func (h *AuthHandler) Reset(c *gin.Context) {
	var req model.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.provider.ResetPassword(c.Request.Context(), req); err != nil {
		writeAuthError(c, err)
		return
	}
	success(c, http.StatusOK, nil)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.provider.SignOut(c.Request.Context()); err != nil {
		writeAuthError(c, err)
		return
	}
	success(c, http.StatusOK, nil)
}

// Session handles GET /api/v1/auth/session
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=SessionInfo}
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	s := h.provider.Session()
	if s == nil {
		failure(c, http.StatusUnauthorized, auth.ErrNotSignedIn.Error())
		return
	}
	success(c, http.StatusOK, sessionInfo(s))
}

func sessionInfo(s *model.Session) SessionInfo {
	return SessionInfo{User: s.User, ExpiresAt: s.ExpiresAt}
}

func writeAuthError(c *gin.Context, err error) {
	var perr *auth.ProviderError
	switch {
	case errors.Is(err, auth.ErrNotSignedIn):
		failure(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &perr) && perr.Status >= 400 && perr.Status < 500:
		failure(c, perr.Status, perr.Message)
	default:
		failure(c, http.StatusBadGateway, "Authentication service unavailable")
	}
}
