package auth

import (
	"errors"
	"net/http"

	"estatehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the sign-in endpoints. limit throttles them per client.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup, limit gin.HandlerFunc) {
	authGroup := v1.Group("/auth", limit)
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google", h.GoogleLogin)
		authGroup.POST("/forgot", h.ForgotPassword)
		authGroup.POST("/reset", h.ResetPassword)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create account")
		return
	}
	writeAuthResult(c, http.StatusCreated, res, "")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to login")
		return
	}
	writeAuthResult(c, http.StatusOK, res, "")
}

func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Google login failed")
		return
	}
	writeAuthResult(c, http.StatusOK, res, "")
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	token, err := h.service.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to start password reset")
		return
	}

	data := gin.H{"message": "If that email exists, a reset token was sent"}
	if token != "" {
		data["resetToken"] = token
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to reset password")
		return
	}
	writeAuthResult(c, http.StatusOK, res, "Password reset successful")
}

func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": ToUserPublic(user)})
}

func writeAuthResult(c *gin.Context, status int, res *AuthResult, message string) {
	data := gin.H{
		"token": res.Token,
		"user":  ToUserPublic(res.User),
	}
	if message != "" {
		data["message"] = message
	}
	response.Success(c, status, data)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "User already exists")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials")
	case errors.Is(err, ErrNoLocalPassword):
		response.Error(c, http.StatusBadRequest, "NO_LOCAL_PASSWORD", "No local password set for this user")
	case errors.Is(err, ErrAccountBlocked):
		response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "Your account has been blocked")
	case errors.Is(err, ErrInvalidResetToken):
		response.Error(c, http.StatusBadRequest, "INVALID_RESET_TOKEN", "Token invalid or expired")
	case errors.Is(err, ErrInvalidGoogleToken):
		response.Error(c, http.StatusUnauthorized, "INVALID_GOOGLE_TOKEN", "Google token could not be verified")
	case errors.Is(err, ErrGoogleNotConfigured):
		response.Error(c, http.StatusInternalServerError, "GOOGLE_NOT_CONFIGURED", "Google login is not configured on this server")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		response.Internal(c, err, fallback)
	}
}
