package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myflix/internal/service"
)

// UserHandler mantiene dependencias para endpoints de cuentas.
type UserHandler struct {
	logger       *zap.Logger
	userServ     *service.UserService
	jwtServ      *service.JWTService
	loginLimiter service.LoginLimiter
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, jwtServ *service.JWTService, loginLimiter service.LoginLimiter) *UserHandler {
	return &UserHandler{
		logger:       logger,
		userServ:     userServ,
		jwtServ:      jwtServ,
		loginLimiter: loginLimiter,
	}
}

// Register maneja POST /users.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Birthday string `json:"birthday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userServ.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		default:
			h.logger.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login maneja POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.loginLimiter != nil && !h.loginLimiter.Allow(req.Username) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		return
	}

	token, err := h.jwtServ.IssueToken(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:      newUserResponse(user),
		Token:     token,
		ExpiresIn: int64(h.jwtServ.TTL().Seconds()),
	})
}

// GetProfile maneja GET /users/:username.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userServ.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateProfile maneja PUT /users/:username.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Birthday *string `json:"birthday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userServ.Update(c.Request.Context(), c.Param("username"), service.UpdateInput{
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.logger.Error("update profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteProfile maneja DELETE /users/:username.
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	username := c.Param("username")
	if err := h.userServ.Delete(c.Request.Context(), username); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("delete profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "username": username})
}
