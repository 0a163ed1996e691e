package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myflix/internal/service"
)

// FavoritesHandler mantiene dependencias para endpoints de favoritos.
type FavoritesHandler struct {
	logger  *zap.Logger
	favServ *service.FavoritesService
}

func NewFavoritesHandler(logger *zap.Logger, favServ *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		logger:  logger,
		favServ: favServ,
	}
}

// Add maneja POST /users/:username/favorites/:movieId.
func (h *FavoritesHandler) Add(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	user, err := h.favServ.Add(c.Request.Context(), principal, c.Param("username"), c.Param("movieId"))
	if err != nil {
		h.respondFavoritesError(c, err, "add favorite failed")
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Remove maneja DELETE /users/:username/favorites/:movieId.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	user, err := h.favServ.Remove(c.Request.Context(), principal, c.Param("username"), c.Param("movieId"))
	if err != nil {
		h.respondFavoritesError(c, err, "remove favorite failed")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *FavoritesHandler) respondFavoritesError(c *gin.Context, err error, logMsg string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
	case errors.Is(err, service.ErrNotFavorite):
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not in favorites"})
	case errors.Is(err, service.ErrAlreadyFavorite):
		c.JSON(http.StatusConflict, gin.H{"error": "movie already in favorites"})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update favorites"})
	}
}
