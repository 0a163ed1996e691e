package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myflix/internal/catalog"
)

// MovieHandler sirve lecturas simples sobre el catálogo.
type MovieHandler struct {
	logger *zap.Logger
	movies catalog.Store
}

func NewMovieHandler(logger *zap.Logger, movies catalog.Store) *MovieHandler {
	return &MovieHandler{
		logger: logger,
		movies: movies,
	}
}

// Welcome maneja GET /.
func (h *MovieHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the myFlix API"})
}

// List maneja GET /movies.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movies.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list movies failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load movies"})
		return
	}
	c.JSON(http.StatusOK, newMovieListResponse(movies))
}

// GetByTitle maneja GET /movies/:title.
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	movie, err := h.movies.FindByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		h.logger.Error("get movie failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load movie"})
		return
	}
	c.JSON(http.StatusOK, newMovieResponse(movie))
}

// GetGenre maneja GET /genres/:name.
func (h *MovieHandler) GetGenre(c *gin.Context) {
	movies, err := h.movies.FindByGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.logger.Error("get genre failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load genre"})
		return
	}
	if len(movies) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
		return
	}
	c.JSON(http.StatusOK, GenreResponse(movies[0].Genre))
}

// GetDirector maneja GET /directors/:name.
func (h *MovieHandler) GetDirector(c *gin.Context) {
	movies, err := h.movies.FindByDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.logger.Error("get director failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load director"})
		return
	}
	if len(movies) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "director not found"})
		return
	}
	c.JSON(http.StatusOK, DirectorResponse(movies[0].Director))
}
