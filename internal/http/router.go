package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myflix/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	favH *FavoritesHandler,
	movieH *MovieHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins), jsonContentTypeMiddleware())

	// Rutas públicas.
	r.GET("/", movieH.Welcome)
	r.POST("/users", userH.Register)
	r.POST("/login", userH.Login)

	// Rutas protegidas, compuestas como pipeline de etapas nombradas.
	verified := Pipeline(VerifyToken(jwtSvc))
	owner := Pipeline(VerifyToken(jwtSvc), AuthorizeOwner())

	r.GET("/users/:username", owner, userH.GetProfile)
	r.PUT("/users/:username", owner, userH.UpdateProfile)
	r.DELETE("/users/:username", owner, userH.DeleteProfile)
	r.POST("/users/:username/favorites/:movieId", owner, favH.Add)
	r.DELETE("/users/:username/favorites/:movieId", owner, favH.Remove)

	r.GET("/movies", verified, movieH.List)
	r.GET("/movies/:title", verified, movieH.GetByTitle)
	r.GET("/genres/:name", verified, movieH.GetGenre)
	r.GET("/directors/:name", verified, movieH.GetDirector)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// corsMiddleware aplica la lista de orígenes permitidos. Sin lista
// configurada no se emiten headers CORS.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
