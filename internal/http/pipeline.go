package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"myflix/internal/service"
)

const principalKey = "auth_principal"

// Stage es una etapa nombrada del pipeline de request: o enriquece el
// contexto y continúa, o corta con una respuesta.
type Stage struct {
	Name string
	Run  func(c *gin.Context) bool
}

// Pipeline compone etapas en orden explícito. La primera etapa que corta
// detiene el resto de la cadena.
func Pipeline(stages ...Stage) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, stage := range stages {
			if !stage.Run(c) {
				c.Abort()
				return
			}
		}
	}
}

// VerifyToken extrae el bearer token del header Authorization, lo valida y
// deja el principal resuelto en el contexto de la request. Token ausente,
// malformado, mal firmado o expirado: siempre 401, sin distinguir causa.
func VerifyToken(jwtSvc *service.JWTService) Stage {
	return Stage{
		Name: "verify-token",
		Run: func(c *gin.Context) bool {
			header := strings.TrimSpace(c.GetHeader("Authorization"))
			if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
				return false
			}
			principal, err := jwtSvc.ParseToken(strings.TrimSpace(header[len("Bearer "):]))
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return false
			}
			c.Set(principalKey, principal)
			return true
		},
	}
}

// AuthorizeOwner exige que el principal coincida con el :username de la
// ruta. Cualquier discrepancia es 403, sin importar la validez del token.
func AuthorizeOwner() Stage {
	return Stage{
		Name: "authorize-ownership",
		Run: func(c *gin.Context) bool {
			principal, ok := GetPrincipal(c)
			if !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
				return false
			}
			if principal.Username != c.Param("username") {
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return false
			}
			return true
		},
	}
}

// GetPrincipal obtiene el principal resuelto desde el contexto.
func GetPrincipal(c *gin.Context) (service.Principal, bool) {
	val, ok := c.Get(principalKey)
	if !ok {
		return service.Principal{}, false
	}
	principal, ok := val.(service.Principal)
	return principal, ok
}
