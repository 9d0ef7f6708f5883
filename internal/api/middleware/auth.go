package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/pkg/jwt"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// SesionAuth middleware de autenticación de sesión de tablet.
// Extrae el token de Authorization: Bearer <token> e inyecta sesion_id y
// operador_id en el contexto; el sesion_id es la clave del estado del
// cronómetro de esa tablet.
func SesionAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta la cabecera de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabecera de autenticación inválida")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpirado) {
				response.Unauthorized(c, 10004, "la sesión expiró, vuelva a identificarse")
			} else {
				response.Unauthorized(c, 10002, "token inválido")
			}
			c.Abort()
			return
		}

		c.Set("sesion_id", claims.SesionID)
		c.Set("operador_id", claims.OperadorID)

		c.Next()
	}
}
