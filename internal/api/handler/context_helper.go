package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// MustGetSesionID extrae el sesion_id que inyectó el middleware de
// autenticación. Si falta, escribe 401 y devuelve false; el llamador debe
// hacer return directo.
func MustGetSesionID(c *gin.Context) (string, bool) {
	v, exists := c.Get("sesion_id")
	if !exists {
		response.Unauthorized(c, 10002, "sesión no autenticada")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "sesión no autenticada")
		return "", false
	}
	return s, true
}

// MustGetOperadorID extrae el operador_id de la sesión autenticada.
func MustGetOperadorID(c *gin.Context) (string, bool) {
	v, exists := c.Get("operador_id")
	if !exists {
		response.Unauthorized(c, 10002, "sesión no autenticada")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "sesión no autenticada")
		return "", false
	}
	return s, true
}
