package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// SesionHandler apertura de sesiones de tablet
type SesionHandler struct {
	sesionSvc service.SesionService
}

// NewSesionHandler crea el SesionHandler
func NewSesionHandler(sesionSvc service.SesionService) *SesionHandler {
	return &SesionHandler{sesionSvc: sesionSvc}
}

// Abrir abre una sesión de kiosco
// POST /api/v1/sesiones
func (h *SesionHandler) Abrir(c *gin.Context) {
	var req dto.AbrirSesionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "código y PIN son obligatorios")
		return
	}

	sesion, err := h.sesionSvc.Abrir(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Unauthorized(c, 10003, "código o PIN incorrecto")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, sesion)
}
