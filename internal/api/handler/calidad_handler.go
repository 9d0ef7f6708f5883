package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// CalidadHandler puntaje compuesto mensual de planta
type CalidadHandler struct {
	calidadSvc service.CalidadService
}

// NewCalidadHandler crea el CalidadHandler
func NewCalidadHandler(calidadSvc service.CalidadService) *CalidadHandler {
	return &CalidadHandler{calidadSvc: calidadSvc}
}

// Recalcular recalcula el compuesto de un período
// POST /api/v1/calidad/recalcular
func (h *CalidadHandler) Recalcular(c *gin.Context) {
	var req dto.RecalcularCalidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "mes (1-12) y anio son obligatorios")
		return
	}

	calidad, err := h.calidadSvc.RecalcularMes(c.Request.Context(), req.Mes, req.Anio)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, calidad)
}

// Obtener consulta el compuesto de un período
// GET /api/v1/calidad?mes=&anio=
func (h *CalidadHandler) Obtener(c *gin.Context) {
	var req dto.ObtenerCalidadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "mes (1-12) y anio son obligatorios")
		return
	}

	calidad, err := h.calidadSvc.Obtener(c.Request.Context(), req.Mes, req.Anio)
	if err != nil {
		if errors.Is(err, service.ErrCalidadNoExiste) {
			response.NotFound(c, 52001, "no existe calidad mensual para ese período")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, calidad)
}
