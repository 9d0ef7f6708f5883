package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// RendimientoHandler resumen mensual de operadores
type RendimientoHandler struct {
	rendimientoSvc service.RendimientoService
}

// NewRendimientoHandler crea el RendimientoHandler
func NewRendimientoHandler(rendimientoSvc service.RendimientoService) *RendimientoHandler {
	return &RendimientoHandler{rendimientoSvc: rendimientoSvc}
}

// Recalcular recalcula el mes de un operador, o de todos si no se indica
// POST /api/v1/rendimientos/recalcular
func (h *RendimientoHandler) Recalcular(c *gin.Context) {
	var req dto.RecalcularRendimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "mes (1-12) y anio son obligatorios")
		return
	}

	if req.OperadorID != nil {
		resumen, err := h.rendimientoSvc.RecalcularMes(c.Request.Context(), *req.OperadorID, req.Mes, req.Anio)
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.OK(c, resumen)
		return
	}

	lote, err := h.rendimientoSvc.RecalcularTodos(c.Request.Context(), req.Mes, req.Anio)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, lote)
}

// Obtener consulta el resumen mensual de un operador
// GET /api/v1/rendimientos/:operador_id?mes=&anio=
func (h *RendimientoHandler) Obtener(c *gin.Context) {
	operadorID := c.Param("operador_id")

	var req dto.ObtenerRendimientoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "mes (1-12) y anio son obligatorios")
		return
	}

	resumen, err := h.rendimientoSvc.Obtener(c.Request.Context(), operadorID, req.Mes, req.Anio)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resumen)
}

func (h *RendimientoHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSinProduccionMensual):
		response.NotFound(c, 51001, "el operador no tiene producción en el período")
	case errors.Is(err, service.ErrRendimientoNoExiste):
		response.NotFound(c, 51002, "no existe resumen mensual para esa clave")
	case errors.Is(err, service.ErrOperadorNoEncontrado):
		response.NotFound(c, 30003, "el operador no existe o está inactivo")
	default:
		response.InternalError(c)
	}
}
