package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// ProduccionHandler rollup diario de producción
type ProduccionHandler struct {
	produccionSvc service.ProduccionService
}

// NewProduccionHandler crea el ProduccionHandler
func NewProduccionHandler(produccionSvc service.ProduccionService) *ProduccionHandler {
	return &ProduccionHandler{produccionSvc: produccionSvc}
}

// Recalcular recalcula la fila de una clave (operador, máquina, fecha)
// POST /api/v1/produccion/recalcular
func (h *ProduccionHandler) Recalcular(c *gin.Context) {
	var req dto.RecalcularProduccionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "operador_id, maquina_id y fecha (AAAA-MM-DD) son obligatorios")
		return
	}
	fecha, _ := time.Parse("2006-01-02", req.Fecha)

	fila, err := h.produccionSvc.Recalcular(c.Request.Context(), req.OperadorID, req.MaquinaID, fecha)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, fila)
}

// RecalcularRango recalcula día por día un rango de fechas
// POST /api/v1/produccion/recalcular-rango
func (h *ProduccionHandler) RecalcularRango(c *gin.Context) {
	var req dto.RecalcularProduccionRangoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "operador_id, maquina_id, desde y hasta son obligatorios")
		return
	}
	desde, _ := time.Parse("2006-01-02", req.Desde)
	hasta, _ := time.Parse("2006-01-02", req.Hasta)
	if hasta.Before(desde) {
		response.BadRequest(c, 40003, "hasta debe ser igual o posterior a desde")
		return
	}

	lote, err := h.produccionSvc.RecalcularRango(c.Request.Context(), req.OperadorID, req.MaquinaID, desde, hasta)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, lote)
}

// Obtener consulta la fila de una clave
// GET /api/v1/produccion?operador_id=&maquina_id=&fecha=
func (h *ProduccionHandler) Obtener(c *gin.Context) {
	var req dto.ObtenerProduccionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "operador_id, maquina_id y fecha (AAAA-MM-DD) son obligatorios")
		return
	}
	fecha, _ := time.Parse("2006-01-02", req.Fecha)

	fila, err := h.produccionSvc.Obtener(c.Request.Context(), req.OperadorID, req.MaquinaID, fecha)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, fila)
}

func (h *ProduccionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSinActividad):
		response.NotFound(c, 40001, "no hay actividad registrada para esa clave")
	case errors.Is(err, service.ErrProduccionNoExiste):
		response.NotFound(c, 40002, "no existe producción diaria para esa clave")
	case errors.Is(err, service.ErrOperadorNoEncontrado):
		response.NotFound(c, 30003, "el operador no existe o está inactivo")
	case errors.Is(err, service.ErrMaquinaNoEncontrada):
		response.NotFound(c, 30004, "la máquina no existe o está inactiva")
	default:
		response.InternalError(c)
	}
}
