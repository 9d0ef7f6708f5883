package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// DesperdicioHandler libro independiente de desperdicio
type DesperdicioHandler struct {
	desperdicioSvc service.DesperdicioService
}

// NewDesperdicioHandler crea el DesperdicioHandler
func NewDesperdicioHandler(desperdicioSvc service.DesperdicioService) *DesperdicioHandler {
	return &DesperdicioHandler{desperdicioSvc: desperdicioSvc}
}

// Crear alta de un registro de desperdicio
// POST /api/v1/desperdicios
func (h *DesperdicioHandler) Crear(c *gin.Context) {
	var req dto.CrearDesperdicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id, operador_id, fecha y cantidad (>0) son obligatorios")
		return
	}

	registro, err := h.desperdicioSvc.Crear(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, registro)
}

// TotalDia total del día de una máquina
// GET /api/v1/desperdicios/total?maquina_id=&fecha=
func (h *DesperdicioHandler) TotalDia(c *gin.Context) {
	var req dto.TotalDiaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id y fecha (AAAA-MM-DD) son obligatorios")
		return
	}
	fecha, _ := time.Parse("2006-01-02", req.Fecha)

	total, err := h.desperdicioSvc.TotalDia(c.Request.Context(), req.MaquinaID, fecha)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, total)
}

// ReporteMensual cantidades por día del mes de una máquina
// GET /api/v1/desperdicios/reporte?maquina_id=&mes=&anio=
func (h *DesperdicioHandler) ReporteMensual(c *gin.Context) {
	var req dto.ReporteMensualRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id, mes (1-12) y anio son obligatorios")
		return
	}

	reporte, err := h.desperdicioSvc.ReporteMensual(c.Request.Context(), req.MaquinaID, req.Mes, req.Anio)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, reporte)
}

func (h *DesperdicioHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCantidadInvalida):
		response.BadRequest(c, 60001, "la cantidad debe ser mayor que cero")
	case errors.Is(err, service.ErrFechaInvalida):
		response.BadRequest(c, 60002, "fecha inválida, se espera AAAA-MM-DD")
	case errors.Is(err, service.ErrCodigoDesperdicioNoEncontrado):
		response.NotFound(c, 60003, "el código de desperdicio no existe o está inactivo")
	case errors.Is(err, service.ErrMaquinaNoEncontrada):
		response.NotFound(c, 30004, "la máquina no existe o está inactiva")
	case errors.Is(err, service.ErrOperadorNoEncontrado):
		response.NotFound(c, 30003, "el operador no existe o está inactivo")
	default:
		response.InternalError(c)
	}
}
