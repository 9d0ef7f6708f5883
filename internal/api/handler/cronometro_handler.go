package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// CronometroHandler cronómetro de actividad de la sesión
type CronometroHandler struct {
	cronometroSvc service.CronometroService
}

// NewCronometroHandler crea el CronometroHandler
func NewCronometroHandler(cronometroSvc service.CronometroService) *CronometroHandler {
	return &CronometroHandler{cronometroSvc: cronometroSvc}
}

// Iniciar abre un intervalo de actividad
// POST /api/v1/cronometro/iniciar
func (h *CronometroHandler) Iniciar(c *gin.Context) {
	sesionID, ok := MustGetSesionID(c)
	if !ok {
		return
	}
	operadorID, ok := MustGetOperadorID(c)
	if !ok {
		return
	}

	var req dto.IniciarCronometroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id y codigo_actividad_id son obligatorios")
		return
	}

	estado, err := h.cronometroSvc.Iniciar(c.Request.Context(), sesionID, operadorID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, estado)
}

// Pausar congela el intervalo corriente
// POST /api/v1/cronometro/pausar
func (h *CronometroHandler) Pausar(c *gin.Context) {
	sesionID, ok := MustGetSesionID(c)
	if !ok {
		return
	}

	estado, err := h.cronometroSvc.Pausar(c.Request.Context(), sesionID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, estado)
}

// Reanudar continúa un intervalo pausado
// POST /api/v1/cronometro/reanudar
func (h *CronometroHandler) Reanudar(c *gin.Context) {
	sesionID, ok := MustGetSesionID(c)
	if !ok {
		return
	}

	estado, err := h.cronometroSvc.Reanudar(c.Request.Context(), sesionID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, estado)
}

// Detener cierra el intervalo y lo registra en el libro
// POST /api/v1/cronometro/detener
func (h *CronometroHandler) Detener(c *gin.Context) {
	sesionID, ok := MustGetSesionID(c)
	if !ok {
		return
	}
	operadorID, ok := MustGetOperadorID(c)
	if !ok {
		return
	}

	var req dto.DetenerCronometroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "tiros y desperdicio deben ser no negativos")
		return
	}

	resultado, err := h.cronometroSvc.Detener(c.Request.Context(), sesionID, operadorID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resultado)
}

// Estado consulta el estado actual del cronómetro
// GET /api/v1/cronometro
func (h *CronometroHandler) Estado(c *gin.Context) {
	sesionID, ok := MustGetSesionID(c)
	if !ok {
		return
	}

	estado, err := h.cronometroSvc.Estado(c.Request.Context(), sesionID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, estado)
}

func (h *CronometroHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCronometroYaCorriendo):
		response.Conflict(c, 20001, "ya hay un intervalo corriendo en esta sesión")
	case errors.Is(err, service.ErrCronometroInactivo):
		response.Conflict(c, 20002, "no hay intervalo abierto en esta sesión")
	case errors.Is(err, service.ErrCronometroNoCorriendo):
		response.Conflict(c, 20003, "el cronómetro no está corriendo")
	case errors.Is(err, service.ErrCronometroNoPausado):
		response.Conflict(c, 20004, "el cronómetro no está pausado")
	case errors.Is(err, service.ErrIntervaloDistinto):
		response.Conflict(c, 20005, "hay un intervalo pausado de otra máquina o actividad")
	default:
		// Errores del alta en el libro al detener
		manejarErrorActividad(c, err)
	}
}
