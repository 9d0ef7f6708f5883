package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// ActividadHandler libro de actividades
type ActividadHandler struct {
	actividadSvc service.ActividadService
}

// NewActividadHandler crea el ActividadHandler
func NewActividadHandler(actividadSvc service.ActividadService) *ActividadHandler {
	return &ActividadHandler{actividadSvc: actividadSvc}
}

// Crear alta directa de un intervalo cerrado
// POST /api/v1/actividades
func (h *ActividadHandler) Crear(c *gin.Context) {
	operadorID, ok := MustGetOperadorID(c)
	if !ok {
		return
	}

	var req dto.CrearRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos en el registro de actividad")
		return
	}

	registro, err := h.actividadSvc.CrearRegistro(c.Request.Context(), &req, operadorID)
	if err != nil {
		manejarErrorActividad(c, err)
		return
	}
	response.Created(c, registro)
}

// Listar consulta paginada del libro
// GET /api/v1/actividades
func (h *ActividadHandler) Listar(c *gin.Context) {
	var req dto.ListarRegistrosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "filtros de consulta inválidos")
		return
	}

	registros, total, err := h.actividadSvc.ListarRegistros(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, registros, total, req.GetPage(), req.GetPageSize())
}

// manejarErrorActividad traduce los errores de validación del libro.
// Compartido con el cronómetro, que delega aquí el alta del registro.
func manejarErrorActividad(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHoraInvalida):
		response.BadRequest(c, 30001, "hora_inicio y hora_fin deben ser RFC3339")
	case errors.Is(err, service.ErrIntervaloInvalido):
		response.BadRequest(c, 30002, "hora_fin debe ser posterior a hora_inicio")
	case errors.Is(err, service.ErrOperadorNoEncontrado):
		response.NotFound(c, 30003, "el operador no existe o está inactivo")
	case errors.Is(err, service.ErrMaquinaNoEncontrada):
		response.NotFound(c, 30004, "la máquina no existe o está inactiva")
	case errors.Is(err, service.ErrCodigoNoEncontrado):
		response.NotFound(c, 30005, "el código de actividad no existe o está inactivo")
	case errors.Is(err, service.ErrOrdenNoEncontrada):
		response.NotFound(c, 30006, "la orden de trabajo no existe")
	default:
		response.InternalError(c)
	}
}
