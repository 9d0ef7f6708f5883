package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

// icsMaxBytes límite de tamaño del calendario subido
const icsMaxBytes = 1 << 20

// CatalogoHandler catálogos y calendario de turnos
type CatalogoHandler struct {
	catalogoSvc service.CatalogoService
}

// NewCatalogoHandler crea el CatalogoHandler
func NewCatalogoHandler(catalogoSvc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{catalogoSvc: catalogoSvc}
}

// ListarMaquinas
// GET /api/v1/maquinas
func (h *CatalogoHandler) ListarMaquinas(c *gin.Context) {
	maquinas, err := h.catalogoSvc.ListarMaquinas(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, maquinas)
}

// ListarOperadores
// GET /api/v1/operadores
func (h *CatalogoHandler) ListarOperadores(c *gin.Context) {
	operadores, err := h.catalogoSvc.ListarOperadores(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, operadores)
}

// ListarCodigosActividad
// GET /api/v1/codigos-actividad
func (h *CatalogoHandler) ListarCodigosActividad(c *gin.Context) {
	codigos, err := h.catalogoSvc.ListarCodigosActividad(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, codigos)
}

// ListarCodigosDesperdicio
// GET /api/v1/codigos-desperdicio
func (h *CatalogoHandler) ListarCodigosDesperdicio(c *gin.Context) {
	codigos, err := h.catalogoSvc.ListarCodigosDesperdicio(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, codigos)
}

// ListarTurnos
// GET /api/v1/turnos
func (h *CatalogoHandler) ListarTurnos(c *gin.Context) {
	turnos, err := h.catalogoSvc.ListarTurnos(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, turnos)
}

// ImportarTurnos reemplaza el calendario de turnos con el ICS del cuerpo
// POST /api/v1/turnos/importar-ics  (cuerpo: text/calendar crudo)
func (h *CatalogoHandler) ImportarTurnos(c *gin.Context) {
	lector := io.LimitReader(c.Request.Body, icsMaxBytes)

	resultado, err := h.catalogoSvc.ImportarTurnosICS(c.Request.Context(), lector)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCalendarioInvalido):
			response.BadRequest(c, 71001, "calendario ICS inválido")
		case errors.Is(err, service.ErrCalendarioVacio):
			response.BadRequest(c, 71002, "el calendario no contiene eventos utilizables")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resultado)
}
