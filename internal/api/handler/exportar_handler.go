package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/response"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportarHandler exportación de datos a Excel
type ExportarHandler struct {
	exportarSvc service.ExportarService
}

// NewExportarHandler crea el ExportarHandler
func NewExportarHandler(exportarSvc service.ExportarService) *ExportarHandler {
	return &ExportarHandler{exportarSvc: exportarSvc}
}

// Produccion descarga la producción mensual de una máquina
// GET /api/v1/exportar/produccion?maquina_id=&mes=&anio=
func (h *ExportarHandler) Produccion(c *gin.Context) {
	var req dto.ReporteMensualRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id, mes (1-12) y anio son obligatorios")
		return
	}

	buf, nombre, err := h.exportarSvc.ExportarProduccion(c.Request.Context(), req.MaquinaID, req.Mes, req.Anio)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.descargar(c, buf.Bytes(), nombre)
}

// Desperdicios descarga el desperdicio mensual de una máquina
// GET /api/v1/exportar/desperdicios?maquina_id=&mes=&anio=
func (h *ExportarHandler) Desperdicios(c *gin.Context) {
	var req dto.ReporteMensualRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "maquina_id, mes (1-12) y anio son obligatorios")
		return
	}

	buf, nombre, err := h.exportarSvc.ExportarDesperdicios(c.Request.Context(), req.MaquinaID, req.Mes, req.Anio)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.descargar(c, buf.Bytes(), nombre)
}

func (h *ExportarHandler) descargar(c *gin.Context, contenido []byte, nombre string) {
	codificado := url.QueryEscape(nombre)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+codificado)
	c.Header("Content-Type", contentTypeXLSX)
	c.Data(http.StatusOK, contentTypeXLSX, contenido)
}

func (h *ExportarHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportSinDatos):
		response.NotFound(c, 70001, "no hay datos que exportar en el período")
	case errors.Is(err, service.ErrMaquinaNoEncontrada):
		response.NotFound(c, 30004, "la máquina no existe o está inactiva")
	case errors.Is(err, service.ErrExportFallo):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
