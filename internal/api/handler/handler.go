package handler

import "github.com/estebanmar24/Software-Tablets-sub001/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Sesion      *SesionHandler
	Cronometro  *CronometroHandler
	Actividad   *ActividadHandler
	Produccion  *ProduccionHandler
	Rendimiento *RendimientoHandler
	Calidad     *CalidadHandler
	Desperdicio *DesperdicioHandler
	Exportar    *ExportarHandler
	Catalogo    *CatalogoHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Sesion:      NewSesionHandler(svc.Sesion),
		Cronometro:  NewCronometroHandler(svc.Cronometro),
		Actividad:   NewActividadHandler(svc.Actividad),
		Produccion:  NewProduccionHandler(svc.Produccion),
		Rendimiento: NewRendimientoHandler(svc.Rendimiento),
		Calidad:     NewCalidadHandler(svc.Calidad),
		Desperdicio: NewDesperdicioHandler(svc.Desperdicio),
		Exportar:    NewExportarHandler(svc.Exportar),
		Catalogo:    NewCatalogoHandler(svc.Catalogo),
	}
}
