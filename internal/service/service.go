package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/config"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/jwt"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Sesion      SesionService
	Cronometro  CronometroService
	Actividad   ActividadService
	Produccion  ProduccionService
	Rendimiento RendimientoService
	Calidad     CalidadService
	Desperdicio DesperdicioService
	Exportar    ExportarService
	Catalogo    CatalogoService
}

// NewService crea el agregado de servicios.
// store decide dónde vive el estado del cronómetro (Redis o memoria); loc es
// la zona horaria de planta con la que se fechan los registros.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	store CronometroStore,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	actividad := NewActividadService(repo, loc, logger)

	return &Service{
		Sesion:      NewSesionService(repo, jwtMgr, logger),
		Cronometro:  NewCronometroService(store, actividad, logger),
		Actividad:   actividad,
		Produccion:  NewProduccionService(repo, logger),
		Rendimiento: NewRendimientoService(repo, logger),
		Calidad:     NewCalidadService(repo, logger),
		Desperdicio: NewDesperdicioService(repo, logger),
		Exportar:    NewExportarService(repo, logger),
		Catalogo:    NewCatalogoService(repo, logger),
	}
}
