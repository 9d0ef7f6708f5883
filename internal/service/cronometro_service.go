package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
)

// ── Errores del cronómetro ──

var (
	ErrCronometroYaCorriendo = errors.New("ya hay un intervalo de actividad corriendo en esta sesión")
	ErrCronometroNoCorriendo = errors.New("el cronómetro no está corriendo")
	ErrCronometroNoPausado   = errors.New("el cronómetro no está pausado")
	ErrCronometroInactivo    = errors.New("no hay intervalo de actividad abierto en esta sesión")
	ErrIntervaloDistinto     = errors.New("hay un intervalo pausado de otra máquina o actividad; deténgalo o reanúdelo")
)

// Estados del cronómetro
const (
	EstadoInactivo  = "inactivo"
	EstadoCorriendo = "corriendo"
	EstadoPausado   = "pausado"
)

// SesionCronometro estado serializable del cronómetro de una sesión.
// El tiempo transcurrido se recalcula siempre como
// Acumulado + (ahora − UltimaReanudacion): derivado del reloj de pared, de
// modo que la suspensión de la tablet no produce deriva al volver.
type SesionCronometro struct {
	Estado            string        `json:"estado"`
	OperadorID        string        `json:"operador_id"`
	MaquinaID         string        `json:"maquina_id"`
	CodigoActividadID string        `json:"codigo_actividad_id"`
	OrdenID           *string       `json:"orden_id,omitempty"`
	HoraInicio        time.Time     `json:"hora_inicio"`
	Acumulado         time.Duration `json:"acumulado"`
	UltimaReanudacion time.Time     `json:"ultima_reanudacion"`
}

// Transcurrido duración acumulada del intervalo al instante dado
func (s *SesionCronometro) Transcurrido(ahora time.Time) time.Duration {
	if s.Estado == EstadoCorriendo {
		return s.Acumulado + ahora.Sub(s.UltimaReanudacion)
	}
	return s.Acumulado
}

// CronometroService máquina de estados del intervalo de actividad.
// Un solo intervalo abierto por sesión: inactivo → corriendo ⇄ pausado →
// detenido → inactivo. Detener es el único productor de registros de
// actividad; el resto de transiciones son puramente locales a la sesión.
type CronometroService interface {
	Iniciar(ctx context.Context, sesionID, operadorID string, req *dto.IniciarCronometroRequest) (*dto.CronometroResponse, error)
	Pausar(ctx context.Context, sesionID string) (*dto.CronometroResponse, error)
	Reanudar(ctx context.Context, sesionID string) (*dto.CronometroResponse, error)
	Detener(ctx context.Context, sesionID, operadorID string, req *dto.DetenerCronometroRequest) (*dto.DetenerCronometroResponse, error)
	Estado(ctx context.Context, sesionID string) (*dto.CronometroResponse, error)
}

type cronometroService struct {
	store     CronometroStore
	actividad ActividadService
	logger    *zap.Logger
	ahora     func() time.Time // inyectable en pruebas
}

// NewCronometroService crea el servicio de cronómetro
func NewCronometroService(store CronometroStore, actividad ActividadService, logger *zap.Logger) CronometroService {
	return &cronometroService{
		store:     store,
		actividad: actividad,
		logger:    logger,
		ahora:     time.Now,
	}
}

// Iniciar abre un intervalo. Válido desde inactivo; desde pausado equivale a
// reanudar si máquina y actividad coinciden, y es un error explícito si no.
func (s *cronometroService) Iniciar(ctx context.Context, sesionID, operadorID string, req *dto.IniciarCronometroRequest) (*dto.CronometroResponse, error) {
	sc, err := s.store.Obtener(ctx, sesionID)
	if err != nil {
		s.logger.Error("error leyendo estado del cronómetro", zap.Error(err))
		return nil, err
	}

	if sc != nil {
		switch sc.Estado {
		case EstadoCorriendo:
			return nil, ErrCronometroYaCorriendo
		case EstadoPausado:
			if sc.MaquinaID == req.MaquinaID && sc.CodigoActividadID == req.CodigoActividadID {
				return s.Reanudar(ctx, sesionID)
			}
			return nil, ErrIntervaloDistinto
		}
	}

	now := s.ahora()
	sc = &SesionCronometro{
		Estado:            EstadoCorriendo,
		OperadorID:        operadorID,
		MaquinaID:         req.MaquinaID,
		CodigoActividadID: req.CodigoActividadID,
		OrdenID:           req.OrdenID,
		HoraInicio:        now,
		Acumulado:         0,
		UltimaReanudacion: now,
	}

	if err := s.store.Guardar(ctx, sesionID, sc); err != nil {
		s.logger.Error("error guardando estado del cronómetro", zap.Error(err))
		return nil, err
	}

	return s.aResponse(sc), nil
}

// Pausar congela el tiempo transcurrido. Válido solo desde corriendo.
func (s *cronometroService) Pausar(ctx context.Context, sesionID string) (*dto.CronometroResponse, error) {
	sc, err := s.store.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if sc == nil || sc.Estado == EstadoInactivo {
		return nil, ErrCronometroInactivo
	}
	if sc.Estado != EstadoCorriendo {
		return nil, ErrCronometroNoCorriendo
	}

	now := s.ahora()
	sc.Acumulado += now.Sub(sc.UltimaReanudacion)
	sc.Estado = EstadoPausado

	if err := s.store.Guardar(ctx, sesionID, sc); err != nil {
		return nil, err
	}
	return s.aResponse(sc), nil
}

// Reanudar re-ancla la referencia de reloj a "ahora" conservando lo acumulado.
// Válido solo desde pausado.
func (s *cronometroService) Reanudar(ctx context.Context, sesionID string) (*dto.CronometroResponse, error) {
	sc, err := s.store.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if sc == nil || sc.Estado == EstadoInactivo {
		return nil, ErrCronometroInactivo
	}
	if sc.Estado != EstadoPausado {
		return nil, ErrCronometroNoPausado
	}

	sc.UltimaReanudacion = s.ahora()
	sc.Estado = EstadoCorriendo

	if err := s.store.Guardar(ctx, sesionID, sc); err != nil {
		return nil, err
	}
	return s.aResponse(sc), nil
}

// Detener cierra el intervalo, registra el resultado en el libro de
// actividades y vuelve a inactivo. Válido desde corriendo o pausado.
func (s *cronometroService) Detener(ctx context.Context, sesionID, operadorID string, req *dto.DetenerCronometroRequest) (*dto.DetenerCronometroResponse, error) {
	sc, err := s.store.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if sc == nil || sc.Estado == EstadoInactivo {
		return nil, ErrCronometroInactivo
	}

	now := s.ahora()
	duracion := sc.Transcurrido(now)

	registro, err := s.actividad.CrearRegistro(ctx, &dto.CrearRegistroRequest{
		OperadorID:        sc.OperadorID,
		MaquinaID:         sc.MaquinaID,
		CodigoActividadID: sc.CodigoActividadID,
		HoraInicio:        sc.HoraInicio.Format(time.RFC3339),
		HoraFin:           sc.HoraInicio.Add(duracion).Format(time.RFC3339),
		Tiros:             req.Tiros,
		Desperdicio:       req.Desperdicio,
		OrdenID:           sc.OrdenID,
		Observacion:       req.Observacion,
	}, operadorID)
	if err != nil {
		// El intervalo queda abierto: el operador puede corregir y reintentar
		return nil, err
	}

	if err := s.store.Eliminar(ctx, sesionID); err != nil {
		s.logger.Warn("error limpiando estado del cronómetro", zap.Error(err))
	}

	return &dto.DetenerCronometroResponse{
		DuracionMinutos: math.Round(duracion.Minutes()*100) / 100,
		Registro:        registro,
	}, nil
}

// Estado consulta el cronómetro sin modificarlo
func (s *cronometroService) Estado(ctx context.Context, sesionID string) (*dto.CronometroResponse, error) {
	sc, err := s.store.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return &dto.CronometroResponse{Estado: EstadoInactivo}, nil
	}
	return s.aResponse(sc), nil
}

func (s *cronometroService) aResponse(sc *SesionCronometro) *dto.CronometroResponse {
	return &dto.CronometroResponse{
		Estado:               sc.Estado,
		MaquinaID:            sc.MaquinaID,
		CodigoActividadID:    sc.CodigoActividadID,
		OrdenID:              sc.OrdenID,
		HoraInicio:           sc.HoraInicio.Format(time.RFC3339),
		TranscurridoSegundos: math.Round(sc.Transcurrido(s.ahora()).Seconds()*100) / 100,
	}
}
