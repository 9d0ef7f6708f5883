package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

// ── Errores del libro de actividades ──

var (
	ErrOperadorNoEncontrado = errors.New("el operador no existe o está inactivo")
	ErrMaquinaNoEncontrada  = errors.New("la máquina no existe o está inactiva")
	ErrCodigoNoEncontrado   = errors.New("el código de actividad no existe o está inactivo")
	ErrOrdenNoEncontrada    = errors.New("la orden de trabajo no existe")
	ErrHoraInvalida         = errors.New("hora_inicio y hora_fin deben ser fechas RFC3339 válidas")
	ErrIntervaloInvalido    = errors.New("hora_fin debe ser posterior a hora_inicio")
)

// ActividadService libro de actividades: almacenamiento y consulta.
// Intencionalmente tonto: valida y persiste; ningún cálculo de negocio vive
// aquí. El único productor en el flujo normal es el cronómetro al detenerse.
type ActividadService interface {
	CrearRegistro(ctx context.Context, req *dto.CrearRegistroRequest, creadoPor string) (*dto.RegistroActividadResponse, error)
	ListarRegistros(ctx context.Context, req *dto.ListarRegistrosRequest) ([]dto.RegistroActividadResponse, int64, error)
}

type actividadService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewActividadService crea el servicio del libro de actividades
func NewActividadService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ActividadService {
	return &actividadService{repo: repo, loc: loc, logger: logger}
}

func (s *actividadService) CrearRegistro(ctx context.Context, req *dto.CrearRegistroRequest, creadoPor string) (*dto.RegistroActividadResponse, error) {
	inicio, err := time.Parse(time.RFC3339, req.HoraInicio)
	if err != nil {
		return nil, ErrHoraInvalida
	}
	fin, err := time.Parse(time.RFC3339, req.HoraFin)
	if err != nil {
		return nil, ErrHoraInvalida
	}
	if !fin.After(inicio) {
		return nil, ErrIntervaloInvalido
	}

	// ── Claves foráneas: rechazo síncrono, nunca se persiste basura ──
	operador, err := s.repo.Operador.GetByID(ctx, req.OperadorID)
	if err != nil || !operador.Activo {
		return nil, ErrOperadorNoEncontrado
	}
	maquina, err := s.repo.Maquina.GetByID(ctx, req.MaquinaID)
	if err != nil || !maquina.Activa {
		return nil, ErrMaquinaNoEncontrada
	}
	codigo, err := s.repo.CodigoActividad.GetByID(ctx, req.CodigoActividadID)
	if err != nil || !codigo.Activo {
		return nil, ErrCodigoNoEncontrado
	}
	if req.OrdenID != nil {
		if _, err := s.repo.Orden.GetByID(ctx, *req.OrdenID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrdenNoEncontrada
			}
			s.logger.Error("error consultando orden de trabajo", zap.Error(err))
			return nil, err
		}
	}

	turnos, err := s.repo.Turno.List(ctx)
	if err != nil {
		s.logger.Error("error consultando turnos laborales", zap.Error(err))
		return nil, err
	}

	local := inicio.In(s.loc)
	registro := &model.RegistroActividad{
		OperadorID:        req.OperadorID,
		MaquinaID:         req.MaquinaID,
		CodigoActividadID: req.CodigoActividadID,
		Fecha:             fechaDe(local),
		HoraInicio:        inicio,
		HoraFin:           fin,
		DuracionMinutos:   redondear2(fin.Sub(inicio).Minutes()),
		Tiros:             req.Tiros,
		Desperdicio:       decimal.NewFromFloat(req.Desperdicio).Round(2),
		EsHorarioLaboral:  enHorarioLaboral(turnos, local),
		OrdenID:           req.OrdenID,
		Observacion:       req.Observacion,
		CreatedBy:         &creadoPor,
	}

	if err := s.repo.Registro.Create(ctx, registro); err != nil {
		s.logger.Error("error insertando registro de actividad", zap.Error(err))
		return nil, err
	}

	registro.Operador = operador
	registro.Maquina = maquina
	registro.CodigoActividad = codigo
	resp := registroAResponse(registro)
	return &resp, nil
}

func (s *actividadService) ListarRegistros(ctx context.Context, req *dto.ListarRegistrosRequest) ([]dto.RegistroActividadResponse, int64, error) {
	filtro := repository.FiltroRegistros{
		OperadorID: req.OperadorID,
		MaquinaID:  req.MaquinaID,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	}
	if req.Desde != "" {
		d, _ := time.Parse("2006-01-02", req.Desde)
		filtro.Desde = &d
	}
	if req.Hasta != "" {
		h, _ := time.Parse("2006-01-02", req.Hasta)
		filtro.Hasta = &h
	}

	registros, total, err := s.repo.Registro.List(ctx, filtro)
	if err != nil {
		s.logger.Error("error consultando libro de actividades", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RegistroActividadResponse, 0, len(registros))
	for i := range registros {
		result = append(result, registroAResponse(&registros[i]))
	}
	return result, total, nil
}

// ── Auxiliares ──

// fechaDe trunca un instante a su fecha calendario
func fechaDe(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// enHorarioLaboral indica si el instante cae dentro de alguna ventana de
// turno programado para ese día de semana (1=lunes…7=domingo). Determina la
// marca bonificable del registro.
func enHorarioLaboral(turnos []model.TurnoLaboral, t time.Time) bool {
	dia := int(t.Weekday())
	if dia == 0 {
		dia = 7 // domingo
	}
	hora := t.Format("15:04")
	for _, turno := range turnos {
		if turno.DiaSemana == dia && hora >= turno.HoraInicio && hora < turno.HoraFin {
			return true
		}
	}
	return false
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

func registroAResponse(r *model.RegistroActividad) dto.RegistroActividadResponse {
	resp := dto.RegistroActividadResponse{
		RegistroID:       r.RegistroID,
		OperadorID:       r.OperadorID,
		MaquinaID:        r.MaquinaID,
		Fecha:            r.Fecha.Format("2006-01-02"),
		HoraInicio:       r.HoraInicio.Format(time.RFC3339),
		HoraFin:          r.HoraFin.Format(time.RFC3339),
		DuracionMinutos:  r.DuracionMinutos,
		Tiros:            r.Tiros,
		Desperdicio:      r.Desperdicio.StringFixed(2),
		EsHorarioLaboral: r.EsHorarioLaboral,
		OrdenID:          r.OrdenID,
		Observacion:      r.Observacion,
	}
	if r.Operador != nil {
		resp.Operador = r.Operador.Nombre
	}
	if r.Maquina != nil {
		resp.Maquina = r.Maquina.Nombre
	}
	if r.CodigoActividad != nil {
		resp.CodigoActividad = r.CodigoActividad.Nombre
		resp.Categoria = r.CodigoActividad.Categoria
	}
	return resp
}
