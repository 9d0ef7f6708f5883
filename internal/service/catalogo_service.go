package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

var (
	ErrCalendarioInvalido = errors.New("calendario ICS inválido")
	ErrCalendarioVacio    = errors.New("el calendario no contiene eventos con hora de inicio y fin")
)

// CatalogoService lecturas de catálogo que la planta necesita expuestas, más
// la importación del calendario de turnos.
type CatalogoService interface {
	ListarMaquinas(ctx context.Context) ([]dto.MaquinaResponse, error)
	ListarOperadores(ctx context.Context) ([]dto.OperadorResponse, error)
	ListarCodigosActividad(ctx context.Context) ([]dto.CodigoActividadResponse, error)
	ListarCodigosDesperdicio(ctx context.Context) ([]dto.CodigoDesperdicioResponse, error)
	ListarTurnos(ctx context.Context) ([]dto.TurnoLaboralResponse, error)
	// ImportarTurnosICS reemplaza el calendario completo de turnos a partir de
	// un ICS: cada evento aporta una ventana (día de semana, inicio, fin);
	// ventanas repetidas en el archivo se deduplican
	ImportarTurnosICS(ctx context.Context, r io.Reader) (*dto.ImportarTurnosResponse, error)
}

type catalogoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogoService crea el servicio de catálogos
func NewCatalogoService(repo *repository.Repository, logger *zap.Logger) CatalogoService {
	return &catalogoService{repo: repo, logger: logger}
}

func (s *catalogoService) ListarMaquinas(ctx context.Context) ([]dto.MaquinaResponse, error) {
	maquinas, err := s.repo.Maquina.ListActivas(ctx)
	if err != nil {
		s.logger.Error("error listando máquinas", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.MaquinaResponse, 0, len(maquinas))
	for _, m := range maquinas {
		resp = append(resp, dto.MaquinaResponse{
			MaquinaID:        m.MaquinaID,
			Nombre:           m.Nombre,
			Meta100Porciento: m.Meta100Porciento,
			ValorPorTiro:     m.ValorPorTiro.String(),
			Importancia:      m.Importancia,
			Activa:           m.Activa,
		})
	}
	return resp, nil
}

func (s *catalogoService) ListarOperadores(ctx context.Context) ([]dto.OperadorResponse, error) {
	operadores, err := s.repo.Operador.ListActivos(ctx)
	if err != nil {
		s.logger.Error("error listando operadores", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.OperadorResponse, 0, len(operadores))
	for _, o := range operadores {
		resp = append(resp, operadorAResponse(&o))
	}
	return resp, nil
}

func (s *catalogoService) ListarCodigosActividad(ctx context.Context) ([]dto.CodigoActividadResponse, error) {
	codigos, err := s.repo.CodigoActividad.ListActivos(ctx)
	if err != nil {
		s.logger.Error("error listando códigos de actividad", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.CodigoActividadResponse, 0, len(codigos))
	for _, c := range codigos {
		resp = append(resp, dto.CodigoActividadResponse{
			CodigoActividadID: c.CodigoActividadID,
			Nombre:            c.Nombre,
			Categoria:         c.Categoria,
			EsProductiva:      c.EsProductiva,
		})
	}
	return resp, nil
}

func (s *catalogoService) ListarCodigosDesperdicio(ctx context.Context) ([]dto.CodigoDesperdicioResponse, error) {
	codigos, err := s.repo.CodigoDesperdicio.ListActivos(ctx)
	if err != nil {
		s.logger.Error("error listando códigos de desperdicio", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.CodigoDesperdicioResponse, 0, len(codigos))
	for _, c := range codigos {
		resp = append(resp, dto.CodigoDesperdicioResponse{
			CodigoDesperdicioID: c.CodigoDesperdicioID,
			Nombre:              c.Nombre,
		})
	}
	return resp, nil
}

func (s *catalogoService) ListarTurnos(ctx context.Context) ([]dto.TurnoLaboralResponse, error) {
	turnos, err := s.repo.Turno.List(ctx)
	if err != nil {
		s.logger.Error("error listando turnos", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.TurnoLaboralResponse, 0, len(turnos))
	for _, t := range turnos {
		resp = append(resp, turnoAResponse(&t))
	}
	return resp, nil
}

func (s *catalogoService) ImportarTurnosICS(ctx context.Context, r io.Reader) (*dto.ImportarTurnosResponse, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		s.logger.Warn("ICS no parseable", zap.Error(err))
		return nil, ErrCalendarioInvalido
	}

	turnos := extraerVentanas(cal)
	if len(turnos) == 0 {
		return nil, ErrCalendarioVacio
	}

	if err := s.repo.Turno.ReplaceAll(ctx, turnos); err != nil {
		s.logger.Error("error reemplazando turnos", zap.Error(err))
		return nil, err
	}

	guardados, err := s.repo.Turno.List(ctx)
	if err != nil {
		s.logger.Error("error releyendo turnos", zap.Error(err))
		return nil, err
	}
	resp := &dto.ImportarTurnosResponse{
		TurnosImportados: len(guardados),
		Turnos:           make([]dto.TurnoLaboralResponse, 0, len(guardados)),
	}
	for _, t := range guardados {
		resp.Turnos = append(resp.Turnos, turnoAResponse(&t))
	}
	return resp, nil
}

// extraerVentanas convierte los eventos del calendario en ventanas de turno
// (día de semana 1=lunes…7=domingo, horas "15:04"), deduplicadas
func extraerVentanas(cal *ics.Calendar) []model.TurnoLaboral {
	vistos := make(map[string]bool)
	var turnos []model.TurnoLaboral

	for _, evt := range cal.Events() {
		inicio, err := evt.GetStartAt()
		if err != nil {
			continue
		}
		fin, err := evt.GetEndAt()
		if err != nil || !fin.After(inicio) {
			continue
		}

		dia := int(inicio.Weekday())
		if dia == 0 {
			dia = 7 // domingo
		}
		horaInicio := inicio.Format("15:04")
		horaFin := fin.Format("15:04")

		clave := fmt.Sprintf("%d:%s:%s", dia, horaInicio, horaFin)
		if vistos[clave] {
			continue
		}
		vistos[clave] = true

		turnos = append(turnos, model.TurnoLaboral{
			DiaSemana:  dia,
			HoraInicio: horaInicio,
			HoraFin:    horaFin,
		})
	}

	sort.Slice(turnos, func(i, j int) bool {
		if turnos[i].DiaSemana != turnos[j].DiaSemana {
			return turnos[i].DiaSemana < turnos[j].DiaSemana
		}
		return turnos[i].HoraInicio < turnos[j].HoraInicio
	})
	return turnos
}

func operadorAResponse(o *model.Operador) dto.OperadorResponse {
	return dto.OperadorResponse{
		OperadorID: o.OperadorID,
		Nombre:     o.Nombre,
		Codigo:     o.Codigo,
		Activo:     o.Activo,
	}
}

func turnoAResponse(t *model.TurnoLaboral) dto.TurnoLaboralResponse {
	return dto.TurnoLaboralResponse{
		TurnoID:    t.TurnoID,
		DiaSemana:  t.DiaSemana,
		HoraInicio: t.HoraInicio,
		HoraFin:    t.HoraFin,
	}
}
