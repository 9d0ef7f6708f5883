package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

var (
	ErrCodigoDesperdicioNoEncontrado = errors.New("código de desperdicio no encontrado o inactivo")
	ErrCantidadInvalida              = errors.New("la cantidad debe ser mayor que cero")
	ErrFechaInvalida                 = errors.New("fecha inválida, se espera AAAA-MM-DD")
)

// DesperdicioService libro independiente de desperdicio.
// Corre en paralelo al campo Desperdicio del libro de actividades y no se
// concilia con él; alimenta sus propios totales y reportes.
type DesperdicioService interface {
	Crear(ctx context.Context, req *dto.CrearDesperdicioRequest) (*dto.DesperdicioResponse, error)
	TotalDia(ctx context.Context, maquinaID string, fecha time.Time) (*dto.TotalDiaResponse, error)
	ReporteMensual(ctx context.Context, maquinaID string, mes, anio int) (*dto.ReporteMensualResponse, error)
}

type desperdicioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDesperdicioService crea el servicio del libro de desperdicio
func NewDesperdicioService(repo *repository.Repository, logger *zap.Logger) DesperdicioService {
	return &desperdicioService{repo: repo, logger: logger}
}

func (s *desperdicioService) Crear(ctx context.Context, req *dto.CrearDesperdicioRequest) (*dto.DesperdicioResponse, error) {
	cantidad := decimal.NewFromFloat(req.Cantidad)
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, ErrCantidadInvalida
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	maquina, err := s.repo.Maquina.GetByID(ctx, req.MaquinaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaquinaNoEncontrada
		}
		s.logger.Error("error consultando máquina", zap.Error(err))
		return nil, err
	}
	if !maquina.Activa {
		return nil, ErrMaquinaNoEncontrada
	}
	operador, err := s.repo.Operador.GetByID(ctx, req.OperadorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperadorNoEncontrado
		}
		s.logger.Error("error consultando operador", zap.Error(err))
		return nil, err
	}
	if !operador.Activo {
		return nil, ErrOperadorNoEncontrado
	}

	// El código es opcional: null registra desperdicio sin clasificar
	var nombreCodigo string
	if req.CodigoDesperdicioID != nil {
		codigo, err := s.repo.CodigoDesperdicio.GetByID(ctx, *req.CodigoDesperdicioID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCodigoDesperdicioNoEncontrado
			}
			s.logger.Error("error consultando código de desperdicio", zap.Error(err))
			return nil, err
		}
		if !codigo.Activo {
			return nil, ErrCodigoDesperdicioNoEncontrado
		}
		nombreCodigo = codigo.Nombre
	}

	registro := &model.RegistroDesperdicio{
		MaquinaID:           req.MaquinaID,
		OperadorID:          req.OperadorID,
		CodigoDesperdicioID: req.CodigoDesperdicioID,
		Fecha:               fecha,
		Cantidad:            cantidad.Round(2),
		Observacion:         req.Observacion,
	}
	if err := s.repo.Desperdicio.Create(ctx, registro); err != nil {
		s.logger.Error("error guardando registro de desperdicio", zap.Error(err))
		return nil, err
	}

	return &dto.DesperdicioResponse{
		DesperdicioID:       registro.DesperdicioID,
		MaquinaID:           registro.MaquinaID,
		OperadorID:          registro.OperadorID,
		CodigoDesperdicioID: registro.CodigoDesperdicioID,
		Codigo:              nombreCodigo,
		Fecha:               registro.Fecha.Format("2006-01-02"),
		Cantidad:            registro.Cantidad.StringFixed(2),
		Observacion:         registro.Observacion,
	}, nil
}

func (s *desperdicioService) TotalDia(ctx context.Context, maquinaID string, fecha time.Time) (*dto.TotalDiaResponse, error) {
	if _, err := s.repo.Maquina.GetByID(ctx, maquinaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaquinaNoEncontrada
		}
		return nil, err
	}

	total, err := s.repo.Desperdicio.TotalDia(ctx, maquinaID, fecha)
	if err != nil {
		s.logger.Error("error sumando desperdicio del día", zap.Error(err))
		return nil, err
	}
	return &dto.TotalDiaResponse{
		MaquinaID: maquinaID,
		Fecha:     fecha.Format("2006-01-02"),
		Total:     total.StringFixed(2),
	}, nil
}

func (s *desperdicioService) ReporteMensual(ctx context.Context, maquinaID string, mes, anio int) (*dto.ReporteMensualResponse, error) {
	if _, err := s.repo.Maquina.GetByID(ctx, maquinaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaquinaNoEncontrada
		}
		return nil, err
	}

	registros, err := s.repo.Desperdicio.ListMes(ctx, maquinaID, mes, anio)
	if err != nil {
		s.logger.Error("error consultando desperdicio del mes", zap.Error(err))
		return nil, err
	}

	porDia := make(map[int]float64)
	for i := range registros {
		dia := registros[i].Fecha.Day()
		cantidad, _ := registros[i].Cantidad.Float64()
		porDia[dia] = redondear2(porDia[dia] + cantidad)
	}

	return &dto.ReporteMensualResponse{
		MaquinaID: maquinaID,
		Mes:       mes,
		Anio:      anio,
		PorDia:    porDia,
	}, nil
}
