package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

// ── Errores del resumen mensual ──

var (
	ErrSinProduccionMensual = errors.New("el operador no tiene producción en el período")
	ErrRendimientoNoExiste  = errors.New("no existe resumen mensual para esa clave")
)

// RendimientoService calificador mensual de operadores.
// Deriva el resumen exclusivamente de produccion_diaria, nunca del libro de
// actividades: el rollup diario es la única fuente. El promedio es en dos
// niveles: primero por máquina sobre sus días, luego promedio simple de los
// promedios por máquina, sin ponderar por tiros.
type RendimientoService interface {
	RecalcularMes(ctx context.Context, operadorID string, mes, anio int) (*dto.RendimientoResponse, error)
	// RecalcularTodos recalcula todos los operadores activos; cada operador se
	// aísla y el lote reporta éxito o error por unidad
	RecalcularTodos(ctx context.Context, mes, anio int) (*dto.RecalculoLoteResponse, error)
	Obtener(ctx context.Context, operadorID string, mes, anio int) (*dto.RendimientoResponse, error)
}

type rendimientoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRendimientoService crea el calificador mensual
func NewRendimientoService(repo *repository.Repository, logger *zap.Logger) RendimientoService {
	return &rendimientoService{repo: repo, logger: logger}
}

func (s *rendimientoService) RecalcularMes(ctx context.Context, operadorID string, mes, anio int) (*dto.RendimientoResponse, error) {
	operador, err := s.repo.Operador.GetByID(ctx, operadorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperadorNoEncontrado
		}
		s.logger.Error("error consultando operador", zap.Error(err))
		return nil, err
	}

	filas, err := s.repo.Produccion.ListMesPorOperador(ctx, operadorID, mes, anio)
	if err != nil {
		s.logger.Error("error consultando producción mensual", zap.Error(err))
		return nil, err
	}
	if len(filas) == 0 {
		return nil, ErrSinProduccionMensual
	}

	resumen := resumirMes(filas, operadorID, mes, anio)
	if err := s.repo.Rendimiento.Upsert(ctx, resumen); err != nil {
		s.logger.Error("error guardando resumen mensual",
			zap.String("operador_id", operadorID),
			zap.Int("mes", mes), zap.Int("anio", anio),
			zap.Error(err),
		)
		return nil, err
	}

	resp := rendimientoAResponse(resumen)
	resp.Operador = operador.Nombre
	return &resp, nil
}

func (s *rendimientoService) RecalcularTodos(ctx context.Context, mes, anio int) (*dto.RecalculoLoteResponse, error) {
	operadores, err := s.repo.Operador.ListActivos(ctx)
	if err != nil {
		s.logger.Error("error listando operadores", zap.Error(err))
		return nil, err
	}

	lote := &dto.RecalculoLoteResponse{
		Total:      len(operadores),
		Resultados: make([]dto.ResultadoRecalculoResponse, 0, len(operadores)),
	}
	for _, op := range operadores {
		resultado := dto.ResultadoRecalculoResponse{OperadorID: op.OperadorID}

		_, err := s.RecalcularMes(ctx, op.OperadorID, mes, anio)
		switch {
		case err == nil:
			resultado.Exito = true
			lote.Exitosos++
		case errors.Is(err, ErrSinProduccionMensual):
			// Operador sin producción en el mes: no es un fallo del lote
			resultado.Exito = true
			lote.Exitosos++
		default:
			resultado.Error = err.Error()
			lote.Fallidos++
		}
		lote.Resultados = append(lote.Resultados, resultado)
	}

	return lote, nil
}

func (s *rendimientoService) Obtener(ctx context.Context, operadorID string, mes, anio int) (*dto.RendimientoResponse, error) {
	resumen, err := s.repo.Rendimiento.GetPorClave(ctx, operadorID, mes, anio)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRendimientoNoExiste
		}
		s.logger.Error("error consultando resumen mensual", zap.Error(err))
		return nil, err
	}
	resp := rendimientoAResponse(resumen)
	if resumen.Operador != nil {
		resp.Operador = resumen.Operador.Nombre
	}
	return &resp, nil
}

// resumirMes agrega las filas diarias del operador en el resumen mensual
func resumirMes(filas []model.ProduccionDiaria, operadorID string, mes, anio int) *model.RendimientoMensualOperador {
	type acumuladoMaquina struct {
		suma float64
		dias int
	}
	porMaquina := make(map[string]*acumuladoMaquina)
	diasDistintos := make(map[string]struct{})
	totalTiros := 0

	for i := range filas {
		f := &filas[i]
		acc, ok := porMaquina[f.MaquinaID]
		if !ok {
			acc = &acumuladoMaquina{}
			porMaquina[f.MaquinaID] = acc
		}
		acc.suma += f.RendimientoFinal
		acc.dias++

		diasDistintos[f.Fecha.Format("2006-01-02")] = struct{}{}
		totalTiros += f.TotalTiros
	}

	// Promedio simple de los promedios por máquina: cada máquina pesa igual
	// sin importar cuántos días o tiros aportó
	sumaPromedios := 0.0
	for _, acc := range porMaquina {
		sumaPromedios += acc.suma / float64(acc.dias)
	}
	promedio := 0.0
	if len(porMaquina) > 0 {
		promedio = redondear2(sumaPromedios / float64(len(porMaquina)))
	}

	return &model.RendimientoMensualOperador{
		OperadorID:          operadorID,
		Mes:                 mes,
		Anio:                anio,
		RendimientoPromedio: promedio,
		TotalTiros:          totalTiros,
		MaquinasTrabajadas:  len(porMaquina),
		DiasLaborados:       len(diasDistintos),
	}
}

func rendimientoAResponse(r *model.RendimientoMensualOperador) dto.RendimientoResponse {
	return dto.RendimientoResponse{
		OperadorID:          r.OperadorID,
		Mes:                 r.Mes,
		Anio:                r.Anio,
		RendimientoPromedio: r.RendimientoPromedio,
		TotalTiros:          r.TotalTiros,
		MaquinasTrabajadas:  r.MaquinasTrabajadas,
		DiasLaborados:       r.DiasLaborados,
	}
}
