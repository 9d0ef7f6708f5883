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

var ErrCalidadNoExiste = errors.New("no existe calidad mensual para ese período")

// CalidadService compositor del puntaje mensual de planta.
// Por cada máquina activa promedia el rendimiento diario del mes a través de
// todos los operadores; la contribución es rendimiento × importancia/100 y el
// compuesto es la suma directa de contribuciones. Los pesos de importancia no
// se normalizan aunque no sumen 100.
type CalidadService interface {
	RecalcularMes(ctx context.Context, mes, anio int) (*dto.CalidadResponse, error)
	Obtener(ctx context.Context, mes, anio int) (*dto.CalidadResponse, error)
}

type calidadService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalidadService crea el compositor de calidad mensual
func NewCalidadService(repo *repository.Repository, logger *zap.Logger) CalidadService {
	return &calidadService{repo: repo, logger: logger}
}

func (s *calidadService) RecalcularMes(ctx context.Context, mes, anio int) (*dto.CalidadResponse, error) {
	maquinas, err := s.repo.Maquina.ListActivas(ctx)
	if err != nil {
		s.logger.Error("error listando máquinas", zap.Error(err))
		return nil, err
	}

	filas, err := s.repo.Produccion.ListMes(ctx, mes, anio)
	if err != nil {
		s.logger.Error("error consultando producción del mes", zap.Error(err))
		return nil, err
	}

	// Promedio mensual por máquina sobre todas sus filas (todos los operadores)
	type acumulado struct {
		suma float64
		n    int
	}
	porMaquina := make(map[string]*acumulado)
	for i := range filas {
		f := &filas[i]
		acc, ok := porMaquina[f.MaquinaID]
		if !ok {
			acc = &acumulado{}
			porMaquina[f.MaquinaID] = acc
		}
		acc.suma += f.RendimientoFinal
		acc.n++
	}

	calidad := &model.CalidadMensualMaquina{
		Mes:      mes,
		Anio:     anio,
		Detalles: make([]model.CalidadMaquinaDetalle, 0, len(maquinas)),
	}
	compuesto := 0.0
	for _, m := range maquinas {
		// Máquina sin producción en el mes queda en el desglose con 0
		rendimiento := 0.0
		if acc, ok := porMaquina[m.MaquinaID]; ok && acc.n > 0 {
			rendimiento = redondear2(acc.suma / float64(acc.n))
		}
		contribucion := redondear2(rendimiento * float64(m.Importancia) / 100)
		compuesto += contribucion

		calidad.Detalles = append(calidad.Detalles, model.CalidadMaquinaDetalle{
			MaquinaID:           m.MaquinaID,
			RendimientoPromedio: rendimiento,
			Importancia:         m.Importancia,
			Contribucion:        contribucion,
		})
	}
	calidad.PuntajeCompuesto = redondear2(compuesto)

	if err := s.repo.Calidad.Upsert(ctx, calidad); err != nil {
		s.logger.Error("error guardando calidad mensual",
			zap.Int("mes", mes), zap.Int("anio", anio),
			zap.Error(err),
		)
		return nil, err
	}

	resp := calidadAResponse(calidad, maquinas)
	return &resp, nil
}

func (s *calidadService) Obtener(ctx context.Context, mes, anio int) (*dto.CalidadResponse, error) {
	calidad, err := s.repo.Calidad.GetPorPeriodo(ctx, mes, anio)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalidadNoExiste
		}
		s.logger.Error("error consultando calidad mensual", zap.Error(err))
		return nil, err
	}
	resp := calidadAResponse(calidad, nil)
	return &resp, nil
}

func calidadAResponse(c *model.CalidadMensualMaquina, maquinas []model.Maquina) dto.CalidadResponse {
	nombres := make(map[string]string, len(maquinas))
	for _, m := range maquinas {
		nombres[m.MaquinaID] = m.Nombre
	}

	detalles := make([]dto.CalidadDetalleResponse, 0, len(c.Detalles))
	for i := range c.Detalles {
		d := &c.Detalles[i]
		nombre := nombres[d.MaquinaID]
		if nombre == "" && d.Maquina != nil {
			nombre = d.Maquina.Nombre
		}
		detalles = append(detalles, dto.CalidadDetalleResponse{
			MaquinaID:           d.MaquinaID,
			Maquina:             nombre,
			RendimientoPromedio: d.RendimientoPromedio,
			Importancia:         d.Importancia,
			Contribucion:        d.Contribucion,
		})
	}

	return dto.CalidadResponse{
		Mes:              c.Mes,
		Anio:             c.Anio,
		PuntajeCompuesto: c.PuntajeCompuesto,
		Detalles:         detalles,
	}
}
