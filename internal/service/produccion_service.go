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

// ── Errores del rollup de producción ──

var (
	// ErrSinActividad distingue "no hay actividad registrada" de "actividad
	// con rendimiento cero"; la clave sin registros no produce fila.
	ErrSinActividad       = errors.New("no hay actividad registrada para esa clave")
	ErrProduccionNoExiste = errors.New("no existe producción diaria para esa clave")
)

// ProduccionService agregador del rollup diario.
// Dado el conjunto completo de registros de una clave (operador, máquina,
// fecha) produce exactamente una fila de producción diaria, determinista e
// idempotente: recalcular con el mismo libro da siempre el mismo resultado,
// sin acumulación oculta entre corridas. Claves distintas no se coordinan;
// dos recálculos concurrentes de la misma clave convergen porque ambos leen
// el conjunto completo y escriben un solo upsert de reemplazo total.
type ProduccionService interface {
	Recalcular(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*dto.ProduccionResponse, error)
	Obtener(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*dto.ProduccionResponse, error)
	// RecalcularRango recalcula día por día en [desde, hasta]; cada día se
	// aísla: un fallo no aborta el lote ni se reporta como éxito
	RecalcularRango(ctx context.Context, operadorID, maquinaID string, desde, hasta time.Time) (*dto.RecalculoRangoResponse, error)
}

type produccionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProduccionService crea el agregador de producción diaria
func NewProduccionService(repo *repository.Repository, logger *zap.Logger) ProduccionService {
	return &produccionService{repo: repo, logger: logger}
}

func (s *produccionService) Recalcular(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*dto.ProduccionResponse, error) {
	maquina, err := s.repo.Maquina.GetByID(ctx, maquinaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaquinaNoEncontrada
		}
		s.logger.Error("error consultando máquina", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Operador.GetByID(ctx, operadorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperadorNoEncontrado
		}
		s.logger.Error("error consultando operador", zap.Error(err))
		return nil, err
	}

	registros, err := s.repo.Registro.ListPorClave(ctx, operadorID, maquinaID, fecha)
	if err != nil {
		s.logger.Error("error consultando libro de actividades", zap.Error(err))
		return nil, err
	}

	// Libro vacío ⇒ ausencia, no fila en cero
	if len(registros) == 0 {
		if err := s.repo.Produccion.DeletePorClave(ctx, operadorID, maquinaID, fecha); err != nil {
			s.logger.Error("error eliminando producción huérfana", zap.Error(err))
			return nil, err
		}
		return nil, ErrSinActividad
	}

	fila := s.agregar(registros, maquina, operadorID, fecha)

	if err := s.repo.Produccion.Upsert(ctx, fila); err != nil {
		s.logger.Error("error guardando producción diaria",
			zap.String("operador_id", operadorID),
			zap.String("maquina_id", maquinaID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := produccionAResponse(fila)
	return &resp, nil
}

func (s *produccionService) Obtener(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*dto.ProduccionResponse, error) {
	fila, err := s.repo.Produccion.GetPorClave(ctx, operadorID, maquinaID, fecha)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProduccionNoExiste
		}
		s.logger.Error("error consultando producción diaria", zap.Error(err))
		return nil, err
	}
	resp := produccionAResponse(fila)
	return &resp, nil
}

func (s *produccionService) RecalcularRango(ctx context.Context, operadorID, maquinaID string, desde, hasta time.Time) (*dto.RecalculoRangoResponse, error) {
	resp := &dto.RecalculoRangoResponse{Resultados: []dto.ResultadoDiaResponse{}}

	for dia := desde; !dia.After(hasta); dia = dia.AddDate(0, 0, 1) {
		resultado := dto.ResultadoDiaResponse{Fecha: dia.Format("2006-01-02")}

		fila, err := s.Recalcular(ctx, operadorID, maquinaID, dia)
		switch {
		case err == nil:
			resultado.Exito = true
			resultado.Produccion = fila
			resp.Exitosos++
		case errors.Is(err, ErrSinActividad):
			// Día sin registros: la clave no produce fila; no es un fallo
			resultado.Exito = true
			resultado.SinActividad = true
			resp.Exitosos++
		default:
			resultado.Error = err.Error()
			resp.Fallidos++
		}
		resp.Resultados = append(resp.Resultados, resultado)
	}

	return resp, nil
}

// ── Agregación ──

// totalesPeriodo resultado intermedio de una pasada de agregación
type totalesPeriodo struct {
	minutos      map[string]float64 // categoría → minutos
	tiros        int
	desperdicio  decimal.Decimal
	rendimiento  float64
	valor        decimal.Decimal
	metaFaltante bool
}

// agregar construye la fila de producción para la clave. El subtotal
// bonificable es la misma pasada restringida a registros dentro del horario
// laboral; por construcción nunca supera el total del período.
func (s *produccionService) agregar(registros []model.RegistroActividad, maquina *model.Maquina, operadorID string, fecha time.Time) *model.ProduccionDiaria {
	const diasLaborados = 1 // rollup de un solo día calendario

	total := sumarPeriodo(registros, maquina, diasLaborados, false)
	bonificable := sumarPeriodo(registros, maquina, diasLaborados, true)

	fila := &model.ProduccionDiaria{
		OperadorID:       operadorID,
		MaquinaID:        maquina.MaquinaID,
		Fecha:            fecha,
		TotalTiros:       total.tiros,
		TotalDesperdicio: total.desperdicio,

		HorasProductivas:      horas(total.minutos[model.CategoriaProductiva]),
		HorasMontaje:          horas(total.minutos[model.CategoriaMontaje]),
		HorasMantenimiento:    horas(total.minutos[model.CategoriaMantenimiento]),
		HorasDescanso:         horas(total.minutos[model.CategoriaDescanso]),
		HorasFaltaTrabajo:     horas(total.minutos[model.CategoriaFaltaTrabajo]),
		HorasReparacion:       horas(total.minutos[model.CategoriaReparacion]),
		HorasOtroTiempoMuerto: horas(total.minutos[model.CategoriaOtroTiempoMuerto]),

		DiasLaborados:    diasLaborados,
		RendimientoFinal: total.rendimiento,
		ValorAPagar:      total.valor,
		MetaFaltante:     total.metaFaltante,

		TirosBonificables:      bonificable.tiros,
		DesperdicioBonificable: bonificable.desperdicio,
		RendimientoBonificable: bonificable.rendimiento,
		ValorBonificable:       bonificable.valor,
	}

	// Horas operativas: máquina atendida (producción + montaje).
	// El total es la suma de los baldes ya redondeados, de modo que la
	// invariante Σ baldes == TotalHoras se cumple exacta a 2 decimales.
	fila.HorasOperativas = redondear2(fila.HorasProductivas + fila.HorasMontaje)
	fila.TotalHoras = redondear2(fila.HorasProductivas + fila.HorasMontaje +
		fila.HorasMantenimiento + fila.HorasDescanso + fila.HorasFaltaTrabajo +
		fila.HorasReparacion + fila.HorasOtroTiempoMuerto)

	return fila
}

// sumarPeriodo una pasada de los registros: baldes de tiempo, tiros,
// desperdicio y las fórmulas de rendimiento y pago.
// soloHorarioLaboral=true produce el subtotal bonificable.
func sumarPeriodo(registros []model.RegistroActividad, maquina *model.Maquina, diasLaborados int, soloHorarioLaboral bool) totalesPeriodo {
	t := totalesPeriodo{
		minutos:     make(map[string]float64),
		desperdicio: decimal.Zero,
	}

	for i := range registros {
		r := &registros[i]
		if soloHorarioLaboral && !r.EsHorarioLaboral {
			continue
		}

		categoria := model.CategoriaOtroTiempoMuerto
		if r.CodigoActividad != nil {
			categoria = r.CodigoActividad.Categoria
		}
		t.minutos[categoria] += r.DuracionMinutos

		// Se suma lo registrado sin asumir que solo la categoría productiva
		// aporta tiros; esa es una convención de captura, no del agregador.
		t.tiros += r.Tiros
		t.desperdicio = t.desperdicio.Add(r.Desperdicio)
	}

	// Rendimiento: tiros / (meta100 × días) × 100.
	// Meta ausente o no positiva degrada a 0 con bandera, nunca divide:
	// una máquina mal configurada no puede bloquear la agregación.
	meta := maquina.Meta100Porciento
	if meta <= 0 {
		t.metaFaltante = true
		t.rendimiento = 0
	} else {
		t.rendimiento = redondear2(float64(t.tiros) / float64(meta*diasLaborados) * 100)
	}

	t.valor = decimal.NewFromInt(int64(t.tiros)).Mul(maquina.ValorPorTiro).Round(2)
	return t
}

// horas minutos → horas con 2 decimales
func horas(minutos float64) float64 {
	return redondear2(minutos / 60)
}

func produccionAResponse(p *model.ProduccionDiaria) dto.ProduccionResponse {
	return dto.ProduccionResponse{
		OperadorID: p.OperadorID,
		MaquinaID:  p.MaquinaID,
		Fecha:      p.Fecha.Format("2006-01-02"),

		TotalTiros:       p.TotalTiros,
		TotalDesperdicio: p.TotalDesperdicio.StringFixed(2),

		HorasProductivas:      p.HorasProductivas,
		HorasMontaje:          p.HorasMontaje,
		HorasMantenimiento:    p.HorasMantenimiento,
		HorasDescanso:         p.HorasDescanso,
		HorasFaltaTrabajo:     p.HorasFaltaTrabajo,
		HorasReparacion:       p.HorasReparacion,
		HorasOtroTiempoMuerto: p.HorasOtroTiempoMuerto,
		HorasOperativas:       p.HorasOperativas,
		TotalHoras:            p.TotalHoras,

		DiasLaborados:    p.DiasLaborados,
		RendimientoFinal: p.RendimientoFinal,
		ValorAPagar:      p.ValorAPagar.StringFixed(2),
		MetaFaltante:     p.MetaFaltante,

		TirosBonificables:      p.TirosBonificables,
		DesperdicioBonificable: p.DesperdicioBonificable.StringFixed(2),
		RendimientoBonificable: p.RendimientoBonificable,
		ValorBonificable:       p.ValorBonificable.StringFixed(2),
	}
}
