package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

func setupTestRendimientoService(t *testing.T) (*mocks, RendimientoService) {
	t.Helper()
	m := newMocks()
	return m, NewRendimientoService(m.repo, zap.NewNop())
}

// sembrarProduccion inserta una fila de producción diaria directamente
func (m *mocks) sembrarProduccion(operadorID, maquinaID string, fecha time.Time, rendimiento float64, tiros int) {
	fila := &model.ProduccionDiaria{
		ProduccionID:     "prod-" + claveProduccion(operadorID, maquinaID, fecha),
		OperadorID:       operadorID,
		MaquinaID:        maquinaID,
		Fecha:            fecha,
		RendimientoFinal: rendimiento,
		TotalTiros:       tiros,
	}
	m.produccion.filas[claveProduccion(operadorID, maquinaID, fecha)] = fila
}

func TestRecalcularRendimientoPromedioDosNiveles(t *testing.T) {
	m, svc := setupTestRendimientoService(t)
	ctx := context.Background()

	m.sembrarOperador("op-1", "OP01")

	// Máquina A: dos días (100 y 50 → promedio 75); máquina B: un día (90).
	// El promedio mensual es el promedio simple de 75 y 90 = 82.5, sin
	// ponderar por días ni por tiros.
	dia := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC) }
	m.sembrarProduccion("op-1", "maq-a", dia(1), 100, 1000)
	m.sembrarProduccion("op-1", "maq-a", dia(2), 50, 500)
	m.sembrarProduccion("op-1", "maq-b", dia(2), 90, 450)

	resp, err := svc.RecalcularMes(ctx, "op-1", 4, 2025)
	if err != nil {
		t.Fatalf("RecalcularMes falló: %v", err)
	}

	if resp.RendimientoPromedio != 82.5 {
		t.Errorf("RendimientoPromedio = %v, se esperaba 82.5", resp.RendimientoPromedio)
	}
	if resp.TotalTiros != 1950 {
		t.Errorf("TotalTiros = %d, se esperaba 1950", resp.TotalTiros)
	}
	if resp.MaquinasTrabajadas != 2 {
		t.Errorf("MaquinasTrabajadas = %d, se esperaban 2", resp.MaquinasTrabajadas)
	}
	// Días 1 y 2: las dos máquinas del día 2 cuentan un solo día
	if resp.DiasLaborados != 2 {
		t.Errorf("DiasLaborados = %d, se esperaban 2", resp.DiasLaborados)
	}
	if resp.Operador != "Operador op-1" {
		t.Errorf("Operador = %q, se esperaba el nombre del catálogo", resp.Operador)
	}
}

func TestRecalcularRendimientoSinProduccion(t *testing.T) {
	m, svc := setupTestRendimientoService(t)
	m.sembrarOperador("op-1", "OP01")

	_, err := svc.RecalcularMes(context.Background(), "op-1", 4, 2025)
	if !errors.Is(err, ErrSinProduccionMensual) {
		t.Fatalf("error = %v, se esperaba ErrSinProduccionMensual", err)
	}
	if len(m.rendimiento.filas) != 0 {
		t.Error("no debía guardarse resumen sin producción en el mes")
	}
}

func TestRecalcularRendimientoOperadorNoEncontrado(t *testing.T) {
	_, svc := setupTestRendimientoService(t)

	_, err := svc.RecalcularMes(context.Background(), "op-x", 4, 2025)
	if !errors.Is(err, ErrOperadorNoEncontrado) {
		t.Fatalf("error = %v, se esperaba ErrOperadorNoEncontrado", err)
	}
}

func TestRecalcularTodosAislaFallos(t *testing.T) {
	m, svc := setupTestRendimientoService(t)
	ctx := context.Background()

	m.sembrarOperador("op-1", "OP01")
	m.sembrarOperador("op-2", "OP02")
	m.sembrarOperador("op-3", "OP03")

	dia := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	m.sembrarProduccion("op-1", "maq-a", dia, 110, 1100)
	m.sembrarProduccion("op-2", "maq-a", dia, 95, 950)
	// op-2 falla al leer su producción; op-3 no tiene producción (no es fallo)
	m.produccion.failPorOperador["op-2"] = errors.New("fallo de almacenamiento")

	lote, err := svc.RecalcularTodos(ctx, 4, 2025)
	if err != nil {
		t.Fatalf("RecalcularTodos falló: %v", err)
	}

	if lote.Total != 3 {
		t.Fatalf("Total = %d, se esperaban 3 operadores", lote.Total)
	}
	if lote.Exitosos != 2 || lote.Fallidos != 1 {
		t.Errorf("Exitosos = %d, Fallidos = %d, se esperaban 2 y 1", lote.Exitosos, lote.Fallidos)
	}
	for _, r := range lote.Resultados {
		if r.OperadorID == "op-2" {
			if r.Exito || r.Error == "" {
				t.Error("el fallo de op-2 no puede reportarse como éxito")
			}
		} else if !r.Exito {
			t.Errorf("operador %s debía reportar éxito", r.OperadorID)
		}
	}

	// El fallo de una unidad no impide que el resto persista
	if _, err := m.rendimiento.GetPorClave(ctx, "op-1", 4, 2025); err != nil {
		t.Errorf("el resumen de op-1 debía persistirse: %v", err)
	}
}

func TestObtenerRendimientoNoExiste(t *testing.T) {
	_, svc := setupTestRendimientoService(t)

	_, err := svc.Obtener(context.Background(), "op-1", 4, 2025)
	if !errors.Is(err, ErrRendimientoNoExiste) {
		t.Fatalf("error = %v, se esperaba ErrRendimientoNoExiste", err)
	}
}

func TestRecalcularRendimientoReemplazaResumen(t *testing.T) {
	m, svc := setupTestRendimientoService(t)
	ctx := context.Background()

	m.sembrarOperador("op-1", "OP01")
	dia := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	m.sembrarProduccion("op-1", "maq-a", dia, 80, 800)

	if _, err := svc.RecalcularMes(ctx, "op-1", 4, 2025); err != nil {
		t.Fatalf("primer RecalcularMes falló: %v", err)
	}

	// Llega un día más al rollup y el recálculo reemplaza el resumen
	m.sembrarProduccion("op-1", "maq-a", dia.AddDate(0, 0, 1), 120, 1200)
	resp, err := svc.RecalcularMes(ctx, "op-1", 4, 2025)
	if err != nil {
		t.Fatalf("segundo RecalcularMes falló: %v", err)
	}

	if resp.RendimientoPromedio != 100 {
		t.Errorf("RendimientoPromedio = %v, se esperaba 100", resp.RendimientoPromedio)
	}
	if resp.DiasLaborados != 2 {
		t.Errorf("DiasLaborados = %d, se esperaban 2", resp.DiasLaborados)
	}

	guardado, err := m.rendimiento.GetPorClave(ctx, "op-1", 4, 2025)
	if err != nil {
		t.Fatalf("el resumen debía existir: %v", err)
	}
	if guardado.TotalTiros != 2000 {
		t.Errorf("TotalTiros guardado = %d, se esperaban 2000", guardado.TotalTiros)
	}
}
