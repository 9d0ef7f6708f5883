package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

func setupTestExportarService(t *testing.T) (*mocks, ExportarService) {
	t.Helper()
	m := newMocks()
	m.sembrarMaquina("maq-1", 1000, "5", 50)
	m.sembrarOperador("op-1", "OP01")
	return m, NewExportarService(m.repo, zap.NewNop())
}

func TestExportarProduccion(t *testing.T) {
	m, svc := setupTestExportarService(t)

	dia := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	fila := &model.ProduccionDiaria{
		ProduccionID:     "prod-1",
		OperadorID:       "op-1",
		MaquinaID:        "maq-1",
		Fecha:            dia,
		TotalTiros:       1200,
		TotalDesperdicio: decimal.RequireFromString("5.00"),
		RendimientoFinal: 120,
		ValorAPagar:      decimal.RequireFromString("6000.00"),
	}
	m.produccion.filas[claveProduccion("op-1", "maq-1", dia)] = fila

	buf, nombre, err := svc.ExportarProduccion(context.Background(), "maq-1", 7, 2025)
	if err != nil {
		t.Fatalf("ExportarProduccion falló: %v", err)
	}
	if nombre != "produccion_Máquina maq-1_07-2025.xlsx" {
		t.Errorf("nombre = %q", nombre)
	}
	if buf.Len() == 0 {
		t.Fatal("el archivo exportado está vacío")
	}

	// El archivo debe reabrirse como xlsx válido con los datos en su sitio
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("el buffer no es un xlsx válido: %v", err)
	}
	defer f.Close()

	fecha, _ := f.GetCellValue("Producción", "A3")
	if fecha != "2025-07-01" {
		t.Errorf("A3 = %q, se esperaba la fecha de la fila", fecha)
	}
	operador, _ := f.GetCellValue("Producción", "B3")
	if operador != "Operador op-1" {
		t.Errorf("B3 = %q, se esperaba el nombre del operador", operador)
	}
	tiros, _ := f.GetCellValue("Producción", "C3")
	if tiros != "1200" {
		t.Errorf("C3 = %q, se esperaban 1200 tiros", tiros)
	}
}

func TestExportarProduccionSinDatos(t *testing.T) {
	_, svc := setupTestExportarService(t)

	_, _, err := svc.ExportarProduccion(context.Background(), "maq-1", 7, 2025)
	if !errors.Is(err, ErrExportSinDatos) {
		t.Fatalf("error = %v, se esperaba ErrExportSinDatos", err)
	}
}

func TestExportarDesperdicios(t *testing.T) {
	m, svc := setupTestExportarService(t)

	obs := "rollo dañado"
	m.desperdicio.registros = append(m.desperdicio.registros, model.RegistroDesperdicio{
		DesperdicioID: "desp-1",
		MaquinaID:     "maq-1",
		OperadorID:    "op-1",
		Fecha:         time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Cantidad:      decimal.RequireFromString("8.25"),
		Observacion:   &obs,
	})

	buf, nombre, err := svc.ExportarDesperdicios(context.Background(), "maq-1", 7, 2025)
	if err != nil {
		t.Fatalf("ExportarDesperdicios falló: %v", err)
	}
	if nombre != "desperdicio_Máquina maq-1_07-2025.xlsx" {
		t.Errorf("nombre = %q", nombre)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("el buffer no es un xlsx válido: %v", err)
	}
	defer f.Close()

	codigo, _ := f.GetCellValue("Desperdicio", "B3")
	if codigo != "sin clasificar" {
		t.Errorf("B3 = %q, se esperaba \"sin clasificar\"", codigo)
	}
	cantidad, _ := f.GetCellValue("Desperdicio", "D3")
	if cantidad != "8.25" {
		t.Errorf("D3 = %q, se esperaba \"8.25\"", cantidad)
	}
}

func TestExportarMaquinaNoEncontrada(t *testing.T) {
	_, svc := setupTestExportarService(t)

	if _, _, err := svc.ExportarProduccion(context.Background(), "maq-x", 7, 2025); !errors.Is(err, ErrMaquinaNoEncontrada) {
		t.Errorf("producción: error = %v", err)
	}
	if _, _, err := svc.ExportarDesperdicios(context.Background(), "maq-x", 7, 2025); !errors.Is(err, ErrMaquinaNoEncontrada) {
		t.Errorf("desperdicio: error = %v", err)
	}
}
