package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

// ── Errores de exportación ──

var (
	ErrExportSinDatos = errors.New("no hay datos que exportar en el período")
	ErrExportFallo    = errors.New("fallo al generar el archivo Excel")
)

// ExportarService exportación de datos a Excel (.xlsx).
// Devuelve bytes.Buffer más el nombre de archivo sugerido; el handler fija las
// cabeceras HTTP y escribe el cuerpo.
type ExportarService interface {
	// ExportarProduccion producción diaria de una máquina en un mes
	ExportarProduccion(ctx context.Context, maquinaID string, mes, anio int) (*bytes.Buffer, string, error)
	// ExportarDesperdicios registros de desperdicio de una máquina en un mes
	ExportarDesperdicios(ctx context.Context, maquinaID string, mes, anio int) (*bytes.Buffer, string, error)
}

type exportarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportarService crea el servicio de exportación
func NewExportarService(repo *repository.Repository, logger *zap.Logger) ExportarService {
	return &exportarService{repo: repo, logger: logger}
}

func (s *exportarService) ExportarProduccion(ctx context.Context, maquinaID string, mes, anio int) (*bytes.Buffer, string, error) {
	maquina, err := s.repo.Maquina.GetByID(ctx, maquinaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMaquinaNoEncontrada
		}
		s.logger.Error("error consultando máquina", zap.Error(err))
		return nil, "", err
	}

	filas, err := s.repo.Produccion.ListMesPorMaquina(ctx, maquinaID, mes, anio)
	if err != nil {
		s.logger.Error("error consultando producción del mes", zap.Error(err))
		return nil, "", err
	}
	if len(filas) == 0 {
		return nil, "", ErrExportSinDatos
	}

	nombres, err := s.nombresOperadores(ctx, filas)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	hoja := "Producción"
	idx, _ := f.NewSheet(hoja)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(hoja, "A", "A", 12)
	f.SetColWidth(hoja, "B", "B", 24)
	f.SetColWidth(hoja, "C", "L", 14)

	estiloTitulo, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(hoja, "A1", fmt.Sprintf("%s — producción %02d/%d", maquina.Nombre, mes, anio))
	f.MergeCell(hoja, "A1", "L1")
	f.SetCellStyle(hoja, "A1", "A1", estiloTitulo)

	encabezados := []string{
		"Fecha", "Operador", "Tiros", "Desperdicio",
		"H. productivas", "H. montaje", "H. operativas", "Total horas",
		"Rendimiento %", "Valor a pagar", "Rend. bonificable", "Valor bonificable",
	}
	for i, h := range encabezados {
		f.SetCellValue(hoja, celda(columna(i), 2), h)
	}

	fila := 3
	for i := range filas {
		p := &filas[i]
		valores := []interface{}{
			p.Fecha.Format("2006-01-02"),
			nombres[p.OperadorID],
			p.TotalTiros,
			p.TotalDesperdicio.StringFixed(2),
			p.HorasProductivas,
			p.HorasMontaje,
			p.HorasOperativas,
			p.TotalHoras,
			p.RendimientoFinal,
			p.ValorAPagar.StringFixed(2),
			p.RendimientoBonificable,
			p.ValorBonificable.StringFixed(2),
		}
		for j, v := range valores {
			f.SetCellValue(hoja, celda(columna(j), fila), v)
		}
		fila++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("error escribiendo Excel", zap.Error(err))
		return nil, "", ErrExportFallo
	}

	nombre := fmt.Sprintf("produccion_%s_%02d-%d.xlsx", maquina.Nombre, mes, anio)
	return buf, nombre, nil
}

func (s *exportarService) ExportarDesperdicios(ctx context.Context, maquinaID string, mes, anio int) (*bytes.Buffer, string, error) {
	maquina, err := s.repo.Maquina.GetByID(ctx, maquinaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMaquinaNoEncontrada
		}
		s.logger.Error("error consultando máquina", zap.Error(err))
		return nil, "", err
	}

	registros, err := s.repo.Desperdicio.ListMes(ctx, maquinaID, mes, anio)
	if err != nil {
		s.logger.Error("error consultando desperdicio del mes", zap.Error(err))
		return nil, "", err
	}
	if len(registros) == 0 {
		return nil, "", ErrExportSinDatos
	}

	sort.SliceStable(registros, func(i, j int) bool {
		return registros[i].Fecha.Before(registros[j].Fecha)
	})

	f := excelize.NewFile()
	defer f.Close()

	hoja := "Desperdicio"
	idx, _ := f.NewSheet(hoja)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(hoja, "A", "A", 12)
	f.SetColWidth(hoja, "B", "C", 22)
	f.SetColWidth(hoja, "D", "E", 16)

	estiloTitulo, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(hoja, "A1", fmt.Sprintf("%s — desperdicio %02d/%d", maquina.Nombre, mes, anio))
	f.MergeCell(hoja, "A1", "E1")
	f.SetCellStyle(hoja, "A1", "A1", estiloTitulo)

	encabezados := []string{"Fecha", "Código", "Observación", "Cantidad", "Operador"}
	for i, h := range encabezados {
		f.SetCellValue(hoja, celda(columna(i), 2), h)
	}

	fila := 3
	for i := range registros {
		r := &registros[i]
		codigo := "sin clasificar"
		if r.Codigo != nil {
			codigo = r.Codigo.Nombre
		}
		observacion := ""
		if r.Observacion != nil {
			observacion = *r.Observacion
		}
		valores := []interface{}{
			r.Fecha.Format("2006-01-02"),
			codigo,
			observacion,
			r.Cantidad.StringFixed(2),
			r.OperadorID,
		}
		for j, v := range valores {
			f.SetCellValue(hoja, celda(columna(j), fila), v)
		}
		fila++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("error escribiendo Excel", zap.Error(err))
		return nil, "", ErrExportFallo
	}

	nombre := fmt.Sprintf("desperdicio_%s_%02d-%d.xlsx", maquina.Nombre, mes, anio)
	return buf, nombre, nil
}

// nombresOperadores resuelve los nombres de los operadores referidos por las
// filas, consultando cada uno una sola vez
func (s *exportarService) nombresOperadores(ctx context.Context, filas []model.ProduccionDiaria) (map[string]string, error) {
	nombres := make(map[string]string)
	for i := range filas {
		id := filas[i].OperadorID
		if _, ok := nombres[id]; ok {
			continue
		}
		op, err := s.repo.Operador.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				nombres[id] = id
				continue
			}
			s.logger.Error("error consultando operador", zap.Error(err))
			return nil, err
		}
		nombres[id] = op.Nombre
	}
	return nombres, nil
}

// ── Auxiliares de celdas ──

func columna(idx int) string {
	nombre, _ := excelize.ColumnNumberToName(idx + 1)
	return nombre
}

func celda(col string, fila int) string {
	return fmt.Sprintf("%s%d", col, fila)
}
