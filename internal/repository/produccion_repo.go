package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// ProduccionRepository acceso al rollup diario de producción.
// La tabla es propiedad exclusiva del agregador: solo él escribe aquí.
type ProduccionRepository interface {
	// Upsert reemplaza por completo la fila de la clave (operador, máquina, fecha)
	Upsert(ctx context.Context, p *model.ProduccionDiaria) error
	GetPorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*model.ProduccionDiaria, error)
	// DeletePorClave elimina la fila cuando el libro quedó vacío para la clave
	// (ausencia, no fila en cero)
	DeletePorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) error
	// ListMesPorOperador filas del operador en el mes, para el resumen mensual
	ListMesPorOperador(ctx context.Context, operadorID string, mes, anio int) ([]model.ProduccionDiaria, error)
	// ListMes todas las filas del mes, para el compuesto de calidad
	ListMes(ctx context.Context, mes, anio int) ([]model.ProduccionDiaria, error)
	// ListMesPorMaquina filas de la máquina en el mes, para exportación
	ListMesPorMaquina(ctx context.Context, maquinaID string, mes, anio int) ([]model.ProduccionDiaria, error)
}

type produccionRepo struct {
	db *gorm.DB
}

func NewProduccionRepo(db *gorm.DB) ProduccionRepository {
	return &produccionRepo{db: db}
}

func (r *produccionRepo) Upsert(ctx context.Context, p *model.ProduccionDiaria) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "operador_id"},
				{Name: "maquina_id"},
				{Name: "fecha"},
			},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *produccionRepo) GetPorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) (*model.ProduccionDiaria, error) {
	var p model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("operador_id = ? AND maquina_id = ? AND fecha = ?", operadorID, maquinaID, fecha).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produccionRepo) DeletePorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) error {
	return r.db.WithContext(ctx).
		Where("operador_id = ? AND maquina_id = ? AND fecha = ?", operadorID, maquinaID, fecha).
		Delete(&model.ProduccionDiaria{}).Error
}

func (r *produccionRepo) ListMesPorOperador(ctx context.Context, operadorID string, mes, anio int) ([]model.ProduccionDiaria, error) {
	inicio, fin := rangoMes(mes, anio)
	var filas []model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("operador_id = ? AND fecha >= ? AND fecha < ?", operadorID, inicio, fin).
		Order("fecha").
		Find(&filas).Error
	return filas, err
}

func (r *produccionRepo) ListMes(ctx context.Context, mes, anio int) ([]model.ProduccionDiaria, error) {
	inicio, fin := rangoMes(mes, anio)
	var filas []model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha < ?", inicio, fin).
		Order("maquina_id, fecha").
		Find(&filas).Error
	return filas, err
}

func (r *produccionRepo) ListMesPorMaquina(ctx context.Context, maquinaID string, mes, anio int) ([]model.ProduccionDiaria, error) {
	inicio, fin := rangoMes(mes, anio)
	var filas []model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("maquina_id = ? AND fecha >= ? AND fecha < ?", maquinaID, inicio, fin).
		Order("fecha").
		Find(&filas).Error
	return filas, err
}

// rangoMes [primer día del mes, primer día del mes siguiente)
func rangoMes(mes, anio int) (time.Time, time.Time) {
	inicio := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	return inicio, inicio.AddDate(0, 1, 0)
}
