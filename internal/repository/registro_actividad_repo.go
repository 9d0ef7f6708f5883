package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// FiltroRegistros filtros de consulta del libro de actividades
type FiltroRegistros struct {
	OperadorID string
	MaquinaID  string
	Desde      *time.Time
	Hasta      *time.Time
	Offset     int
	Limit      int
}

// RegistroActividadRepository acceso al libro de actividades.
// El libro es append-only: no hay Update ni Delete; una corrección es un
// registro nuevo más el recálculo del rollup.
type RegistroActividadRepository interface {
	Create(ctx context.Context, registro *model.RegistroActividad) error
	// ListPorClave devuelve todos los registros de una clave de rollup
	ListPorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) ([]model.RegistroActividad, error)
	List(ctx context.Context, filtro FiltroRegistros) ([]model.RegistroActividad, int64, error)
}

type registroActividadRepo struct {
	db *gorm.DB
}

func NewRegistroActividadRepo(db *gorm.DB) RegistroActividadRepository {
	return &registroActividadRepo{db: db}
}

func (r *registroActividadRepo) Create(ctx context.Context, registro *model.RegistroActividad) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

func (r *registroActividadRepo) ListPorClave(ctx context.Context, operadorID, maquinaID string, fecha time.Time) ([]model.RegistroActividad, error) {
	var registros []model.RegistroActividad
	err := r.db.WithContext(ctx).
		Preload("CodigoActividad").
		Where("operador_id = ? AND maquina_id = ? AND fecha = ?", operadorID, maquinaID, fecha).
		Order("hora_inicio").
		Find(&registros).Error
	return registros, err
}

func (r *registroActividadRepo) List(ctx context.Context, filtro FiltroRegistros) ([]model.RegistroActividad, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.RegistroActividad{})

	if filtro.OperadorID != "" {
		q = q.Where("operador_id = ?", filtro.OperadorID)
	}
	if filtro.MaquinaID != "" {
		q = q.Where("maquina_id = ?", filtro.MaquinaID)
	}
	if filtro.Desde != nil {
		q = q.Where("fecha >= ?", *filtro.Desde)
	}
	if filtro.Hasta != nil {
		q = q.Where("fecha <= ?", *filtro.Hasta)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registros []model.RegistroActividad
	err := q.
		Preload("Operador").
		Preload("Maquina").
		Preload("CodigoActividad").
		Order("fecha DESC, hora_inicio DESC").
		Offset(filtro.Offset).
		Limit(filtro.Limit).
		Find(&registros).Error
	if err != nil {
		return nil, 0, err
	}

	return registros, total, nil
}
