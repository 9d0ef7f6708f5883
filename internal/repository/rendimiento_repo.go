package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// RendimientoRepository acceso al resumen mensual por operador.
// Tabla propiedad exclusiva del calificador mensual.
type RendimientoRepository interface {
	Upsert(ctx context.Context, r *model.RendimientoMensualOperador) error
	GetPorClave(ctx context.Context, operadorID string, mes, anio int) (*model.RendimientoMensualOperador, error)
}

type rendimientoRepo struct {
	db *gorm.DB
}

func NewRendimientoRepo(db *gorm.DB) RendimientoRepository {
	return &rendimientoRepo{db: db}
}

func (r *rendimientoRepo) Upsert(ctx context.Context, rendimiento *model.RendimientoMensualOperador) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "operador_id"},
				{Name: "mes"},
				{Name: "anio"},
			},
			UpdateAll: true,
		}).
		Create(rendimiento).Error
}

func (r *rendimientoRepo) GetPorClave(ctx context.Context, operadorID string, mes, anio int) (*model.RendimientoMensualOperador, error) {
	var rendimiento model.RendimientoMensualOperador
	err := r.db.WithContext(ctx).
		Preload("Operador").
		Where("operador_id = ? AND mes = ? AND anio = ?", operadorID, mes, anio).
		First(&rendimiento).Error
	if err != nil {
		return nil, err
	}
	return &rendimiento, nil
}
