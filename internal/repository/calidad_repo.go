package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// CalidadRepository acceso al puntaje compuesto mensual de planta.
// Tabla propiedad exclusiva del compositor de calidad.
type CalidadRepository interface {
	// Upsert reemplaza la fila del período y su desglose completo en una
	// sola transacción
	Upsert(ctx context.Context, calidad *model.CalidadMensualMaquina) error
	GetPorPeriodo(ctx context.Context, mes, anio int) (*model.CalidadMensualMaquina, error)
}

type calidadRepo struct {
	db *gorm.DB
}

func NewCalidadRepo(db *gorm.DB) CalidadRepository {
	return &calidadRepo{db: db}
}

func (r *calidadRepo) Upsert(ctx context.Context, calidad *model.CalidadMensualMaquina) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existente model.CalidadMensualMaquina
		err := tx.Where("mes = ? AND anio = ?", calidad.Mes, calidad.Anio).
			First(&existente).Error
		switch {
		case err == nil:
			// Reemplazo completo: borra el desglose anterior y actualiza el padre
			if err := tx.Where("calidad_id = ?", existente.CalidadID).
				Delete(&model.CalidadMaquinaDetalle{}).Error; err != nil {
				return err
			}
			calidad.CalidadID = existente.CalidadID
			if err := tx.Model(&model.CalidadMensualMaquina{}).
				Where("calidad_id = ?", existente.CalidadID).
				Update("puntaje_compuesto", calidad.PuntajeCompuesto).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			detalles := calidad.Detalles
			calidad.Detalles = nil
			if err := tx.Create(calidad).Error; err != nil {
				return err
			}
			calidad.Detalles = detalles
		default:
			return err
		}

		for i := range calidad.Detalles {
			calidad.Detalles[i].CalidadID = calidad.CalidadID
		}
		if len(calidad.Detalles) == 0 {
			return nil
		}
		return tx.Create(&calidad.Detalles).Error
	})
}

func (r *calidadRepo) GetPorPeriodo(ctx context.Context, mes, anio int) (*model.CalidadMensualMaquina, error) {
	var calidad model.CalidadMensualMaquina
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Maquina").
		Where("mes = ? AND anio = ?", mes, anio).
		First(&calidad).Error
	if err != nil {
		return nil, err
	}
	return &calidad, nil
}
