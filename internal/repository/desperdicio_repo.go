package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// DesperdicioRepository acceso al libro independiente de desperdicio
type DesperdicioRepository interface {
	Create(ctx context.Context, registro *model.RegistroDesperdicio) error
	// TotalDia suma de cantidades de una máquina en un día
	TotalDia(ctx context.Context, maquinaID string, fecha time.Time) (decimal.Decimal, error)
	// ListMes registros de una máquina en un mes (el servicio agrupa por día)
	ListMes(ctx context.Context, maquinaID string, mes, anio int) ([]model.RegistroDesperdicio, error)
}

type desperdicioRepo struct {
	db *gorm.DB
}

func NewDesperdicioRepo(db *gorm.DB) DesperdicioRepository {
	return &desperdicioRepo{db: db}
}

func (r *desperdicioRepo) Create(ctx context.Context, registro *model.RegistroDesperdicio) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

func (r *desperdicioRepo) TotalDia(ctx context.Context, maquinaID string, fecha time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.RegistroDesperdicio{}).
		Where("maquina_id = ? AND fecha = ?", maquinaID, fecha).
		Select("COALESCE(SUM(cantidad), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *desperdicioRepo) ListMes(ctx context.Context, maquinaID string, mes, anio int) ([]model.RegistroDesperdicio, error) {
	inicio, fin := rangoMes(mes, anio)
	var registros []model.RegistroDesperdicio
	err := r.db.WithContext(ctx).
		Preload("Codigo").
		Where("maquina_id = ? AND fecha >= ? AND fecha < ?", maquinaID, inicio, fin).
		Order("fecha").
		Find(&registros).Error
	return registros, err
}
