package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// ── Catálogos: acceso de solo lectura desde el motor, más el reemplazo de
// turnos que usa la importación de calendario ──

// MaquinaRepository acceso al catálogo de máquinas
type MaquinaRepository interface {
	GetByID(ctx context.Context, id string) (*model.Maquina, error)
	ListActivas(ctx context.Context) ([]model.Maquina, error)
}

// OperadorRepository acceso al catálogo de operadores
type OperadorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Operador, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.Operador, error)
	ListActivos(ctx context.Context) ([]model.Operador, error)
}

// CodigoActividadRepository acceso al catálogo de códigos de actividad
type CodigoActividadRepository interface {
	GetByID(ctx context.Context, id string) (*model.CodigoActividad, error)
	ListActivos(ctx context.Context) ([]model.CodigoActividad, error)
}

// CodigoDesperdicioRepository acceso al catálogo de códigos de desperdicio
type CodigoDesperdicioRepository interface {
	GetByID(ctx context.Context, id string) (*model.CodigoDesperdicio, error)
	ListActivos(ctx context.Context) ([]model.CodigoDesperdicio, error)
}

// OrdenRepository acceso a órdenes de trabajo
type OrdenRepository interface {
	GetByID(ctx context.Context, id string) (*model.OrdenTrabajo, error)
}

// TurnoRepository acceso a los turnos laborales
type TurnoRepository interface {
	List(ctx context.Context) ([]model.TurnoLaboral, error)
	// ReplaceAll reemplaza el calendario completo (importación ICS)
	ReplaceAll(ctx context.Context, turnos []model.TurnoLaboral) error
}

// ── Implementaciones ──

type maquinaRepo struct {
	db *gorm.DB
}

func NewMaquinaRepo(db *gorm.DB) MaquinaRepository {
	return &maquinaRepo{db: db}
}

func (r *maquinaRepo) GetByID(ctx context.Context, id string) (*model.Maquina, error) {
	var m model.Maquina
	if err := r.db.WithContext(ctx).Where("maquina_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maquinaRepo) ListActivas(ctx context.Context) ([]model.Maquina, error) {
	var maquinas []model.Maquina
	err := r.db.WithContext(ctx).
		Where("activa = ?", true).
		Order("nombre").
		Find(&maquinas).Error
	return maquinas, err
}

type operadorRepo struct {
	db *gorm.DB
}

func NewOperadorRepo(db *gorm.DB) OperadorRepository {
	return &operadorRepo{db: db}
}

func (r *operadorRepo) GetByID(ctx context.Context, id string) (*model.Operador, error) {
	var o model.Operador
	if err := r.db.WithContext(ctx).Where("operador_id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *operadorRepo) GetByCodigo(ctx context.Context, codigo string) (*model.Operador, error) {
	var o model.Operador
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *operadorRepo) ListActivos(ctx context.Context) ([]model.Operador, error) {
	var operadores []model.Operador
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre").
		Find(&operadores).Error
	return operadores, err
}

type codigoActividadRepo struct {
	db *gorm.DB
}

func NewCodigoActividadRepo(db *gorm.DB) CodigoActividadRepository {
	return &codigoActividadRepo{db: db}
}

func (r *codigoActividadRepo) GetByID(ctx context.Context, id string) (*model.CodigoActividad, error) {
	var c model.CodigoActividad
	if err := r.db.WithContext(ctx).Where("codigo_actividad_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *codigoActividadRepo) ListActivos(ctx context.Context) ([]model.CodigoActividad, error) {
	var codigos []model.CodigoActividad
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre").
		Find(&codigos).Error
	return codigos, err
}

type codigoDesperdicioRepo struct {
	db *gorm.DB
}

func NewCodigoDesperdicioRepo(db *gorm.DB) CodigoDesperdicioRepository {
	return &codigoDesperdicioRepo{db: db}
}

func (r *codigoDesperdicioRepo) GetByID(ctx context.Context, id string) (*model.CodigoDesperdicio, error) {
	var c model.CodigoDesperdicio
	if err := r.db.WithContext(ctx).Where("codigo_desperdicio_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *codigoDesperdicioRepo) ListActivos(ctx context.Context) ([]model.CodigoDesperdicio, error) {
	var codigos []model.CodigoDesperdicio
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre").
		Find(&codigos).Error
	return codigos, err
}

type ordenRepo struct {
	db *gorm.DB
}

func NewOrdenRepo(db *gorm.DB) OrdenRepository {
	return &ordenRepo{db: db}
}

func (r *ordenRepo) GetByID(ctx context.Context, id string) (*model.OrdenTrabajo, error) {
	var o model.OrdenTrabajo
	if err := r.db.WithContext(ctx).Where("orden_id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type turnoRepo struct {
	db *gorm.DB
}

func NewTurnoRepo(db *gorm.DB) TurnoRepository {
	return &turnoRepo{db: db}
}

func (r *turnoRepo) List(ctx context.Context) ([]model.TurnoLaboral, error) {
	var turnos []model.TurnoLaboral
	err := r.db.WithContext(ctx).
		Order("dia_semana, hora_inicio").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepo) ReplaceAll(ctx context.Context, turnos []model.TurnoLaboral) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TurnoLaboral{}).Error; err != nil {
			return err
		}
		if len(turnos) == 0 {
			return nil
		}
		return tx.Create(&turnos).Error
	})
}
