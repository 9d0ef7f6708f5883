package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Categorías de actividad ──
//
// La categoría determina en qué balde de tiempo del rollup diario cae la
// duración de cada registro. Catálogo fijo, sembrado por migración.

const (
	CategoriaProductiva       = "productiva"
	CategoriaMontaje          = "montaje"
	CategoriaMantenimiento    = "mantenimiento"
	CategoriaDescanso         = "descanso"
	CategoriaFaltaTrabajo     = "falta_trabajo"
	CategoriaReparacion       = "reparacion"
	CategoriaOtroTiempoMuerto = "otro_tiempo_muerto"
)

// Maquina representa la tabla maquinas.
// Meta100Porciento define los tiros diarios que equivalen al 100% de
// rendimiento; Importancia (0–100) es el peso de la máquina en el puntaje
// compuesto mensual de planta.
type Maquina struct {
	MaquinaID        string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"maquina_id"`
	Nombre           string          `gorm:"type:varchar(120);not null"                     json:"nombre"`
	Meta100Porciento int             `gorm:"not null;default:0"                             json:"meta_100_porciento"`
	ValorPorTiro     decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0"          json:"valor_por_tiro"`
	Importancia      int             `gorm:"type:smallint;not null;default:0"               json:"importancia"`
	Activa           bool            `gorm:"not null;default:true"                          json:"activa"`
	SoftDeleteModel
}

func (Maquina) TableName() string { return "maquinas" }

// Operador representa la tabla operadores
type Operador struct {
	OperadorID     string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"operador_id"`
	Nombre         string          `gorm:"type:varchar(120);not null"                     json:"nombre"`
	Codigo         string          `gorm:"type:varchar(20);not null;uniqueIndex"          json:"codigo"`
	SalarioMensual decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"          json:"salario_mensual"`
	PinHash        string          `gorm:"type:varchar(100);not null;default:''"          json:"-"`
	Activo         bool            `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel
}

func (Operador) TableName() string { return "operadores" }

// CodigoActividad representa la tabla codigos_actividad
type CodigoActividad struct {
	CodigoActividadID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"codigo_actividad_id"`
	Nombre            string    `gorm:"type:varchar(80);not null"                      json:"nombre"`
	Categoria         string    `gorm:"type:varchar(30);not null"                      json:"categoria"`
	EsProductiva      bool      `gorm:"not null;default:false"                         json:"es_productiva"`
	Activo            bool      `gorm:"not null;default:true"                          json:"activo"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (CodigoActividad) TableName() string { return "codigos_actividad" }

// CodigoDesperdicio representa la tabla codigos_desperdicio
type CodigoDesperdicio struct {
	CodigoDesperdicioID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"codigo_desperdicio_id"`
	Nombre              string    `gorm:"type:varchar(80);not null"                      json:"nombre"`
	Activo              bool      `gorm:"not null;default:true"                          json:"activo"`
	CreatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (CodigoDesperdicio) TableName() string { return "codigos_desperdicio" }

// OrdenTrabajo representa la tabla ordenes_trabajo
type OrdenTrabajo struct {
	OrdenID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"orden_id"`
	Numero      string    `gorm:"type:varchar(40);not null;uniqueIndex"          json:"numero"`
	Descripcion *string   `json:"descripcion,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (OrdenTrabajo) TableName() string { return "ordenes_trabajo" }

// TurnoLaboral representa la tabla turnos_laborales.
// Ventana de horario laboral programado por día de semana (1=lunes…7=domingo);
// determina qué registros cuentan como bonificables.
type TurnoLaboral struct {
	TurnoID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"turno_id"`
	DiaSemana  int       `gorm:"type:smallint;not null"                         json:"dia_semana"`
	HoraInicio string    `gorm:"type:varchar(5);not null"                       json:"hora_inicio"` // "07:00"
	HoraFin    string    `gorm:"type:varchar(5);not null"                       json:"hora_fin"`    // "17:00"
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (TurnoLaboral) TableName() string { return "turnos_laborales" }
