package model

import "time"

// RendimientoMensualOperador representa la tabla rendimientos_mensuales_operador.
// Derivada de produccion_diaria; recomputable en cualquier momento.
// RendimientoPromedio es el promedio simple de los promedios por máquina
// (no ponderado por tiros).
type RendimientoMensualOperador struct {
	RendimientoID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"rendimiento_id"`
	OperadorID          string    `gorm:"type:uuid;not null;uniqueIndex:uq_rendimiento_mensual" json:"operador_id"`
	Mes                 int       `gorm:"type:smallint;not null;uniqueIndex:uq_rendimiento_mensual" json:"mes"`
	Anio                int       `gorm:"type:smallint;not null;uniqueIndex:uq_rendimiento_mensual" json:"anio"`
	RendimientoPromedio float64   `gorm:"type:numeric(8,2);not null;default:0"                  json:"rendimiento_promedio"`
	TotalTiros          int       `gorm:"not null;default:0"                                    json:"total_tiros"`
	MaquinasTrabajadas  int       `gorm:"not null;default:0"                                    json:"maquinas_trabajadas"`
	DiasLaborados       int       `gorm:"not null;default:0"                                    json:"dias_laborados"`
	CreatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                    json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                    json:"updated_at"`

	Operador *Operador `gorm:"foreignKey:OperadorID;references:OperadorID" json:"operador,omitempty"`
}

func (RendimientoMensualOperador) TableName() string { return "rendimientos_mensuales_operador" }
