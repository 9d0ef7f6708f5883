package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProduccionDiaria representa la tabla produccion_diaria.
// Exactamente una fila por (operador, máquina, fecha); el recálculo la
// reemplaza completa (upsert), nunca la parchea. Es función pura de los
// registros de actividad de esa clave.
type ProduccionDiaria struct {
	ProduccionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"produccion_id"`
	OperadorID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_produccion_clave" json:"operador_id"`
	MaquinaID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_produccion_clave" json:"maquina_id"`
	Fecha        time.Time `gorm:"type:date;not null;uniqueIndex:uq_produccion_clave" json:"fecha"`

	TotalTiros       int             `gorm:"not null;default:0"                    json:"total_tiros"`
	TotalDesperdicio decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_desperdicio"`

	// Baldes de tiempo por categoría de actividad (horas, 2 decimales)
	HorasProductivas      float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_productivas"`
	HorasMontaje          float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_montaje"`
	HorasMantenimiento    float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_mantenimiento"`
	HorasDescanso         float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_descanso"`
	HorasFaltaTrabajo     float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_falta_trabajo"`
	HorasReparacion       float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_reparacion"`
	HorasOtroTiempoMuerto float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_otro_tiempo_muerto"`

	// HorasOperativas = productivas + montaje (máquina atendida)
	HorasOperativas float64 `gorm:"type:numeric(8,2);not null;default:0" json:"horas_operativas"`
	// TotalHoras = suma de todos los baldes (tolerancia de redondeo: 2 decimales)
	TotalHoras float64 `gorm:"type:numeric(8,2);not null;default:0" json:"total_horas"`

	DiasLaborados    int             `gorm:"not null;default:1"                    json:"dias_laborados"`
	RendimientoFinal float64         `gorm:"type:numeric(8,2);not null;default:0"  json:"rendimiento_final"`
	ValorAPagar      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valor_a_pagar"`
	// MetaFaltante indica que la máquina no tiene meta configurada; el
	// rendimiento degradó a 0 en vez de fallar el cálculo.
	MetaFaltante bool `gorm:"not null;default:false" json:"meta_faltante"`

	// Subtotales bonificables: mismo cálculo restringido a registros dentro
	// del horario laboral programado. Siempre ≤ los totales del período.
	TirosBonificables      int             `gorm:"not null;default:0"                    json:"tiros_bonificables"`
	DesperdicioBonificable decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"desperdicio_bonificable"`
	RendimientoBonificable float64         `gorm:"type:numeric(8,2);not null;default:0"  json:"rendimiento_bonificable"`
	ValorBonificable       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valor_bonificable"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ProduccionDiaria) TableName() string { return "produccion_diaria" }
