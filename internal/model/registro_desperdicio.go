package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroDesperdicio representa la tabla registros_desperdicio.
// Libro independiente del campo Desperdicio de RegistroActividad: en el
// producto existen dos vías paralelas de captura de desperdicio y no se
// concilian entre sí. Mantener ambas con nombre propio es intencional.
type RegistroDesperdicio struct {
	DesperdicioID       string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"desperdicio_id"`
	MaquinaID           string          `gorm:"type:uuid;not null;index:idx_registros_desperdicio_clave" json:"maquina_id"`
	OperadorID          string          `gorm:"type:uuid;not null"                             json:"operador_id"`
	CodigoDesperdicioID *string         `gorm:"type:uuid"                                      json:"codigo_desperdicio_id,omitempty"` // null = sin clasificar
	Fecha               time.Time       `gorm:"type:date;not null;index:idx_registros_desperdicio_clave" json:"fecha"`
	Cantidad            decimal.Decimal `gorm:"type:numeric(12,2);not null"                    json:"cantidad"`
	Observacion         *string         `json:"observacion,omitempty"`
	CreatedAt           time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy           *string         `gorm:"type:uuid"                                      json:"created_by,omitempty"`

	Maquina  *Maquina           `gorm:"foreignKey:MaquinaID;references:MaquinaID"                       json:"maquina,omitempty"`
	Operador *Operador          `gorm:"foreignKey:OperadorID;references:OperadorID"                     json:"operador,omitempty"`
	Codigo   *CodigoDesperdicio `gorm:"foreignKey:CodigoDesperdicioID;references:CodigoDesperdicioID"   json:"codigo,omitempty"`
}

func (RegistroDesperdicio) TableName() string { return "registros_desperdicio" }
