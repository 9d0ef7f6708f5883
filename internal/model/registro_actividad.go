package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroActividad representa la tabla registros_actividad.
// Una fila inmutable por intervalo cerrado de actividad. Las correcciones se
// modelan como un registro nuevo más el recálculo del rollup afectado; el
// repositorio no expone Update ni Delete.
type RegistroActividad struct {
	RegistroID        string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"registro_id"`
	OperadorID        string          `gorm:"type:uuid;not null"                             json:"operador_id"`
	MaquinaID         string          `gorm:"type:uuid;not null"                             json:"maquina_id"`
	CodigoActividadID string          `gorm:"type:uuid;not null"                             json:"codigo_actividad_id"`
	Fecha             time.Time       `gorm:"type:date;not null"                             json:"fecha"`
	HoraInicio        time.Time       `gorm:"not null"                                       json:"hora_inicio"`
	HoraFin           time.Time       `gorm:"not null"                                       json:"hora_fin"`
	DuracionMinutos   float64         `gorm:"type:numeric(10,2);not null"                    json:"duracion_minutos"` // derivado: HoraFin − HoraInicio
	Tiros             int             `gorm:"not null;default:0"                             json:"tiros"`
	Desperdicio       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"          json:"desperdicio"`
	EsHorarioLaboral  bool            `gorm:"not null;default:false"                         json:"es_horario_laboral"` // fijado al insertar según turnos_laborales
	OrdenID           *string         `gorm:"type:uuid"                                      json:"orden_id,omitempty"`
	Observacion       *string         `json:"observacion,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy         *string         `gorm:"type:uuid"                                      json:"created_by,omitempty"`

	// Asociaciones
	Operador        *Operador        `gorm:"foreignKey:OperadorID;references:OperadorID"                      json:"operador,omitempty"`
	Maquina         *Maquina         `gorm:"foreignKey:MaquinaID;references:MaquinaID"                        json:"maquina,omitempty"`
	CodigoActividad *CodigoActividad `gorm:"foreignKey:CodigoActividadID;references:CodigoActividadID"        json:"codigo_actividad,omitempty"`
	Orden           *OrdenTrabajo    `gorm:"foreignKey:OrdenID;references:OrdenID"                            json:"orden,omitempty"`
}

func (RegistroActividad) TableName() string { return "registros_actividad" }
