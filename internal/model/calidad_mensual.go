package model

import "time"

// CalidadMensualMaquina representa la tabla calidades_mensuales_maquina.
// Una fila por (mes, año) con el puntaje compuesto de planta:
// suma directa de rendimiento% × importancia/100 sobre las máquinas activas.
// Los pesos de importancia NO se normalizan aunque no sumen 100; cambiar esto
// alteraría los puntajes históricos (ambigüedad documentada del producto).
type CalidadMensualMaquina struct {
	CalidadID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"calidad_id"`
	Mes              int       `gorm:"type:smallint;not null;uniqueIndex:uq_calidad_mensual" json:"mes"`
	Anio             int       `gorm:"type:smallint;not null;uniqueIndex:uq_calidad_mensual" json:"anio"`
	PuntajeCompuesto float64   `gorm:"type:numeric(8,2);not null;default:0"               json:"puntaje_compuesto"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"updated_at"`

	Detalles []CalidadMaquinaDetalle `gorm:"foreignKey:CalidadID" json:"detalles,omitempty"`
}

func (CalidadMensualMaquina) TableName() string { return "calidades_mensuales_maquina" }

// CalidadMaquinaDetalle desglose por máquina del puntaje compuesto.
// Una máquina sin producción en el mes aparece con rendimiento 0; no se
// excluye del desglose.
type CalidadMaquinaDetalle struct {
	DetalleID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"detalle_id"`
	CalidadID           string  `gorm:"type:uuid;not null;index"                       json:"calidad_id"`
	MaquinaID           string  `gorm:"type:uuid;not null"                             json:"maquina_id"`
	RendimientoPromedio float64 `gorm:"type:numeric(8,2);not null;default:0"           json:"rendimiento_promedio"`
	Importancia         int     `gorm:"type:smallint;not null;default:0"               json:"importancia"`
	Contribucion        float64 `gorm:"type:numeric(8,2);not null;default:0"           json:"contribucion"`

	Maquina *Maquina `gorm:"foreignKey:MaquinaID;references:MaquinaID" json:"maquina,omitempty"`
}

func (CalidadMaquinaDetalle) TableName() string { return "calidad_maquina_detalles" }
