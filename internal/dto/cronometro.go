package dto

// ── Cronómetro de actividad ──

// IniciarCronometroRequest abre un intervalo de actividad en la sesión
type IniciarCronometroRequest struct {
	MaquinaID         string `json:"maquina_id"          binding:"required,uuid"`
	CodigoActividadID string `json:"codigo_actividad_id" binding:"required,uuid"`
	OrdenID           *string `json:"orden_id"           binding:"omitempty,uuid"`
}

// DetenerCronometroRequest cierra el intervalo y registra lo producido
type DetenerCronometroRequest struct {
	Tiros       int     `json:"tiros"       binding:"min=0"`
	Desperdicio float64 `json:"desperdicio" binding:"min=0"`
	Observacion *string `json:"observacion" binding:"omitempty,max=500"`
}

// CronometroResponse estado actual del cronómetro de la sesión
type CronometroResponse struct {
	Estado               string  `json:"estado"` // inactivo | corriendo | pausado
	MaquinaID            string  `json:"maquina_id,omitempty"`
	CodigoActividadID    string  `json:"codigo_actividad_id,omitempty"`
	OrdenID              *string `json:"orden_id,omitempty"`
	HoraInicio           string  `json:"hora_inicio,omitempty"` // RFC3339
	TranscurridoSegundos float64 `json:"transcurrido_segundos"`
}

// DetenerCronometroResponse resultado del cierre del intervalo
type DetenerCronometroResponse struct {
	DuracionMinutos float64                    `json:"duracion_minutos"`
	Registro        *RegistroActividadResponse `json:"registro"`
}
