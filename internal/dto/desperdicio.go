package dto

// ── Libro de desperdicio ──

// CrearDesperdicioRequest alta de un registro de desperdicio
type CrearDesperdicioRequest struct {
	MaquinaID           string  `json:"maquina_id"            binding:"required,uuid"`
	OperadorID          string  `json:"operador_id"           binding:"required,uuid"`
	CodigoDesperdicioID *string `json:"codigo_desperdicio_id" binding:"omitempty,uuid"` // null = sin clasificar
	Fecha               string  `json:"fecha"                 binding:"required,datetime=2006-01-02"`
	Cantidad            float64 `json:"cantidad"              binding:"required,gt=0"`
	Observacion         *string `json:"observacion"           binding:"omitempty,max=500"`
}

// TotalDiaRequest total de desperdicio de una máquina en un día
type TotalDiaRequest struct {
	MaquinaID string `form:"maquina_id" binding:"required,uuid"`
	Fecha     string `form:"fecha"      binding:"required,datetime=2006-01-02"`
}

// ReporteMensualRequest reporte mensual por día de una máquina
type ReporteMensualRequest struct {
	MaquinaID string `form:"maquina_id" binding:"required,uuid"`
	Mes       int    `form:"mes"        binding:"required,min=1,max=12"`
	Anio      int    `form:"anio"       binding:"required,min=2000,max=2100"`
}

// DesperdicioResponse registro de desperdicio
type DesperdicioResponse struct {
	DesperdicioID       string  `json:"desperdicio_id"`
	MaquinaID           string  `json:"maquina_id"`
	OperadorID          string  `json:"operador_id"`
	CodigoDesperdicioID *string `json:"codigo_desperdicio_id,omitempty"`
	Codigo              string  `json:"codigo,omitempty"`
	Fecha               string  `json:"fecha"`
	Cantidad            string  `json:"cantidad"`
	Observacion         *string `json:"observacion,omitempty"`
}

// TotalDiaResponse total de un día
type TotalDiaResponse struct {
	MaquinaID string `json:"maquina_id"`
	Fecha     string `json:"fecha"`
	Total     string `json:"total"`
}

// ReporteMensualResponse cantidades sumadas por día del mes
type ReporteMensualResponse struct {
	MaquinaID string          `json:"maquina_id"`
	Mes       int             `json:"mes"`
	Anio      int             `json:"anio"`
	PorDia    map[int]float64 `json:"por_dia"`
}
