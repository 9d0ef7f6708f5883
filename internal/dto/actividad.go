package dto

// ── Libro de actividades ──

// CrearRegistroRequest alta directa de un intervalo cerrado
// (vía para colaboradores externos que no usan el cronómetro)
type CrearRegistroRequest struct {
	OperadorID        string  `json:"operador_id"         binding:"required,uuid"`
	MaquinaID         string  `json:"maquina_id"          binding:"required,uuid"`
	CodigoActividadID string  `json:"codigo_actividad_id" binding:"required,uuid"`
	HoraInicio        string  `json:"hora_inicio"         binding:"required"` // RFC3339
	HoraFin           string  `json:"hora_fin"            binding:"required"` // RFC3339
	Tiros             int     `json:"tiros"               binding:"min=0"`
	Desperdicio       float64 `json:"desperdicio"         binding:"min=0"`
	OrdenID           *string `json:"orden_id"            binding:"omitempty,uuid"`
	Observacion       *string `json:"observacion"         binding:"omitempty,max=500"`
}

// ListarRegistrosRequest filtros de consulta del libro
type ListarRegistrosRequest struct {
	OperadorID string `form:"operador_id" binding:"omitempty,uuid"`
	MaquinaID  string `form:"maquina_id"  binding:"omitempty,uuid"`
	Desde      string `form:"desde"       binding:"omitempty,datetime=2006-01-02"`
	Hasta      string `form:"hasta"       binding:"omitempty,datetime=2006-01-02"`
	PaginationRequest
}

// RegistroActividadResponse registro del libro
type RegistroActividadResponse struct {
	RegistroID       string  `json:"registro_id"`
	OperadorID       string  `json:"operador_id"`
	Operador         string  `json:"operador,omitempty"`
	MaquinaID        string  `json:"maquina_id"`
	Maquina          string  `json:"maquina,omitempty"`
	CodigoActividad  string  `json:"codigo_actividad,omitempty"`
	Categoria        string  `json:"categoria,omitempty"`
	Fecha            string  `json:"fecha"`
	HoraInicio       string  `json:"hora_inicio"`
	HoraFin          string  `json:"hora_fin"`
	DuracionMinutos  float64 `json:"duracion_minutos"`
	Tiros            int     `json:"tiros"`
	Desperdicio      string  `json:"desperdicio"`
	EsHorarioLaboral bool    `json:"es_horario_laboral"`
	OrdenID          *string `json:"orden_id,omitempty"`
	Observacion      *string `json:"observacion,omitempty"`
}
