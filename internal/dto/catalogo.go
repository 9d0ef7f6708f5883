package dto

// ── Catálogos (solo lectura desde el motor) ──

// MaquinaResponse máquina del catálogo
type MaquinaResponse struct {
	MaquinaID        string `json:"maquina_id"`
	Nombre           string `json:"nombre"`
	Meta100Porciento int    `json:"meta_100_porciento"`
	ValorPorTiro     string `json:"valor_por_tiro"`
	Importancia      int    `json:"importancia"`
	Activa           bool   `json:"activa"`
}

// OperadorResponse operador del catálogo (sin datos sensibles)
type OperadorResponse struct {
	OperadorID string `json:"operador_id"`
	Nombre     string `json:"nombre"`
	Codigo     string `json:"codigo"`
	Activo     bool   `json:"activo"`
}

// CodigoActividadResponse código del catálogo de actividades
type CodigoActividadResponse struct {
	CodigoActividadID string `json:"codigo_actividad_id"`
	Nombre            string `json:"nombre"`
	Categoria         string `json:"categoria"`
	EsProductiva      bool   `json:"es_productiva"`
}

// CodigoDesperdicioResponse código del catálogo de desperdicio
type CodigoDesperdicioResponse struct {
	CodigoDesperdicioID string `json:"codigo_desperdicio_id"`
	Nombre              string `json:"nombre"`
}

// TurnoLaboralResponse ventana de horario laboral
type TurnoLaboralResponse struct {
	TurnoID    string `json:"turno_id"`
	DiaSemana  int    `json:"dia_semana"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// ImportarTurnosResponse resultado de la importación de calendario ICS
type ImportarTurnosResponse struct {
	TurnosImportados int                    `json:"turnos_importados"`
	Turnos           []TurnoLaboralResponse `json:"turnos"`
}
