package dto

// ── Calidad mensual de planta ──

// RecalcularCalidadRequest recálculo del puntaje compuesto de un período
type RecalcularCalidadRequest struct {
	Mes  int `json:"mes"  binding:"required,min=1,max=12"`
	Anio int `json:"anio" binding:"required,min=2000,max=2100"`
}

// ObtenerCalidadRequest consulta del puntaje compuesto de un período
type ObtenerCalidadRequest struct {
	Mes  int `form:"mes"  binding:"required,min=1,max=12"`
	Anio int `form:"anio" binding:"required,min=2000,max=2100"`
}

// CalidadDetalleResponse contribución de una máquina al compuesto
type CalidadDetalleResponse struct {
	MaquinaID           string  `json:"maquina_id"`
	Maquina             string  `json:"maquina,omitempty"`
	RendimientoPromedio float64 `json:"rendimiento_promedio"`
	Importancia         int     `json:"importancia"`
	Contribucion        float64 `json:"contribucion"`
}

// CalidadResponse puntaje compuesto mensual con desglose por máquina
type CalidadResponse struct {
	Mes              int                      `json:"mes"`
	Anio             int                      `json:"anio"`
	PuntajeCompuesto float64                  `json:"puntaje_compuesto"`
	Detalles         []CalidadDetalleResponse `json:"detalles"`
}
