package dto

// ── Rendimiento mensual de operador ──

// RecalcularRendimientoRequest recálculo mensual; sin OperadorID recalcula
// todos los operadores activos (lote con resultado por unidad)
type RecalcularRendimientoRequest struct {
	Mes        int     `json:"mes"         binding:"required,min=1,max=12"`
	Anio       int     `json:"anio"        binding:"required,min=2000,max=2100"`
	OperadorID *string `json:"operador_id" binding:"omitempty,uuid"`
}

// ObtenerRendimientoRequest consulta del resumen mensual de un operador
type ObtenerRendimientoRequest struct {
	Mes  int `form:"mes"  binding:"required,min=1,max=12"`
	Anio int `form:"anio" binding:"required,min=2000,max=2100"`
}

// RendimientoResponse resumen mensual de un operador
type RendimientoResponse struct {
	OperadorID          string  `json:"operador_id"`
	Operador            string  `json:"operador,omitempty"`
	Mes                 int     `json:"mes"`
	Anio                int     `json:"anio"`
	RendimientoPromedio float64 `json:"rendimiento_promedio"`
	TotalTiros          int     `json:"total_tiros"`
	MaquinasTrabajadas  int     `json:"maquinas_trabajadas"`
	DiasLaborados       int     `json:"dias_laborados"`
}

// ResultadoRecalculoResponse resultado por unidad de un recálculo en lote.
// El fallo de una unidad nunca se presenta como éxito ni aborta el resto.
type ResultadoRecalculoResponse struct {
	OperadorID string `json:"operador_id"`
	Exito      bool   `json:"exito"`
	Error      string `json:"error,omitempty"`
}

// RecalculoLoteResponse resumen del lote
type RecalculoLoteResponse struct {
	Total      int                          `json:"total"`
	Exitosos   int                          `json:"exitosos"`
	Fallidos   int                          `json:"fallidos"`
	Resultados []ResultadoRecalculoResponse `json:"resultados"`
}
