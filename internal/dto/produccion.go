package dto

// ── Rollup diario de producción ──

// RecalcularProduccionRequest dispara el recálculo de una clave
type RecalcularProduccionRequest struct {
	OperadorID string `json:"operador_id" binding:"required,uuid"`
	MaquinaID  string `json:"maquina_id"  binding:"required,uuid"`
	Fecha      string `json:"fecha"       binding:"required,datetime=2006-01-02"`
}

// ObtenerProduccionRequest consulta de una fila de producción diaria
type ObtenerProduccionRequest struct {
	OperadorID string `form:"operador_id" binding:"required,uuid"`
	MaquinaID  string `form:"maquina_id"  binding:"required,uuid"`
	Fecha      string `form:"fecha"       binding:"required,datetime=2006-01-02"`
}

// RecalcularProduccionRangoRequest recálculo por lotes de un rango de fechas
type RecalcularProduccionRangoRequest struct {
	OperadorID string `json:"operador_id" binding:"required,uuid"`
	MaquinaID  string `json:"maquina_id"  binding:"required,uuid"`
	Desde      string `json:"desde"       binding:"required,datetime=2006-01-02"`
	Hasta      string `json:"hasta"       binding:"required,datetime=2006-01-02"`
}

// ResultadoDiaResponse resultado aislado de un día dentro del lote
type ResultadoDiaResponse struct {
	Fecha        string              `json:"fecha"`
	Exito        bool                `json:"exito"`
	SinActividad bool                `json:"sin_actividad,omitempty"`
	Produccion   *ProduccionResponse `json:"produccion,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// RecalculoRangoResponse resumen del recálculo por lotes
type RecalculoRangoResponse struct {
	Exitosos   int                    `json:"exitosos"`
	Fallidos   int                    `json:"fallidos"`
	Resultados []ResultadoDiaResponse `json:"resultados"`
}

// ProduccionResponse fila de producción diaria
type ProduccionResponse struct {
	OperadorID string `json:"operador_id"`
	MaquinaID  string `json:"maquina_id"`
	Fecha      string `json:"fecha"`

	TotalTiros       int    `json:"total_tiros"`
	TotalDesperdicio string `json:"total_desperdicio"`

	HorasProductivas      float64 `json:"horas_productivas"`
	HorasMontaje          float64 `json:"horas_montaje"`
	HorasMantenimiento    float64 `json:"horas_mantenimiento"`
	HorasDescanso         float64 `json:"horas_descanso"`
	HorasFaltaTrabajo     float64 `json:"horas_falta_trabajo"`
	HorasReparacion       float64 `json:"horas_reparacion"`
	HorasOtroTiempoMuerto float64 `json:"horas_otro_tiempo_muerto"`
	HorasOperativas       float64 `json:"horas_operativas"`
	TotalHoras            float64 `json:"total_horas"`

	DiasLaborados    int     `json:"dias_laborados"`
	RendimientoFinal float64 `json:"rendimiento_final"`
	ValorAPagar      string  `json:"valor_a_pagar"`
	// MetaFaltante permite a la UI mostrar "configuración faltante" en vez
	// de un rendimiento 0 engañoso.
	MetaFaltante bool `json:"meta_faltante"`

	TirosBonificables      int     `json:"tiros_bonificables"`
	DesperdicioBonificable string  `json:"desperdicio_bonificable"`
	RendimientoBonificable float64 `json:"rendimiento_bonificable"`
	ValorBonificable       string  `json:"valor_bonificable"`
}
