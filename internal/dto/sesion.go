package dto

// ── Sesión de tablet ──

// AbrirSesionRequest apertura de sesión de kiosco: código de empleado + PIN
type AbrirSesionRequest struct {
	Codigo string `json:"codigo" binding:"required,min=1,max=20"`
	Pin    string `json:"pin"    binding:"required,min=4,max=12"`
}

// SesionResponse sesión abierta
type SesionResponse struct {
	Token    string           `json:"token"`
	SesionID string           `json:"sesion_id"`
	Operador OperadorResponse `json:"operador"`
}
