package repository

import "gorm.io/gorm"

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Maquina           MaquinaRepository
	Operador          OperadorRepository
	CodigoActividad   CodigoActividadRepository
	CodigoDesperdicio CodigoDesperdicioRepository
	Orden             OrdenRepository
	Turno             TurnoRepository
	Registro          RegistroActividadRepository
	Produccion        ProduccionRepository
	Rendimiento       RendimientoRepository
	Calidad           CalidadRepository
	Desperdicio       DesperdicioRepository
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Maquina:           NewMaquinaRepo(db),
		Operador:          NewOperadorRepo(db),
		CodigoActividad:   NewCodigoActividadRepo(db),
		CodigoDesperdicio: NewCodigoDesperdicioRepo(db),
		Orden:             NewOrdenRepo(db),
		Turno:             NewTurnoRepo(db),
		Registro:          NewRegistroActividadRepo(db),
		Produccion:        NewProduccionRepo(db),
		Rendimiento:       NewRendimientoRepo(db),
		Calidad:           NewCalidadRepo(db),
		Desperdicio:       NewDesperdicioRepo(db),
	}
}
