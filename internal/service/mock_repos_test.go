package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
)

// ── Mock MaquinaRepository ──

type mockMaquinaRepo struct {
	maquinas map[string]*model.Maquina
}

func newMockMaquinaRepo() *mockMaquinaRepo {
	return &mockMaquinaRepo{maquinas: make(map[string]*model.Maquina)}
}

func (m *mockMaquinaRepo) GetByID(_ context.Context, id string) (*model.Maquina, error) {
	if maq, ok := m.maquinas[id]; ok {
		return maq, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaquinaRepo) ListActivas(_ context.Context) ([]model.Maquina, error) {
	var result []model.Maquina
	for _, maq := range m.maquinas {
		if maq.Activa {
			result = append(result, *maq)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

// ── Mock OperadorRepository ──

type mockOperadorRepo struct {
	operadores map[string]*model.Operador
}

func newMockOperadorRepo() *mockOperadorRepo {
	return &mockOperadorRepo{operadores: make(map[string]*model.Operador)}
}

func (m *mockOperadorRepo) GetByID(_ context.Context, id string) (*model.Operador, error) {
	if op, ok := m.operadores[id]; ok {
		return op, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOperadorRepo) GetByCodigo(_ context.Context, codigo string) (*model.Operador, error) {
	for _, op := range m.operadores {
		if op.Codigo == codigo {
			return op, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOperadorRepo) ListActivos(_ context.Context) ([]model.Operador, error) {
	var result []model.Operador
	for _, op := range m.operadores {
		if op.Activo {
			result = append(result, *op)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

// ── Mock CodigoActividadRepository ──

type mockCodigoActividadRepo struct {
	codigos map[string]*model.CodigoActividad
}

func newMockCodigoActividadRepo() *mockCodigoActividadRepo {
	return &mockCodigoActividadRepo{codigos: make(map[string]*model.CodigoActividad)}
}

func (m *mockCodigoActividadRepo) GetByID(_ context.Context, id string) (*model.CodigoActividad, error) {
	if c, ok := m.codigos[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodigoActividadRepo) ListActivos(_ context.Context) ([]model.CodigoActividad, error) {
	var result []model.CodigoActividad
	for _, c := range m.codigos {
		if c.Activo {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

// ── Mock CodigoDesperdicioRepository ──

type mockCodigoDesperdicioRepo struct {
	codigos map[string]*model.CodigoDesperdicio
}

func newMockCodigoDesperdicioRepo() *mockCodigoDesperdicioRepo {
	return &mockCodigoDesperdicioRepo{codigos: make(map[string]*model.CodigoDesperdicio)}
}

func (m *mockCodigoDesperdicioRepo) GetByID(_ context.Context, id string) (*model.CodigoDesperdicio, error) {
	if c, ok := m.codigos[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodigoDesperdicioRepo) ListActivos(_ context.Context) ([]model.CodigoDesperdicio, error) {
	var result []model.CodigoDesperdicio
	for _, c := range m.codigos {
		if c.Activo {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

// ── Mock OrdenRepository ──

type mockOrdenRepo struct {
	ordenes map[string]*model.OrdenTrabajo
}

func newMockOrdenRepo() *mockOrdenRepo {
	return &mockOrdenRepo{ordenes: make(map[string]*model.OrdenTrabajo)}
}

func (m *mockOrdenRepo) GetByID(_ context.Context, id string) (*model.OrdenTrabajo, error) {
	if o, ok := m.ordenes[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock TurnoRepository ──

type mockTurnoRepo struct {
	turnos []model.TurnoLaboral
}

func newMockTurnoRepo() *mockTurnoRepo {
	return &mockTurnoRepo{}
}

func (m *mockTurnoRepo) List(_ context.Context) ([]model.TurnoLaboral, error) {
	result := make([]model.TurnoLaboral, len(m.turnos))
	copy(result, m.turnos)
	return result, nil
}

func (m *mockTurnoRepo) ReplaceAll(_ context.Context, turnos []model.TurnoLaboral) error {
	m.turnos = make([]model.TurnoLaboral, len(turnos))
	copy(m.turnos, turnos)
	for i := range m.turnos {
		if m.turnos[i].TurnoID == "" {
			m.turnos[i].TurnoID = fmt.Sprintf("turno-%d", i+1)
		}
	}
	return nil
}

// ── Mock RegistroActividadRepository ──

type mockRegistroRepo struct {
	registros  []model.RegistroActividad
	failCreate error
	seq        int
}

func newMockRegistroRepo() *mockRegistroRepo {
	return &mockRegistroRepo{}
}

func (m *mockRegistroRepo) Create(_ context.Context, registro *model.RegistroActividad) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.seq++
	if registro.RegistroID == "" {
		registro.RegistroID = fmt.Sprintf("reg-%03d", m.seq)
	}
	m.registros = append(m.registros, *registro)
	return nil
}

func (m *mockRegistroRepo) ListPorClave(_ context.Context, operadorID, maquinaID string, fecha time.Time) ([]model.RegistroActividad, error) {
	var result []model.RegistroActividad
	for _, r := range m.registros {
		if r.OperadorID == operadorID && r.MaquinaID == maquinaID && mismaFecha(r.Fecha, fecha) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HoraInicio.Before(result[j].HoraInicio) })
	return result, nil
}

func (m *mockRegistroRepo) List(_ context.Context, filtro repository.FiltroRegistros) ([]model.RegistroActividad, int64, error) {
	var filtrados []model.RegistroActividad
	for _, r := range m.registros {
		if filtro.OperadorID != "" && r.OperadorID != filtro.OperadorID {
			continue
		}
		if filtro.MaquinaID != "" && r.MaquinaID != filtro.MaquinaID {
			continue
		}
		if filtro.Desde != nil && r.Fecha.Before(*filtro.Desde) {
			continue
		}
		if filtro.Hasta != nil && r.Fecha.After(*filtro.Hasta) {
			continue
		}
		filtrados = append(filtrados, r)
	}
	total := int64(len(filtrados))

	if filtro.Offset >= len(filtrados) {
		return nil, total, nil
	}
	fin := filtro.Offset + filtro.Limit
	if filtro.Limit <= 0 || fin > len(filtrados) {
		fin = len(filtrados)
	}
	return filtrados[filtro.Offset:fin], total, nil
}

// ── Mock ProduccionRepository ──

type mockProduccionRepo struct {
	filas map[string]*model.ProduccionDiaria
	// fallos inyectables por operador, para probar aislamiento de lotes
	failPorOperador map[string]error
}

func newMockProduccionRepo() *mockProduccionRepo {
	return &mockProduccionRepo{
		filas:           make(map[string]*model.ProduccionDiaria),
		failPorOperador: make(map[string]error),
	}
}

func claveProduccion(operadorID, maquinaID string, fecha time.Time) string {
	return fmt.Sprintf("%s|%s|%s", operadorID, maquinaID, fecha.Format("2006-01-02"))
}

func (m *mockProduccionRepo) Upsert(_ context.Context, p *model.ProduccionDiaria) error {
	if err := m.failPorOperador[p.OperadorID]; err != nil {
		return err
	}
	clave := claveProduccion(p.OperadorID, p.MaquinaID, p.Fecha)
	if existente, ok := m.filas[clave]; ok {
		p.ProduccionID = existente.ProduccionID
	} else if p.ProduccionID == "" {
		p.ProduccionID = "prod-" + clave
	}
	copia := *p
	m.filas[clave] = &copia
	return nil
}

func (m *mockProduccionRepo) GetPorClave(_ context.Context, operadorID, maquinaID string, fecha time.Time) (*model.ProduccionDiaria, error) {
	if p, ok := m.filas[claveProduccion(operadorID, maquinaID, fecha)]; ok {
		copia := *p
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProduccionRepo) DeletePorClave(_ context.Context, operadorID, maquinaID string, fecha time.Time) error {
	delete(m.filas, claveProduccion(operadorID, maquinaID, fecha))
	return nil
}

func (m *mockProduccionRepo) ListMesPorOperador(_ context.Context, operadorID string, mes, anio int) ([]model.ProduccionDiaria, error) {
	if err := m.failPorOperador[operadorID]; err != nil {
		return nil, err
	}
	var result []model.ProduccionDiaria
	for _, p := range m.filas {
		if p.OperadorID == operadorID && int(p.Fecha.Month()) == mes && p.Fecha.Year() == anio {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Fecha.Before(result[j].Fecha) })
	return result, nil
}

func (m *mockProduccionRepo) ListMes(_ context.Context, mes, anio int) ([]model.ProduccionDiaria, error) {
	var result []model.ProduccionDiaria
	for _, p := range m.filas {
		if int(p.Fecha.Month()) == mes && p.Fecha.Year() == anio {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].MaquinaID != result[j].MaquinaID {
			return result[i].MaquinaID < result[j].MaquinaID
		}
		return result[i].Fecha.Before(result[j].Fecha)
	})
	return result, nil
}

func (m *mockProduccionRepo) ListMesPorMaquina(_ context.Context, maquinaID string, mes, anio int) ([]model.ProduccionDiaria, error) {
	var result []model.ProduccionDiaria
	for _, p := range m.filas {
		if p.MaquinaID == maquinaID && int(p.Fecha.Month()) == mes && p.Fecha.Year() == anio {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Fecha.Before(result[j].Fecha) })
	return result, nil
}

// ── Mock RendimientoRepository ──

type mockRendimientoRepo struct {
	filas map[string]*model.RendimientoMensualOperador
}

func newMockRendimientoRepo() *mockRendimientoRepo {
	return &mockRendimientoRepo{filas: make(map[string]*model.RendimientoMensualOperador)}
}

func claveRendimiento(operadorID string, mes, anio int) string {
	return fmt.Sprintf("%s|%02d|%d", operadorID, mes, anio)
}

func (m *mockRendimientoRepo) Upsert(_ context.Context, r *model.RendimientoMensualOperador) error {
	copia := *r
	m.filas[claveRendimiento(r.OperadorID, r.Mes, r.Anio)] = &copia
	return nil
}

func (m *mockRendimientoRepo) GetPorClave(_ context.Context, operadorID string, mes, anio int) (*model.RendimientoMensualOperador, error) {
	if r, ok := m.filas[claveRendimiento(operadorID, mes, anio)]; ok {
		copia := *r
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CalidadRepository ──

type mockCalidadRepo struct {
	filas map[string]*model.CalidadMensualMaquina
}

func newMockCalidadRepo() *mockCalidadRepo {
	return &mockCalidadRepo{filas: make(map[string]*model.CalidadMensualMaquina)}
}

func (m *mockCalidadRepo) Upsert(_ context.Context, calidad *model.CalidadMensualMaquina) error {
	clave := fmt.Sprintf("%02d|%d", calidad.Mes, calidad.Anio)
	if existente, ok := m.filas[clave]; ok {
		calidad.CalidadID = existente.CalidadID
	} else if calidad.CalidadID == "" {
		calidad.CalidadID = "cal-" + clave
	}
	copia := *calidad
	copia.Detalles = make([]model.CalidadMaquinaDetalle, len(calidad.Detalles))
	copy(copia.Detalles, calidad.Detalles)
	m.filas[clave] = &copia
	return nil
}

func (m *mockCalidadRepo) GetPorPeriodo(_ context.Context, mes, anio int) (*model.CalidadMensualMaquina, error) {
	if c, ok := m.filas[fmt.Sprintf("%02d|%d", mes, anio)]; ok {
		copia := *c
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock DesperdicioRepository ──

type mockDesperdicioRepo struct {
	registros []model.RegistroDesperdicio
	seq       int
}

func newMockDesperdicioRepo() *mockDesperdicioRepo {
	return &mockDesperdicioRepo{}
}

func (m *mockDesperdicioRepo) Create(_ context.Context, registro *model.RegistroDesperdicio) error {
	m.seq++
	if registro.DesperdicioID == "" {
		registro.DesperdicioID = fmt.Sprintf("desp-%03d", m.seq)
	}
	m.registros = append(m.registros, *registro)
	return nil
}

func (m *mockDesperdicioRepo) TotalDia(_ context.Context, maquinaID string, fecha time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, r := range m.registros {
		if r.MaquinaID == maquinaID && mismaFecha(r.Fecha, fecha) {
			total = total.Add(r.Cantidad)
		}
	}
	return total, nil
}

func (m *mockDesperdicioRepo) ListMes(_ context.Context, maquinaID string, mes, anio int) ([]model.RegistroDesperdicio, error) {
	var result []model.RegistroDesperdicio
	for _, r := range m.registros {
		if r.MaquinaID == maquinaID && int(r.Fecha.Month()) == mes && r.Fecha.Year() == anio {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Fecha.Before(result[j].Fecha) })
	return result, nil
}

// ── Armado de mocks ──

type mocks struct {
	maquinas    *mockMaquinaRepo
	operadores  *mockOperadorRepo
	codigos     *mockCodigoActividadRepo
	codigosDesp *mockCodigoDesperdicioRepo
	ordenes     *mockOrdenRepo
	turnos      *mockTurnoRepo
	registros   *mockRegistroRepo
	produccion  *mockProduccionRepo
	rendimiento *mockRendimientoRepo
	calidad     *mockCalidadRepo
	desperdicio *mockDesperdicioRepo
	repo        *repository.Repository
}

func newMocks() *mocks {
	m := &mocks{
		maquinas:    newMockMaquinaRepo(),
		operadores:  newMockOperadorRepo(),
		codigos:     newMockCodigoActividadRepo(),
		codigosDesp: newMockCodigoDesperdicioRepo(),
		ordenes:     newMockOrdenRepo(),
		turnos:      newMockTurnoRepo(),
		registros:   newMockRegistroRepo(),
		produccion:  newMockProduccionRepo(),
		rendimiento: newMockRendimientoRepo(),
		calidad:     newMockCalidadRepo(),
		desperdicio: newMockDesperdicioRepo(),
	}
	m.repo = &repository.Repository{
		Maquina:           m.maquinas,
		Operador:          m.operadores,
		CodigoActividad:   m.codigos,
		CodigoDesperdicio: m.codigosDesp,
		Orden:             m.ordenes,
		Turno:             m.turnos,
		Registro:          m.registros,
		Produccion:        m.produccion,
		Rendimiento:       m.rendimiento,
		Calidad:           m.calidad,
		Desperdicio:       m.desperdicio,
	}
	return m
}

// ── Semillas ──

func (m *mocks) sembrarMaquina(id string, meta int, valorPorTiro string, importancia int) *model.Maquina {
	maq := &model.Maquina{
		MaquinaID:        id,
		Nombre:           "Máquina " + id,
		Meta100Porciento: meta,
		ValorPorTiro:     decimal.RequireFromString(valorPorTiro),
		Importancia:      importancia,
		Activa:           true,
	}
	m.maquinas.maquinas[id] = maq
	return maq
}

func (m *mocks) sembrarOperador(id, codigo string) *model.Operador {
	op := &model.Operador{
		OperadorID: id,
		Nombre:     "Operador " + id,
		Codigo:     codigo,
		Activo:     true,
	}
	m.operadores.operadores[id] = op
	return op
}

func (m *mocks) sembrarCodigo(id, categoria string) *model.CodigoActividad {
	c := &model.CodigoActividad{
		CodigoActividadID: id,
		Nombre:            "Código " + id,
		Categoria:         categoria,
		EsProductiva:      categoria == model.CategoriaProductiva,
		Activo:            true,
	}
	m.codigos.codigos[id] = c
	return c
}

// sembrarTurnosLV lunes a viernes de 07:00 a 17:00
func (m *mocks) sembrarTurnosLV() {
	for dia := 1; dia <= 5; dia++ {
		m.turnos.turnos = append(m.turnos.turnos, model.TurnoLaboral{
			TurnoID:    fmt.Sprintf("turno-%d", dia),
			DiaSemana:  dia,
			HoraInicio: "07:00",
			HoraFin:    "17:00",
		})
	}
}

// sembrarRegistro inserta directamente un registro en el libro
func (m *mocks) sembrarRegistro(r model.RegistroActividad) {
	m.registros.seq++
	if r.RegistroID == "" {
		r.RegistroID = fmt.Sprintf("reg-%03d", m.registros.seq)
	}
	m.registros.registros = append(m.registros.registros, r)
}

func mismaFecha(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
