package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

// relojFijo reloj inyectable que las pruebas avanzan a mano
type relojFijo struct {
	ahora time.Time
}

func (r *relojFijo) avanzar(d time.Duration) { r.ahora = r.ahora.Add(d) }

func setupTestCronometroService(t *testing.T) (*mocks, *cronometroService, *relojFijo) {
	t.Helper()
	m := newMocks()
	m.sembrarMaquina("maq-1", 1000, "5", 50)
	m.sembrarOperador("op-1", "OP01")
	m.sembrarCodigo("cod-prod", model.CategoriaProductiva)
	m.sembrarTurnosLV()

	// Lunes 10 de marzo de 2025, 08:00
	reloj := &relojFijo{ahora: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	svc := &cronometroService{
		store:     NewMemoriaCronometroStore(),
		actividad: NewActividadService(m.repo, time.UTC, zap.NewNop()),
		logger:    zap.NewNop(),
		ahora:     func() time.Time { return reloj.ahora },
	}
	return m, svc, reloj
}

func iniciarReq() *dto.IniciarCronometroRequest {
	return &dto.IniciarCronometroRequest{
		MaquinaID:         "maq-1",
		CodigoActividadID: "cod-prod",
	}
}

func TestCronometroFlujoCompleto(t *testing.T) {
	m, svc, reloj := setupTestCronometroService(t)
	ctx := context.Background()

	resp, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq())
	if err != nil {
		t.Fatalf("Iniciar falló: %v", err)
	}
	if resp.Estado != EstadoCorriendo {
		t.Fatalf("Estado = %q, se esperaba corriendo", resp.Estado)
	}

	// 10 minutos corriendo, pausa de 5 que no cuenta, 5 más corriendo
	reloj.avanzar(10 * time.Minute)
	resp, err = svc.Pausar(ctx, "ses-1")
	if err != nil {
		t.Fatalf("Pausar falló: %v", err)
	}
	if resp.Estado != EstadoPausado {
		t.Fatalf("Estado = %q, se esperaba pausado", resp.Estado)
	}
	if resp.TranscurridoSegundos != 600 {
		t.Errorf("TranscurridoSegundos = %v, se esperaban 600", resp.TranscurridoSegundos)
	}

	reloj.avanzar(5 * time.Minute)
	estado, err := svc.Estado(ctx, "ses-1")
	if err != nil {
		t.Fatalf("Estado falló: %v", err)
	}
	if estado.TranscurridoSegundos != 600 {
		t.Errorf("el tiempo avanzó durante la pausa: %v", estado.TranscurridoSegundos)
	}

	if _, err := svc.Reanudar(ctx, "ses-1"); err != nil {
		t.Fatalf("Reanudar falló: %v", err)
	}
	reloj.avanzar(5 * time.Minute)

	detenido, err := svc.Detener(ctx, "ses-1", "op-1", &dto.DetenerCronometroRequest{Tiros: 120, Desperdicio: 2.5})
	if err != nil {
		t.Fatalf("Detener falló: %v", err)
	}
	if detenido.DuracionMinutos != 15 {
		t.Errorf("DuracionMinutos = %v, se esperaban 15", detenido.DuracionMinutos)
	}
	if detenido.Registro == nil {
		t.Fatal("Detener no produjo registro en el libro")
	}
	if detenido.Registro.Tiros != 120 || detenido.Registro.Desperdicio != "2.50" {
		t.Errorf("registro = %d tiros, %q desperdicio", detenido.Registro.Tiros, detenido.Registro.Desperdicio)
	}
	if !detenido.Registro.EsHorarioLaboral {
		t.Error("registro de las 08:00 de un lunes debía ser horario laboral")
	}
	if len(m.registros.registros) != 1 {
		t.Errorf("registros en el libro = %d, se esperaba 1", len(m.registros.registros))
	}

	estado, err = svc.Estado(ctx, "ses-1")
	if err != nil {
		t.Fatalf("Estado tras detener falló: %v", err)
	}
	if estado.Estado != EstadoInactivo {
		t.Errorf("Estado = %q tras detener, se esperaba inactivo", estado.Estado)
	}
}

func TestCronometroTransicionesInvalidas(t *testing.T) {
	_, svc, _ := setupTestCronometroService(t)
	ctx := context.Background()

	if _, err := svc.Pausar(ctx, "ses-1"); !errors.Is(err, ErrCronometroInactivo) {
		t.Errorf("Pausar inactivo: error = %v", err)
	}
	if _, err := svc.Reanudar(ctx, "ses-1"); !errors.Is(err, ErrCronometroInactivo) {
		t.Errorf("Reanudar inactivo: error = %v", err)
	}
	if _, err := svc.Detener(ctx, "ses-1", "op-1", &dto.DetenerCronometroRequest{}); !errors.Is(err, ErrCronometroInactivo) {
		t.Errorf("Detener inactivo: error = %v", err)
	}

	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); err != nil {
		t.Fatalf("Iniciar falló: %v", err)
	}
	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); !errors.Is(err, ErrCronometroYaCorriendo) {
		t.Errorf("Iniciar corriendo: error = %v", err)
	}
	if _, err := svc.Reanudar(ctx, "ses-1"); !errors.Is(err, ErrCronometroNoPausado) {
		t.Errorf("Reanudar corriendo: error = %v", err)
	}

	if _, err := svc.Pausar(ctx, "ses-1"); err != nil {
		t.Fatalf("Pausar falló: %v", err)
	}
	if _, err := svc.Pausar(ctx, "ses-1"); !errors.Is(err, ErrCronometroNoCorriendo) {
		t.Errorf("Pausar pausado: error = %v", err)
	}
}

func TestCronometroIniciarDesdePausado(t *testing.T) {
	m, svc, reloj := setupTestCronometroService(t)
	ctx := context.Background()

	m.sembrarMaquina("maq-2", 500, "3", 20)

	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); err != nil {
		t.Fatalf("Iniciar falló: %v", err)
	}
	reloj.avanzar(4 * time.Minute)
	if _, err := svc.Pausar(ctx, "ses-1"); err != nil {
		t.Fatalf("Pausar falló: %v", err)
	}

	// Misma máquina y actividad: iniciar equivale a reanudar
	resp, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq())
	if err != nil {
		t.Fatalf("Iniciar desde pausado falló: %v", err)
	}
	if resp.Estado != EstadoCorriendo {
		t.Errorf("Estado = %q, se esperaba corriendo", resp.Estado)
	}
	if resp.TranscurridoSegundos != 240 {
		t.Errorf("TranscurridoSegundos = %v, se esperaban 240 preservados", resp.TranscurridoSegundos)
	}

	// Otra máquina: error explícito, nunca se pisa el intervalo pausado
	if _, err := svc.Pausar(ctx, "ses-1"); err != nil {
		t.Fatalf("Pausar falló: %v", err)
	}
	otro := iniciarReq()
	otro.MaquinaID = "maq-2"
	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", otro); !errors.Is(err, ErrIntervaloDistinto) {
		t.Errorf("Iniciar otra máquina desde pausado: error = %v", err)
	}
}

func TestCronometroSuspensionSinDeriva(t *testing.T) {
	_, svc, reloj := setupTestCronometroService(t)
	ctx := context.Background()

	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); err != nil {
		t.Fatalf("Iniciar falló: %v", err)
	}

	// La tablet se suspende tres horas: al volver, el transcurrido se deriva
	// del reloj de pared, no de un contador en memoria
	reloj.avanzar(3 * time.Hour)
	estado, err := svc.Estado(ctx, "ses-1")
	if err != nil {
		t.Fatalf("Estado falló: %v", err)
	}
	if estado.TranscurridoSegundos != 3*3600 {
		t.Errorf("TranscurridoSegundos = %v, se esperaban %d", estado.TranscurridoSegundos, 3*3600)
	}
}

func TestCronometroDetenerConFalloMantieneIntervalo(t *testing.T) {
	m, svc, reloj := setupTestCronometroService(t)
	ctx := context.Background()

	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); err != nil {
		t.Fatalf("Iniciar falló: %v", err)
	}
	reloj.avanzar(10 * time.Minute)

	m.registros.failCreate = errors.New("fallo de almacenamiento")
	if _, err := svc.Detener(ctx, "ses-1", "op-1", &dto.DetenerCronometroRequest{Tiros: 50}); err == nil {
		t.Fatal("Detener debía fallar con el libro caído")
	}

	// El intervalo sigue abierto y el reintento lo cierra
	estado, err := svc.Estado(ctx, "ses-1")
	if err != nil {
		t.Fatalf("Estado falló: %v", err)
	}
	if estado.Estado != EstadoCorriendo {
		t.Fatalf("Estado = %q tras el fallo, se esperaba corriendo", estado.Estado)
	}

	m.registros.failCreate = nil
	detenido, err := svc.Detener(ctx, "ses-1", "op-1", &dto.DetenerCronometroRequest{Tiros: 50})
	if err != nil {
		t.Fatalf("reintento de Detener falló: %v", err)
	}
	if detenido.DuracionMinutos != 10 {
		t.Errorf("DuracionMinutos = %v, se esperaban 10", detenido.DuracionMinutos)
	}
}

func TestCronometroSesionesIndependientes(t *testing.T) {
	m, svc, _ := setupTestCronometroService(t)
	ctx := context.Background()

	m.sembrarOperador("op-2", "OP02")

	if _, err := svc.Iniciar(ctx, "ses-1", "op-1", iniciarReq()); err != nil {
		t.Fatalf("Iniciar ses-1 falló: %v", err)
	}

	// Cada sesión es dueña de su cronómetro: la segunda empieza inactiva
	estado, err := svc.Estado(ctx, "ses-2")
	if err != nil {
		t.Fatalf("Estado ses-2 falló: %v", err)
	}
	if estado.Estado != EstadoInactivo {
		t.Fatalf("Estado ses-2 = %q, se esperaba inactivo", estado.Estado)
	}
	if _, err := svc.Iniciar(ctx, "ses-2", "op-2", iniciarReq()); err != nil {
		t.Errorf("Iniciar ses-2 falló: %v", err)
	}
}
