package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/model"
)

func setupTestCatalogoService(t *testing.T) (*mocks, CatalogoService) {
	t.Helper()
	m := newMocks()
	return m, NewCatalogoService(m.repo, zap.NewNop())
}

// icsDe arma un calendario mínimo con los eventos dados
func icsDe(eventos ...string) string {
	lineas := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//planta//turnos//ES",
	}
	lineas = append(lineas, eventos...)
	lineas = append(lineas, "END:VCALENDAR", "")
	return strings.Join(lineas, "\r\n")
}

func eventoICS(uid, inicio, fin string) string {
	return strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTART:" + inicio,
		"DTEND:" + fin,
		"SUMMARY:Turno",
		"END:VEVENT",
	}, "\r\n")
}

func TestImportarTurnosICS(t *testing.T) {
	m, svc := setupTestCatalogoService(t)

	// Calendario previo que la importación debe reemplazar por completo
	m.sembrarTurnosLV()

	// Lunes 10/3 y lunes 17/3 repiten la misma ventana (se deduplican);
	// martes 11/3 aporta otra; el evento con fin == inicio se descarta
	contenido := icsDe(
		eventoICS("1", "20250310T070000Z", "20250310T170000Z"),
		eventoICS("2", "20250317T070000Z", "20250317T170000Z"),
		eventoICS("3", "20250311T080000Z", "20250311T160000Z"),
		eventoICS("4", "20250312T090000Z", "20250312T090000Z"),
	)

	resp, err := svc.ImportarTurnosICS(context.Background(), strings.NewReader(contenido))
	if err != nil {
		t.Fatalf("ImportarTurnosICS falló: %v", err)
	}

	if resp.TurnosImportados != 2 {
		t.Fatalf("TurnosImportados = %d, se esperaban 2", resp.TurnosImportados)
	}
	lunes, martes := resp.Turnos[0], resp.Turnos[1]
	if lunes.DiaSemana != 1 || lunes.HoraInicio != "07:00" || lunes.HoraFin != "17:00" {
		t.Errorf("ventana del lunes = %+v", lunes)
	}
	if martes.DiaSemana != 2 || martes.HoraInicio != "08:00" || martes.HoraFin != "16:00" {
		t.Errorf("ventana del martes = %+v", martes)
	}

	// El calendario anterior desapareció
	if len(m.turnos.turnos) != 2 {
		t.Errorf("turnos persistidos = %d, se esperaban 2", len(m.turnos.turnos))
	}
}

func TestImportarTurnosICSInvalido(t *testing.T) {
	m, svc := setupTestCatalogoService(t)
	m.sembrarTurnosLV()

	_, err := svc.ImportarTurnosICS(context.Background(), strings.NewReader("esto no es un calendario"))
	if !errors.Is(err, ErrCalendarioInvalido) {
		t.Fatalf("error = %v, se esperaba ErrCalendarioInvalido", err)
	}
	// Nada se toca con un archivo inválido
	if len(m.turnos.turnos) != 5 {
		t.Errorf("turnos = %d, el calendario previo debía quedar intacto", len(m.turnos.turnos))
	}
}

func TestImportarTurnosICSVacio(t *testing.T) {
	m, svc := setupTestCatalogoService(t)
	m.sembrarTurnosLV()

	_, err := svc.ImportarTurnosICS(context.Background(), strings.NewReader(icsDe()))
	if !errors.Is(err, ErrCalendarioVacio) {
		t.Fatalf("error = %v, se esperaba ErrCalendarioVacio", err)
	}
	if len(m.turnos.turnos) != 5 {
		t.Errorf("turnos = %d, el calendario previo debía quedar intacto", len(m.turnos.turnos))
	}
}

func TestListarCatalogosSoloActivos(t *testing.T) {
	m, svc := setupTestCatalogoService(t)
	ctx := context.Background()

	m.sembrarMaquina("maq-1", 1000, "5", 50)
	inactiva := m.sembrarMaquina("maq-2", 800, "3", 20)
	inactiva.Activa = false

	m.sembrarOperador("op-1", "OP01")
	m.operadores.operadores["op-1"].PinHash = "$2a$10$hash-que-no-debe-salir"
	inactivo := m.sembrarOperador("op-2", "OP02")
	inactivo.Activo = false

	m.sembrarCodigo("cod-prod", model.CategoriaProductiva)

	maquinas, err := svc.ListarMaquinas(ctx)
	if err != nil {
		t.Fatalf("ListarMaquinas falló: %v", err)
	}
	if len(maquinas) != 1 || maquinas[0].MaquinaID != "maq-1" {
		t.Errorf("máquinas activas = %+v, se esperaba solo maq-1", maquinas)
	}
	if maquinas[0].ValorPorTiro != "5" {
		t.Errorf("ValorPorTiro = %q, se esperaba \"5\"", maquinas[0].ValorPorTiro)
	}

	operadores, err := svc.ListarOperadores(ctx)
	if err != nil {
		t.Fatalf("ListarOperadores falló: %v", err)
	}
	if len(operadores) != 1 || operadores[0].OperadorID != "op-1" {
		t.Errorf("operadores activos = %+v, se esperaba solo op-1", operadores)
	}

	codigos, err := svc.ListarCodigosActividad(ctx)
	if err != nil {
		t.Fatalf("ListarCodigosActividad falló: %v", err)
	}
	if len(codigos) != 1 || codigos[0].Categoria != model.CategoriaProductiva {
		t.Errorf("códigos = %+v", codigos)
	}
}

func TestListarTurnos(t *testing.T) {
	m, svc := setupTestCatalogoService(t)
	m.sembrarTurnosLV()

	turnos, err := svc.ListarTurnos(context.Background())
	if err != nil {
		t.Fatalf("ListarTurnos falló: %v", err)
	}
	if len(turnos) != 5 {
		t.Fatalf("turnos = %d, se esperaban 5", len(turnos))
	}
	if turnos[0].DiaSemana != 1 || turnos[0].HoraInicio != "07:00" || turnos[0].HoraFin != "17:00" {
		t.Errorf("primer turno = %+v", turnos[0])
	}
}
