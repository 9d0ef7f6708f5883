package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/estebanmar24/Software-Tablets-sub001/pkg/redis"
)

// CronometroStore persistencia del estado del cronómetro por sesión.
// Cada sesión de tablet es dueña de su propia instancia de estado; no hay
// estado global compartido entre sesiones.
type CronometroStore interface {
	// Obtener devuelve (nil, nil) si la sesión no tiene cronómetro
	Obtener(ctx context.Context, sesionID string) (*SesionCronometro, error)
	Guardar(ctx context.Context, sesionID string, s *SesionCronometro) error
	Eliminar(ctx context.Context, sesionID string) error
}

// ── Implementación Redis ──
// Sobrevive reinicios del servidor y suspensiones largas de la tablet: el
// tiempo transcurrido se deriva siempre del reloj de pared, nunca de un
// contador en memoria.

type redisCronometroStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCronometroStore crea el store respaldado en Redis
func NewRedisCronometroStore(client *redis.Client, ttl time.Duration) CronometroStore {
	return &redisCronometroStore{client: client, ttl: ttl}
}

func (s *redisCronometroStore) Obtener(ctx context.Context, sesionID string) (*SesionCronometro, error) {
	data, err := s.client.ObtenerSesion(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var sc SesionCronometro
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *redisCronometroStore) Guardar(ctx context.Context, sesionID string, sc *SesionCronometro) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.GuardarSesion(ctx, sesionID, data, s.ttl)
}

func (s *redisCronometroStore) Eliminar(ctx context.Context, sesionID string) error {
	return s.client.EliminarSesion(ctx, sesionID)
}

// ── Implementación en memoria ──
// Modo degradado cuando Redis no está disponible, y soporte de pruebas.

type memoriaCronometroStore struct {
	mu       sync.RWMutex
	sesiones map[string]SesionCronometro
}

// NewMemoriaCronometroStore crea el store en memoria
func NewMemoriaCronometroStore() CronometroStore {
	return &memoriaCronometroStore{sesiones: make(map[string]SesionCronometro)}
}

func (s *memoriaCronometroStore) Obtener(_ context.Context, sesionID string) (*SesionCronometro, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.sesiones[sesionID]
	if !ok {
		return nil, nil
	}
	copia := sc
	return &copia, nil
}

func (s *memoriaCronometroStore) Guardar(_ context.Context, sesionID string, sc *SesionCronometro) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sesiones[sesionID] = *sc
	return nil
}

func (s *memoriaCronometroStore) Eliminar(_ context.Context, sesionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sesiones, sesionID)
	return nil
}
