package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/config"
)

// Client envoltorio del cliente Redis.
// Guarda el estado del cronómetro de cada sesión de tablet; el servicio
// serializa (JSON) y este paquete solo maneja bytes con TTL.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient crea la conexión a Redis y verifica con Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conexión a Redis falló: %w", err)
	}

	logger.Info("conexión a Redis establecida", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Estado de cronómetro por sesión ──

const cronometroPrefix = "cronometro:sesion:"

// GuardarSesion persiste el estado serializado del cronómetro de una sesión
func (c *Client) GuardarSesion(ctx context.Context, sesionID string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, cronometroPrefix+sesionID, data, ttl).Err()
}

// ObtenerSesion recupera el estado del cronómetro; (nil, nil) si no existe
func (c *Client) ObtenerSesion(ctx context.Context, sesionID string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, cronometroPrefix+sesionID).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// EliminarSesion borra el estado del cronómetro de una sesión
func (c *Client) EliminarSesion(ctx context.Context, sesionID string) error {
	return c.rdb.Del(ctx, cronometroPrefix+sesionID).Err()
}

// Close cierra la conexión
func (c *Client) Close() error {
	return c.rdb.Close()
}
