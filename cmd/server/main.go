package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/config"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/api/handler"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/api/router"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/service"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/database"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/jwt"
	applogger "github.com/estebanmar24/Software-Tablets-sub001/pkg/logger"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/redis"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error cargando configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("arrancando aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conectar base de datos
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("conexión a base de datos falló", zap.Error(err))
	}

	// 3.1 Aplicar migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error obteniendo sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migraciones fallaron", zap.Error(err))
	}

	// 4. Conectar Redis. Si falla, el cronómetro degrada a estado en memoria:
	// las sesiones no sobreviven un reinicio del servidor, pero la planta
	// sigue operando.
	var store service.CronometroStore
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis no disponible, cronómetro en memoria", zap.Error(err))
		rdb = nil
		store = service.NewMemoriaCronometroStore()
	} else {
		store = service.NewRedisCronometroStore(rdb, cfg.Planta.SesionCronometroTTL)
	}

	// 5. Zona horaria de planta: fija las fechas de los registros
	loc, err := time.LoadLocation(cfg.Planta.Timezone)
	if err != nil {
		logger.Fatal("zona horaria de planta inválida",
			zap.String("timezone", cfg.Planta.Timezone), zap.Error(err))
	}

	// 6. Gestor de tokens de sesión
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, store, loc, logger)
	h := handler.NewHandler(svc)

	// 8. Rutas
	engine := router.Setup(cfg, h, jwtMgr, logger)

	// 9. Servidor HTTP con cierre ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor HTTP falló", zap.Error(err))
		}
	}()

	// 10. Señales del sistema: cierre ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de cierre recibida", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error cerrando servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}
