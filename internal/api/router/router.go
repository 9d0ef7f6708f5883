package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/estebanmar24/Software-Tablets-sub001/config"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/api/handler"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/api/middleware"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/jwt"
)

// Setup inicializa y devuelve el motor de rutas de Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Apertura de sesión (sin autenticación)
		v1.POST("/sesiones", h.Sesion.Abrir)

		autorizado := v1.Group("")
		autorizado.Use(middleware.SesionAuth(jwtMgr))
		{
			// Cronómetro de la sesión
			cronometro := autorizado.Group("/cronometro")
			{
				cronometro.GET("", h.Cronometro.Estado)
				cronometro.POST("/iniciar", h.Cronometro.Iniciar)
				cronometro.POST("/pausar", h.Cronometro.Pausar)
				cronometro.POST("/reanudar", h.Cronometro.Reanudar)
				cronometro.POST("/detener", h.Cronometro.Detener)
			}

			// Libro de actividades
			actividades := autorizado.Group("/actividades")
			{
				actividades.POST("", h.Actividad.Crear)
				actividades.GET("", h.Actividad.Listar)
			}

			// Rollup diario de producción
			produccion := autorizado.Group("/produccion")
			{
				produccion.GET("", h.Produccion.Obtener)
				produccion.POST("/recalcular", h.Produccion.Recalcular)
				produccion.POST("/recalcular-rango", h.Produccion.RecalcularRango)
			}

			// Resumen mensual de operadores
			rendimientos := autorizado.Group("/rendimientos")
			{
				rendimientos.POST("/recalcular", h.Rendimiento.Recalcular)
				rendimientos.GET("/:operador_id", h.Rendimiento.Obtener)
			}

			// Calidad mensual de planta
			calidad := autorizado.Group("/calidad")
			{
				calidad.GET("", h.Calidad.Obtener)
				calidad.POST("/recalcular", h.Calidad.Recalcular)
			}

			// Libro de desperdicio
			desperdicios := autorizado.Group("/desperdicios")
			{
				desperdicios.POST("", h.Desperdicio.Crear)
				desperdicios.GET("/total", h.Desperdicio.TotalDia)
				desperdicios.GET("/reporte", h.Desperdicio.ReporteMensual)
			}

			// Exportación
			exportar := autorizado.Group("/exportar")
			{
				exportar.GET("/produccion", h.Exportar.Produccion)
				exportar.GET("/desperdicios", h.Exportar.Desperdicios)
			}

			// Catálogos y turnos
			autorizado.GET("/maquinas", h.Catalogo.ListarMaquinas)
			autorizado.GET("/operadores", h.Catalogo.ListarOperadores)
			autorizado.GET("/codigos-actividad", h.Catalogo.ListarCodigosActividad)
			autorizado.GET("/codigos-desperdicio", h.Catalogo.ListarCodigosDesperdicio)
			autorizado.GET("/turnos", h.Catalogo.ListarTurnos)
			autorizado.POST("/turnos/importar-ics", h.Catalogo.ImportarTurnos)
		}
	}

	return r
}
