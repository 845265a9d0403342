package router

import (
	"time"

	"sistemagestion/internal/config"
	"sistemagestion/internal/handler"
	"sistemagestion/internal/middleware"
	"sistemagestion/internal/repository"
	"sistemagestion/internal/service"
	"sistemagestion/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	chequeRepo := repository.NewChequeRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	compraRepo := repository.NewCompraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	ledgerSvc := service.NewLedgerService(clienteRepo, proveedorRepo, chequeRepo, rdb)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	chequeSvc := service.NewChequeService(chequeRepo)
	movimientoSvc := service.NewMovimientoService(movimientoRepo, pagoRepo, clienteRepo, proveedorRepo, ledgerSvc)
	pagoSvc := service.NewPagoService(pagoRepo, movimientoRepo, ledgerSvc)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, ledgerSvc)
	dispatcher := worker.NewDispatcher(rdb)
	resumenSvc := service.NewResumenService(clienteRepo, proveedorRepo, movimientoRepo, rdb, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	chequesH := handler.NewChequesHandler(chequeSvc, cfg.ChequeAlertaDias)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operadores := middleware.RequireRole("operador", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", operadores, clientesH.Crear)
			clientes.GET("", operadores, clientesH.Listar)
			clientes.GET("/:id", operadores, clientesH.Obtener)
			clientes.PUT("/:id", operadores, clientesH.Actualizar)
			clientes.DELETE("/:id", admin, clientesH.Eliminar)
			clientes.POST("/:id/reactivar", admin, clientesH.Reactivar)
			clientes.GET("/:id/resumen", operadores, resumenH.ResumenCliente)
			clientes.GET("/:id/resumen/pdf", operadores, resumenH.ResumenClientePDF)
			clientes.POST("/:id/resumen/enviar", operadores, resumenH.EnviarResumenCliente)
		}

		proveedores := v1.Group("/proveedores")
		{
			proveedores.POST("", operadores, proveedoresH.Crear)
			proveedores.GET("", operadores, proveedoresH.Listar)
			proveedores.GET("/:id", operadores, proveedoresH.Obtener)
			proveedores.PUT("/:id", operadores, proveedoresH.Actualizar)
			proveedores.DELETE("/:id", admin, proveedoresH.Eliminar)
			proveedores.POST("/:id/reactivar", admin, proveedoresH.Reactivar)
			proveedores.GET("/:id/resumen", operadores, resumenH.ResumenProveedor)
			proveedores.GET("/:id/resumen/pdf", operadores, resumenH.ResumenProveedorPDF)
			proveedores.POST("/:id/resumen/enviar", operadores, resumenH.EnviarResumenProveedor)
		}

		movimientos := v1.Group("/movimientos", operadores)
		{
			movimientos.POST("", movimientosH.Crear)
			movimientos.GET("", movimientosH.Listar)
			movimientos.GET("/:id", movimientosH.Obtener)
			movimientos.PUT("/:id/estado", movimientosH.CambiarEstado)
			movimientos.DELETE("/:id", movimientosH.Eliminar)
		}

		pagos := v1.Group("/pagos", operadores)
		{
			pagos.POST("", pagosH.Crear)
			pagos.GET("", pagosH.ListarPorMovimiento)
			pagos.GET("/:id", pagosH.Obtener)
			pagos.DELETE("/:id", pagosH.Eliminar)
		}

		compras := v1.Group("/compras", operadores)
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.Obtener)
			compras.PUT("/:id/estado", comprasH.CambiarEstado)
			compras.DELETE("/:id", comprasH.Eliminar)
		}

		cheques := v1.Group("/cheques", operadores)
		{
			cheques.POST("", chequesH.Crear)
			cheques.GET("", chequesH.Listar)
			cheques.GET("/por-vencer", chequesH.PorVencer)
			cheques.GET("/:id", chequesH.Obtener)
			cheques.PUT("/:id", chequesH.Actualizar)
			cheques.DELETE("/:id", chequesH.Eliminar)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
			usuarios.POST("/:id/reactivar", authH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
