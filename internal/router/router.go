package router

import (
	"time"

	"tiendaropa/internal/config"
	"tiendaropa/internal/handler"
	"tiendaropa/internal/middleware"
	"tiendaropa/internal/repository"
	"tiendaropa/internal/service"
	"tiendaropa/internal/worker"

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
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	compraRepo := repository.NewCompraInsumoRepository(db)
	usoRepo := repository.NewUsoInsumoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	tallaRepo := repository.NewTallaRepository(db)
	patronRepo := repository.NewPatronRepository(db)
	colaboradorRepo := repository.NewColaboradorRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(clienteRepo, cfg)
	inventarioSvc := service.NewInventarioService(productoRepo, insumoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, productoRepo, inventarioSvc, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo)
	insumoSvc := service.NewInsumoService(insumoRepo, compraRepo, usoRepo, inventarioSvc)
	clienteSvc := service.NewClienteService(clienteRepo)
	catalogoSvc := service.NewCatalogoService(categoriaRepo, tallaRepo, patronRepo, colaboradorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	productosH := handler.NewProductosHandler(productoSvc, inventarioSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc, inventarioSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	adminH := handler.NewAdminHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Vistas del cliente autenticado: el token emitido en login es la única
	// credencial, no hace falta la llave de API.
	mi := r.Group("/v1/mi", middleware.JWTAuth(cfg.JWTSecret))
	{
		mi.GET("/perfil", clientesH.MiPerfil)
		mi.GET("/pedidos", pedidosH.MisPedidos)
	}

	// Operaciones de operación/monitoreo, solo para tokens con es_admin.
	admin := r.Group("/v1/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/notificaciones/dlq", adminH.DLQNotificaciones)
	}

	// El panel de administración completo va detrás de la llave compartida.
	v1 := r.Group("/v1", middleware.APIKeyAuth(cfg.APIKey))
	{
		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.PUT("/:id", pedidosH.Reemplazar)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
			productos.PATCH("/:id/stock", productosH.AjustarStock)
		}

		insumos := v1.Group("/insumos")
		{
			insumos.POST("", insumosH.Crear)
			insumos.GET("", insumosH.Listar)
			insumos.GET("/:id", insumosH.Obtener)
			insumos.PUT("/:id", insumosH.Actualizar)
			insumos.DELETE("/:id", insumosH.Eliminar)
			insumos.PATCH("/:id/stock", insumosH.AjustarStock)
		}

		v1.POST("/compras-insumo", insumosH.RegistrarCompra)
		v1.GET("/compras-insumo", insumosH.ListarCompras)
		v1.POST("/usos-insumo", insumosH.RegistrarUso)
		v1.GET("/usos-insumo", insumosH.ListarUsos)

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", catalogoH.CrearCategoria)
			categorias.GET("", catalogoH.ListarCategorias)
			categorias.GET("/:id", catalogoH.ObtenerCategoria)
			categorias.PUT("/:id", catalogoH.ActualizarCategoria)
			categorias.DELETE("/:id", catalogoH.EliminarCategoria)
		}

		tallas := v1.Group("/tallas")
		{
			tallas.POST("", catalogoH.CrearTalla)
			tallas.GET("", catalogoH.ListarTallas)
			tallas.DELETE("/:id", catalogoH.EliminarTalla)
		}

		patrones := v1.Group("/patrones")
		{
			patrones.POST("", catalogoH.CrearPatron)
			patrones.GET("", catalogoH.ListarPatrones)
			patrones.PUT("/:id", catalogoH.ActualizarPatron)
			patrones.DELETE("/:id", catalogoH.EliminarPatron)
		}

		colaboradores := v1.Group("/colaboradores")
		{
			colaboradores.POST("", catalogoH.CrearColaborador)
			colaboradores.GET("", catalogoH.ListarColaboradores)
			colaboradores.GET("/:id", catalogoH.ObtenerColaborador)
			colaboradores.PUT("/:id", catalogoH.ActualizarColaborador)
			colaboradores.DELETE("/:id", catalogoH.EliminarColaborador)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
