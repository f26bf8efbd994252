package router

import (
	"time"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/config"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/handler"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/middleware"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	productoRepo := repository.NewProductoRepository(db)
	recetaRepo := repository.NewRecetaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoStockRepo)
	productoSvc := service.NewProductoService(productoRepo, inventarioSvc)
	cartaSvc := service.NewCartaService(recetaRepo, rdb)
	recetaSvc := service.NewRecetaService(recetaRepo, productoRepo, cartaSvc)
	clienteSvc := service.NewClienteService(clienteRepo)
	mesaSvc := service.NewMesaService(mesaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, recetaRepo, productoRepo, inventarioSvc, clienteSvc, mesaSvc, dispatcher)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, inventarioSvc)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc, inventarioSvc)
	recetasH := handler.NewRecetasHandler(recetaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	mesasH := handler.NewMesasHandler(mesaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	cartaH := handler.NewCartaHandler(cartaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/v1/carta", cartaH.GetCarta)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	atencion := middleware.RequireRole("cajero", "mesero", "supervisor", "administrador")
	gestion := middleware.RequireRole("supervisor", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		// Ventas: todo el personal de atención registra y avanza pedidos;
		// la eliminación queda para supervisión.
		v1.POST("/ventas", atencion, ventasH.RegistrarVenta)
		v1.GET("/ventas", atencion, ventasH.ListarVentas)
		v1.GET("/ventas/:id", atencion, ventasH.ObtenerVenta)
		v1.PATCH("/ventas/:id/estado", atencion, ventasH.ActualizarEstado)
		v1.DELETE("/ventas/:id", gestion, ventasH.EliminarVenta)

		v1.GET("/productos", atencion, productosH.ListarProductos)
		v1.GET("/productos/:id", atencion, productosH.ObtenerProducto)
		v1.GET("/productos/:id/movimientos", gestion, productosH.Movimientos)
		v1.PATCH("/productos/:id/stock", gestion, productosH.AjustarStock)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.CrearProducto)
			prods.PATCH("/:id", productosH.ActualizarProducto)
			prods.DELETE("/:id", productosH.EliminarProducto)
		}

		v1.GET("/recetas", atencion, recetasH.ListarRecetas)
		v1.GET("/recetas/:id", atencion, recetasH.ObtenerReceta)
		recetas := v1.Group("/recetas", gestion)
		{
			recetas.POST("", recetasH.CrearReceta)
			recetas.PATCH("/:id", recetasH.ActualizarReceta)
			recetas.DELETE("/:id", recetasH.EliminarReceta)
		}

		v1.GET("/mesas", atencion, mesasH.ListarMesas)
		v1.GET("/mesas/:id", atencion, mesasH.ObtenerMesa)
		v1.PATCH("/mesas/:id/estado", atencion, mesasH.ActualizarEstado)
		mesas := v1.Group("/mesas", admin)
		{
			mesas.POST("", mesasH.CrearMesa)
			mesas.PATCH("/:id", mesasH.ActualizarMesa)
			mesas.DELETE("/:id", mesasH.EliminarMesa)
		}

		v1.GET("/clientes", atencion, clientesH.ListarClientes)
		v1.GET("/clientes/:id", atencion, clientesH.ObtenerCliente)
		v1.POST("/clientes", atencion, clientesH.CrearCliente)
		v1.PATCH("/clientes/:id", gestion, clientesH.ActualizarCliente)
		v1.DELETE("/clientes/:id", gestion, clientesH.EliminarCliente)

		compras := v1.Group("/compras", gestion)
		{
			compras.POST("", comprasH.RegistrarCompra)
			compras.GET("", comprasH.ListarCompras)
			compras.GET("/:id", comprasH.ObtenerCompra)
		}

		v1.GET("/categorias", atencion, categoriasH.ListarCategorias)
		v1.GET("/categorias/:id", atencion, categoriasH.ObtenerCategoria)
		categorias := v1.Group("/categorias", admin)
		{
			categorias.POST("", categoriasH.CrearCategoria)
			categorias.PATCH("/:id", categoriasH.ActualizarCategoria)
			categorias.DELETE("/:id", categoriasH.EliminarCategoria)
		}

		proveedores := v1.Group("/proveedores", gestion)
		{
			proveedores.POST("", proveedoresH.CrearProveedor)
			proveedores.GET("", proveedoresH.ListarProveedores)
			proveedores.GET("/:id", proveedoresH.ObtenerProveedor)
			proveedores.PATCH("/:id", proveedoresH.ActualizarProveedor)
			proveedores.DELETE("/:id", proveedoresH.EliminarProveedor)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PATCH("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
