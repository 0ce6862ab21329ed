package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/auth"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	EmpresaUC      *usecase.EmpresaUseCase
	ClienteUC      *usecase.ClienteUseCase
	ProyectoUC     *usecase.ProyectoUseCase
	OportunidadUC  *usecase.OportunidadUseCase
	TareaUC        *usecase.TareaUseCase
	ProductoUC     *usecase.ProductoUseCase
	InteraccionUC  *usecase.InteraccionUseCase
	NotificacionUC *usecase.NotificacionUseCase
	MetricasUC     *usecase.MetricasUseCase
	ExportUC       *usecase.ExportUseCase
	Usuarios       repository.UsuarioRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Usuarios))

	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Post("/:id/desactivar", usuarioHandler.Desactivar)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	proyectos := protected.Group("/proyectos")
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	proyectos.Post("/", proyectoHandler.Create)
	proyectos.Get("/", proyectoHandler.List)
	proyectos.Get("/:id", proyectoHandler.GetByID)
	proyectos.Put("/:id", proyectoHandler.Update)
	proyectos.Delete("/:id", proyectoHandler.Delete)

	oportunidades := protected.Group("/oportunidades")
	oportunidadHandler := NewOportunidadHandler(deps.OportunidadUC)
	oportunidades.Post("/", oportunidadHandler.Create)
	oportunidades.Get("/", oportunidadHandler.List)
	oportunidades.Get("/:id", oportunidadHandler.GetByID)
	oportunidades.Put("/:id", oportunidadHandler.Update)
	oportunidades.Delete("/:id", oportunidadHandler.Delete)

	tareas := protected.Group("/tareas")
	tareaHandler := NewTareaHandler(deps.TareaUC)
	tareas.Post("/", tareaHandler.Create)
	tareas.Get("/", tareaHandler.List)
	tareas.Get("/:id", tareaHandler.GetByID)
	tareas.Put("/:id", tareaHandler.Update)
	tareas.Delete("/:id", tareaHandler.Delete)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	interacciones := protected.Group("/interacciones")
	interaccionHandler := NewInteraccionHandler(deps.InteraccionUC)
	interacciones.Post("/", interaccionHandler.Create)
	interacciones.Get("/", interaccionHandler.List)
	interacciones.Get("/:id", interaccionHandler.GetByID)
	interacciones.Put("/:id", interaccionHandler.Update)
	interacciones.Delete("/:id", interaccionHandler.Delete)

	notificaciones := protected.Group("/notificaciones")
	notificacionHandler := NewNotificacionHandler(deps.NotificacionUC)
	notificaciones.Post("/", notificacionHandler.Create)
	notificaciones.Get("/", notificacionHandler.List)
	notificaciones.Post("/:id/leida", notificacionHandler.MarcarLeida)
	notificaciones.Delete("/:id", notificacionHandler.Delete)

	// Reportes
	dashboardHandler := NewDashboardHandler(deps.MetricasUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export/:coleccion", exportHandler.Exportar)
	protected.Get("/reportes/resumen", exportHandler.ResumenPDF)
}
