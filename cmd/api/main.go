package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/grxsoft/crm-api/internal/application/auth"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/infrastructure/export"
	infrapdf "github.com/grxsoft/crm-api/internal/infrastructure/pdf"
	"github.com/grxsoft/crm-api/internal/infrastructure/postgres"
	"github.com/grxsoft/crm-api/internal/infrastructure/storage"
	httpRouter "github.com/grxsoft/crm-api/internal/interfaces/http"
	"github.com/grxsoft/crm-api/pkg/config"
	"github.com/grxsoft/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool, cfg.DB.Timeout)
	empresaRepo := postgres.NewEmpresaRepository(pool, cfg.DB.Timeout)
	clienteRepo := postgres.NewClienteRepository(pool, cfg.DB.Timeout)
	proyectoRepo := postgres.NewProyectoRepository(pool, cfg.DB.Timeout)
	oportunidadRepo := postgres.NewOportunidadRepository(pool, cfg.DB.Timeout)
	tareaRepo := postgres.NewTareaRepository(pool, cfg.DB.Timeout)
	productoRepo := postgres.NewProductoRepository(pool, cfg.DB.Timeout)
	interaccionRepo := postgres.NewInteraccionRepository(pool, cfg.DB.Timeout)
	notificacionRepo := postgres.NewNotificacionRepository(pool, cfg.DB.Timeout)
	metricasRepo := postgres.NewMetricasRepository(pool)

	adjuntos, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage de adjuntos")
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proyectoUC := usecase.NewProyectoUseCase(proyectoRepo)
	oportunidadUC := usecase.NewOportunidadUseCase(oportunidadRepo)
	tareaUC := usecase.NewTareaUseCase(tareaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	interaccionUC := usecase.NewInteraccionUseCase(interaccionRepo, clienteRepo, adjuntos)
	notificacionUC := usecase.NewNotificacionUseCase(notificacionRepo)
	metricasUC := usecase.NewMetricasUseCase(metricasRepo)
	exportUC := usecase.NewExportUseCase(usecase.ExportDeps{
		Clientes:      clienteRepo,
		Proyectos:     proyectoRepo,
		Oportunidades: oportunidadRepo,
		Tareas:        tareaRepo,
		Productos:     productoRepo,
		Usuarios:      usuarioRepo,
		Interacciones: interaccionRepo,
		Empresas:      empresaRepo,
		Metricas:      metricasRepo,
		Hojas:         export.NewExcelExporter(),
		PDF:           infrapdf.NewMarotoReporteGenerator(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UsuarioUC:      usuarioUC,
		EmpresaUC:      empresaUC,
		ClienteUC:      clienteUC,
		ProyectoUC:     proyectoUC,
		OportunidadUC:  oportunidadUC,
		TareaUC:        tareaUC,
		ProductoUC:     productoUC,
		InteraccionUC:  interaccionUC,
		NotificacionUC: notificacionUC,
		MetricasUC:     metricasUC,
		ExportUC:       exportUC,
		Usuarios:       usuarioRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
