// createadmin aprovisiona la empresa y el usuario administrador iniciales.
// Idempotente: si el email ya existe no toca nada y termina con código 0.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/infrastructure/postgres"
	"github.com/grxsoft/crm-api/pkg/config"
	"github.com/grxsoft/crm-api/pkg/logger"
)

func main() {
	var (
		empresaNombre = flag.String("empresa", "Admin GRX", "nombre de la empresa del administrador")
		email         = flag.String("email", "admin@grx.com", "email del administrador")
		password      = flag.String("password", "", "password del administrador (requerido)")
		nombre        = flag.String("nombre", "Administrador", "nombre del administrador")
	)
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -password es requerido")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Service: "createadmin"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	usuarios := postgres.NewUsuarioRepository(pool, cfg.DB.Timeout)
	empresas := postgres.NewEmpresaRepository(pool, cfg.DB.Timeout)

	existente, err := usuarios.GetByEmail(*email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existente != nil {
		fmt.Printf("El administrador %s ya existe, nada que hacer.\n", *email)
		os.Exit(0)
	}

	// Reutiliza la empresa si ya existe una con ese nombre.
	var empresaID string
	lista, err := empresas.List(1000, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: listar empresas: %v\n", err)
		os.Exit(1)
	}
	for _, e := range lista {
		if e.Nombre == *empresaNombre {
			empresaID = e.ID
			break
		}
	}
	if empresaID == "" {
		now := time.Now()
		e := &entity.Empresa{
			ID:        uuid.New().String(),
			Nombre:    *empresaNombre,
			Activo:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := empresas.Create(e); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: crear empresa: %v\n", err)
			os.Exit(1)
		}
		empresaID = e.ID
		fmt.Printf("Empresa creada: %s (%s)\n", e.Nombre, e.ID)
	}

	u, err := usecase.NuevoUsuario(dto.CreateUsuarioRequest{
		Nombre:    *nombre,
		Email:     *email,
		Password:  *password,
		Rol:       entity.RolAdministrador,
		EmpresaID: &empresaID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if err := usuarios.Create(u); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado: %s (%s)\n", u.Email, u.ID)
	fmt.Println("Permisos: todos los recursos en true; reportes solo ver.")
}
